// Package cli is the command line surface of the dialogue engine.
package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	orchestration "github.com/koscakluka/dialogue-core/core"
	"github.com/koscakluka/dialogue-core/core/feed"
	"github.com/koscakluka/dialogue-core/core/llms/groq"
	"github.com/koscakluka/dialogue-core/core/scenario"
)

var (
	flagScenario string
	flagModel    string
	flagAPIKey   string
	flagListen   string
	flagHeadless bool
)

var rootCmd = &cobra.Command{
	Use:   "dialogue",
	Short: "Run a turn-based dialogue session",
	Long: `dialogue runs a multi-participant, turn-based conversation: AI
participants argue their case on a timer, the player can type in their own
turn, fun facts play between rotations, and the session ends with a choice.

Without --scenario the built-in Power Shortage Crisis scenario is used.
Generated participants need a Groq API key in GROQ_API_KEY or --api-key.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runSession(cmd); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVarP(&flagScenario, "scenario", "s", "", "path to a scenario YAML file")
	rootCmd.Flags().StringVarP(&flagModel, "model", "m", "", "override the generation model")
	rootCmd.Flags().StringVar(&flagAPIKey, "api-key", "", "Groq API key (defaults to GROQ_API_KEY)")
	rootCmd.Flags().StringVar(&flagListen, "listen", "", "serve the event feed over WebSocket on this address")
	rootCmd.Flags().BoolVar(&flagHeadless, "headless", false, "print events to stdout instead of the TUI")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func loadScenario() (*scenario.Scenario, error) {
	if flagScenario == "" {
		return scenario.Default(), nil
	}
	return scenario.Load(flagScenario)
}

func needsGeneration(config orchestration.Config) bool {
	for _, p := range config.Participants {
		if p.LineSource == orchestration.LineSourceGenerated {
			return true
		}
	}
	return false
}

func runSession(cmd *cobra.Command) error {
	scn, err := loadScenario()
	if err != nil {
		return err
	}
	config := scn.Config()

	var schedulerOpts []orchestration.SchedulerOption
	if needsGeneration(config) {
		apiKey := flagAPIKey
		if apiKey == "" {
			apiKey = os.Getenv("GROQ_API_KEY")
		}
		if apiKey == "" {
			return fmt.Errorf("this scenario has generated participants; set GROQ_API_KEY or --api-key")
		}

		var clientOpts []groq.ClientOption
		if flagModel != "" {
			clientOpts = append(clientOpts, groq.WithModel(flagModel))
		}
		schedulerOpts = append(schedulerOpts, orchestration.WithLLM(groq.NewClient(apiKey, clientOpts...)))
	}

	scheduler, err := orchestration.New(config, schedulerOpts...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var runOpts []orchestration.RunOption
	if flagListen != "" {
		broadcaster := feed.NewBroadcaster()
		defer broadcaster.Close()

		server := &http.Server{Addr: flagListen, Handler: broadcaster}
		go func() {
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				fmt.Fprintln(os.Stderr, "feed server error:", err)
			}
		}()
		defer server.Shutdown(context.Background())

		runOpts = append(runOpts, orchestration.WithEventCallback(broadcaster.Publish))
	}

	if !flagHeadless && isatty.IsTerminal(os.Stdout.Fd()) {
		return runTUI(ctx, scn, scheduler, runOpts)
	}
	return runHeadless(ctx, scheduler, runOpts)
}
