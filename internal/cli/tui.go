package cli

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	orchestration "github.com/koscakluka/dialogue-core/core"
	"github.com/koscakluka/dialogue-core/core/scenario"
	"github.com/koscakluka/dialogue-core/internal/tui"
)

func runTUI(ctx context.Context, scn *scenario.Scenario, scheduler *orchestration.Scheduler, runOpts []orchestration.RunOption) error {
	branchLabels := map[string]string{}
	if scn.Decision != nil {
		for _, branch := range scn.Decision.Branches {
			branchLabels[branch.ID] = branch.Label
		}
	}

	var program *tea.Program
	model := tui.NewModel(tui.Options{
		Title:        scn.Title,
		Intro:        scn.Intro,
		IntroDelay:   time.Duration(scn.IntroDelay),
		BranchLabels: branchLabels,
		Controller:   scheduler,
		StartSession: func() {
			opts := append(runOpts, tui.SessionRunOptions(program)...)
			go func() {
				_ = scheduler.Run(ctx, opts...)
			}()
		},
	})

	program = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}
