package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	orchestration "github.com/koscakluka/dialogue-core/core"
)

// branchList holds the decision branch ids once the prompt fires. Written by
// the session goroutine, read by the stdin reader.
type branchList struct {
	mu  sync.Mutex
	ids []string
}

func (b *branchList) set(ids []string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ids = append([]string(nil), ids...)
}

func (b *branchList) at(n int) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if n < 1 || n > len(b.ids) {
		return "", false
	}
	return b.ids[n-1], true
}

// runHeadless streams the session to stdout. User turns time out unless a
// line arrives on stdin; the decision is read from stdin as a branch id or
// its 1-based position.
func runHeadless(ctx context.Context, scheduler *orchestration.Scheduler, runOpts []orchestration.RunOption) error {
	branches := &branchList{}

	go readStdin(ctx, scheduler, branches)

	runOpts = append(runOpts,
		orchestration.WithTurnStartedCallback(func(participant string, index, round int) {
			fmt.Printf("\n-- %s (round %d) --\n", participant, round+1)
		}),
		orchestration.WithLineEndCallback(func(participant, line string) {
			fmt.Printf("%s: %s\n", participant, line)
		}),
		orchestration.WithCaptureOpenedCallback(func(participant string) {
			fmt.Printf("[%s may speak; type a line]\n", participant)
		}),
		orchestration.WithInterstitialCallback(func(text string) {
			fmt.Printf("* %s\n", text)
		}),
		orchestration.WithDecisionPromptCallback(func(prompt string, ids []string) {
			branches.set(ids)
			fmt.Printf("\n%s\n", prompt)
		}),
		orchestration.WithDecisionResolvedCallback(func(branchID, narration string) {
			fmt.Printf("\n%s\n", narration)
		}),
		orchestration.WithSessionEndCallback(func() {
			fmt.Println("\nSession over.")
		}),
	)

	return scheduler.Run(ctx, runOpts...)
}

// readStdin routes typed lines to whichever window is open: the input
// capture during a user turn, or the branch choice during the decision.
func readStdin(ctx context.Context, scheduler *orchestration.Scheduler, branches *branchList) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}
		line := strings.TrimSpace(scanner.Text())

		if scheduler.Phase() == orchestration.PhaseAwaitingDecision {
			id := line
			if n, err := strconv.Atoi(line); err == nil {
				if byIndex, ok := branches.at(n); ok {
					id = byIndex
				}
			}
			if err := scheduler.SubmitDecision(id); err != nil {
				fmt.Printf("unknown choice %q\n", line)
			}
			continue
		}

		if err := scheduler.Submit(line); err != nil {
			// no open window; drop the line rather than queue stale input
			continue
		}
	}
}
