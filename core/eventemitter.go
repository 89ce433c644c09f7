package orchestration

import "github.com/koscakluka/dialogue-core/core/events"

type eventEmitter func(events.Event)

func noopEventEmitter(events.Event) {}

func newCallbackEventEmitter(opts RunOptions) eventEmitter {
	return func(event events.Event) {
		if opts.onEvent != nil {
			opts.onEvent(event)
		}

		switch typedEvent := event.(type) {
		case events.TurnStarted:
			if opts.onTurnStarted != nil {
				opts.onTurnStarted(typedEvent.Participant, typedEvent.Index, typedEvent.Round)
			}
		case events.TurnCountdown:
			if opts.onCountdown != nil {
				opts.onCountdown(typedEvent.Participant, typedEvent.Remaining)
			}
		case events.TurnEnded:
			if typedEvent.Reason != events.TurnEndCompleted && opts.onCancellation != nil {
				opts.onCancellation()
			}
		case events.LineRevealUpdated:
			if opts.onLine != nil {
				opts.onLine(typedEvent.Participant, typedEvent.Partial)
			}
		case events.LineFinal:
			if opts.onLineEnd != nil {
				opts.onLineEnd(typedEvent.Participant, typedEvent.Text)
			}
		case events.CaptureOpened:
			if opts.onCaptureOpened != nil {
				opts.onCaptureOpened(typedEvent.Participant)
			}
		case events.CaptureResolved:
			if opts.onCaptureResolved != nil {
				opts.onCaptureResolved(typedEvent.Text, typedEvent.Reason)
			}
		case events.InterstitialShown:
			if opts.onInterstitial != nil {
				opts.onInterstitial(typedEvent.Text)
			}
		case events.InterstitialCleared:
			if opts.onInterstitialEnd != nil {
				opts.onInterstitialEnd()
			}
		case events.DecisionPrompted:
			if opts.onDecisionPrompt != nil {
				opts.onDecisionPrompt(typedEvent.Prompt, typedEvent.Branches)
			}
		case events.DecisionResolved:
			if opts.onDecisionResolved != nil {
				opts.onDecisionResolved(typedEvent.BranchID, typedEvent.Narration)
			}
		case events.SessionEnded:
			if opts.onSessionEnd != nil {
				opts.onSessionEnd()
			}
		}
	}
}
