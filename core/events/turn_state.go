package events

import "time"

const (
	// KindTurnStarted identifies turn start.
	KindTurnStarted Kind = "turn_state.started"
	// KindTurnCountdown identifies remaining-time updates for the current turn.
	KindTurnCountdown Kind = "turn_state.countdown"
	// KindTurnEnded identifies turn completion.
	KindTurnEnded Kind = "turn_state.ended"
)

// TurnEndReason explains how a turn ended.
type TurnEndReason string

const (
	TurnEndCompleted TurnEndReason = "completed"
	TurnEndSkipped   TurnEndReason = "skipped"
	TurnEndCancelled TurnEndReason = "cancelled"
)

// TurnStarted marks a participant's turn becoming current.
type TurnStarted struct {
	Base
	TurnID      string
	Participant string
	Index       int
	Round       int
}

// NewTurnStarted creates a turn started event.
func NewTurnStarted(turnID, participant string, index, round int) TurnStarted {
	return TurnStarted{Base: NewBase(KindTurnStarted), TurnID: turnID, Participant: participant, Index: index, Round: round}
}

// TurnCountdown carries the remaining time in the current turn.
type TurnCountdown struct {
	Base
	Participant string
	Remaining   time.Duration
}

// NewTurnCountdown creates a turn countdown event.
func NewTurnCountdown(participant string, remaining time.Duration) TurnCountdown {
	return TurnCountdown{Base: NewBase(KindTurnCountdown), Participant: participant, Remaining: remaining}
}

// TurnEnded marks the current turn ending.
type TurnEnded struct {
	Base
	TurnID      string
	Participant string
	Reason      TurnEndReason
}

// NewTurnEnded creates a turn ended event.
func NewTurnEnded(turnID, participant string, reason TurnEndReason) TurnEnded {
	return TurnEnded{Base: NewBase(KindTurnEnded), TurnID: turnID, Participant: participant, Reason: reason}
}
