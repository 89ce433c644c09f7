package events

const (
	// KindCaptureOpened identifies an input window opening.
	KindCaptureOpened Kind = "capture.opened"
	// KindCaptureDraftUpdated identifies mutable draft snapshots.
	KindCaptureDraftUpdated Kind = "capture.draft_updated"
	// KindCaptureResolved identifies the input window closing.
	KindCaptureResolved Kind = "capture.resolved"
)

// CaptureReason explains how an input window resolved.
type CaptureReason string

const (
	CaptureSubmitted CaptureReason = "submitted"
	CaptureSkipped   CaptureReason = "skipped"
	CaptureTimedOut  CaptureReason = "timed_out"
)

// CaptureOpened marks an input window opening for a user participant.
type CaptureOpened struct {
	Base
	Participant string
}

// NewCaptureOpened creates a capture opened event.
func NewCaptureOpened(participant string) CaptureOpened {
	return CaptureOpened{Base: NewBase(KindCaptureOpened), Participant: participant}
}

// CaptureDraftUpdated carries a mutable draft snapshot.
type CaptureDraftUpdated struct {
	Base
	Participant string
	Draft       string
}

// NewCaptureDraftUpdated creates a capture draft update event.
func NewCaptureDraftUpdated(participant, draft string) CaptureDraftUpdated {
	return CaptureDraftUpdated{Base: NewBase(KindCaptureDraftUpdated), Participant: participant, Draft: draft}
}

// CaptureResolved marks the input window closing with its single outcome.
type CaptureResolved struct {
	Base
	Participant string
	Text        string
	Reason      CaptureReason
}

// NewCaptureResolved creates a capture resolved event.
func NewCaptureResolved(participant, text string, reason CaptureReason) CaptureResolved {
	return CaptureResolved{Base: NewBase(KindCaptureResolved), Participant: participant, Text: text, Reason: reason}
}
