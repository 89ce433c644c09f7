package events

const (
	// KindLineRevealUpdated identifies partial line reveal snapshots.
	KindLineRevealUpdated Kind = "line.reveal_updated"
	// KindLineFinal identifies the fully revealed line.
	KindLineFinal Kind = "line.final"
)

// LineRevealUpdated carries a mutable partial-line snapshot produced by the
// typewriter reveal.
type LineRevealUpdated struct {
	Base
	Participant string
	Partial     string
}

// NewLineRevealUpdated creates a line reveal update event.
func NewLineRevealUpdated(participant, partial string) LineRevealUpdated {
	return LineRevealUpdated{Base: NewBase(KindLineRevealUpdated), Participant: participant, Partial: partial}
}

// LineFinal carries the fully revealed line for the current turn.
type LineFinal struct {
	Base
	Participant string
	Text        string
	Generated   bool
}

// NewLineFinal creates a line final event.
func NewLineFinal(participant, text string, generated bool) LineFinal {
	return LineFinal{Base: NewBase(KindLineFinal), Participant: participant, Text: text, Generated: generated}
}
