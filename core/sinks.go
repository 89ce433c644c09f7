package orchestration

// IndicatorSink receives participant indicator changes. The scheduler
// guarantees that at most one indicator is active at any instant, and none
// outside active turns.
type IndicatorSink interface {
	SetActive(participantID string, active bool)
}

// DisplaySink receives text for named display slots. Calls are pure side
// effects; the sink holds no orchestration logic.
type DisplaySink interface {
	SetText(slotID, text string)
	Clear(slotID string)
}

type noopIndicatorSink struct{}

func (noopIndicatorSink) SetActive(string, bool) {}

type noopDisplaySink struct{}

func (noopDisplaySink) SetText(string, string) {}
func (noopDisplaySink) Clear(string)           {}
