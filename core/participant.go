package orchestration

// Role describes who a participant is in the session.
type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
)

// LineSource describes where an agent participant's lines come from.
type LineSource string

const (
	// LineSourceScripted cycles through the participant's pre-authored lines.
	LineSourceScripted LineSource = "scripted"
	// LineSourceGenerated requests lines from the configured LLM.
	LineSourceGenerated LineSource = "generated"
)

// ParticipantConfig describes one participant at session setup.
type ParticipantConfig struct {
	Name string
	Role Role

	// Persona is the system instruction used for generated lines.
	Persona string
	// Lines are pre-authored lines, cycled in order. May be empty; a
	// scripted participant without lines holds silent turns.
	Lines      []string
	LineSource LineSource

	// IndicatorID and SlotID are opaque handles into the caller's sinks.
	// Both default to Name.
	IndicatorID string
	SlotID      string
}

// participant is the owned per-participant record inside the scheduler's
// arena. All mutation is routed through the scheduler.
type participant struct {
	config ParticipantConfig

	lineIndex   int
	currentLine string
}

func (p *participant) name() string { return p.config.Name }

func (p *participant) indicatorID() string {
	if p.config.IndicatorID != "" {
		return p.config.IndicatorID
	}
	return p.config.Name
}

func (p *participant) slotID() string {
	if p.config.SlotID != "" {
		return p.config.SlotID
	}
	return p.config.Name
}

// nextScriptedLine returns the participant's next pre-authored line, cycling
// back to the first after the last. Empty string when no lines exist.
func (p *participant) nextScriptedLine() string {
	if len(p.config.Lines) == 0 {
		return ""
	}

	line := p.config.Lines[p.lineIndex]
	p.lineIndex = (p.lineIndex + 1) % len(p.config.Lines)
	return line
}
