// Package scenario loads dialogue session definitions from YAML and turns
// them into orchestration configs.
package scenario

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	orchestration "github.com/koscakluka/dialogue-core/core"
)

// Scenario is the on-disk description of one session: its participants,
// pacing, interstitial content and the terminal decision.
type Scenario struct {
	Title string `yaml:"title,omitempty" json:"title,omitempty"`

	// Intro lines are shown one at a time before the session starts.
	Intro      []string `yaml:"intro,omitempty" json:"intro,omitempty"`
	IntroDelay Duration `yaml:"intro_delay,omitempty" json:"intro_delay,omitempty"`

	TurnDuration   Duration `yaml:"turn_duration" json:"turn_duration"`
	RevealInterval Duration `yaml:"reveal_interval,omitempty" json:"reveal_interval,omitempty"`

	Participants []Participant `yaml:"participants" json:"participants"`

	Interstitials     []string `yaml:"interstitials,omitempty" json:"interstitials,omitempty"`
	InterstitialDwell Duration `yaml:"interstitial_dwell,omitempty" json:"interstitial_dwell,omitempty"`

	Decision *Decision `yaml:"decision,omitempty" json:"decision,omitempty"`
}

// Participant is one speaker in the rotation.
type Participant struct {
	Name string `yaml:"name" json:"name"`

	// Role is "agent" or "user". Defaults to "agent".
	Role string `yaml:"role,omitempty" json:"role,omitempty"`

	// Source is "scripted" or "generated". Defaults to "scripted".
	Source  string `yaml:"source,omitempty" json:"source,omitempty"`
	Persona string `yaml:"persona,omitempty" json:"persona,omitempty"`

	Lines []string `yaml:"lines,omitempty" json:"lines,omitempty"`

	Indicator string `yaml:"indicator,omitempty" json:"indicator,omitempty"`
	Slot      string `yaml:"slot,omitempty" json:"slot,omitempty"`
}

// Decision is the terminal branch choice.
type Decision struct {
	AfterRounds int      `yaml:"after_rounds" json:"after_rounds"`
	Prompt      string   `yaml:"prompt" json:"prompt"`
	Branches    []Branch `yaml:"branches" json:"branches"`

	NarrationDelay Duration `yaml:"narration_delay,omitempty" json:"narration_delay,omitempty"`
	Closing        string   `yaml:"closing,omitempty" json:"closing,omitempty"`
	ClosingDelay   Duration `yaml:"closing_delay,omitempty" json:"closing_delay,omitempty"`
}

// Branch is one selectable decision outcome.
type Branch struct {
	ID        string `yaml:"id" json:"id"`
	Label     string `yaml:"label,omitempty" json:"label,omitempty"`
	Narration string `yaml:"narration,omitempty" json:"narration,omitempty"`
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	scenario, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scenario file %q: %w", path, err)
	}
	return scenario, nil
}

// Parse decodes a YAML scenario. Unknown fields are rejected; a typoed key
// fails loudly instead of silently falling back to a default.
func Parse(data []byte) (*Scenario, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var scenario Scenario
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to decode scenario: %w", err)
	}
	return &scenario, nil
}

// Config converts the scenario into an orchestration config. Semantic
// validation (duplicate names, missing durations, branch ids) is left to
// orchestration.New.
func (s *Scenario) Config() orchestration.Config {
	config := orchestration.Config{
		TurnDuration:      time.Duration(s.TurnDuration),
		RevealInterval:    time.Duration(s.RevealInterval),
		Interstitials:     append([]string(nil), s.Interstitials...),
		InterstitialDwell: time.Duration(s.InterstitialDwell),
	}

	for _, p := range s.Participants {
		config.Participants = append(config.Participants, orchestration.ParticipantConfig{
			Name:        p.Name,
			Role:        orchestration.Role(p.Role),
			Persona:     p.Persona,
			Lines:       append([]string(nil), p.Lines...),
			LineSource:  orchestration.LineSource(p.Source),
			IndicatorID: p.Indicator,
			SlotID:      p.Slot,
		})
	}

	if s.Decision != nil {
		decision := &orchestration.DecisionConfig{
			Threshold:      s.Decision.AfterRounds,
			Prompt:         s.Decision.Prompt,
			NarrationDelay: time.Duration(s.Decision.NarrationDelay),
			ClosingText:    s.Decision.Closing,
			ClosingDelay:   time.Duration(s.Decision.ClosingDelay),
		}
		for _, branch := range s.Decision.Branches {
			decision.Branches = append(decision.Branches, orchestration.Branch{
				ID:        branch.ID,
				Label:     branch.Label,
				Narration: branch.Narration,
			})
		}
		config.Decision = decision
	}

	return config
}
