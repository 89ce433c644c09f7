// Package tui renders a dialogue session in the terminal: the stage with its
// participants, the typewriter line reveal, the countdown, interstitial
// facts, the player's input window and the closing decision.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"
)

// SessionController is the slice of the scheduler the TUI drives. The
// orchestration scheduler satisfies it.
type SessionController interface {
	SkipTurn() error
	Submit(text string) error
	SkipCapture() error
	UpdateDraft(text string) error
	SubmitDecision(branchID string) error
}

type state int

const (
	stateIntro state = iota
	stateReady
	stateSession
	stateDecision
	stateDone
)

// Options configures the TUI model.
type Options struct {
	Title      string
	Intro      []string
	IntroDelay time.Duration

	// BranchLabels maps decision branch ids to display labels. Missing ids
	// fall back to the id itself.
	BranchLabels map[string]string

	Controller SessionController

	// StartSession is invoked once, when the player starts the session from
	// the ready screen.
	StartSession func()
}

// Model is the bubbletea state for one session.
type Model struct {
	width  int
	height int

	keys  KeyMap
	opts  Options
	state state

	introIndex int

	participants []string
	speaker      string
	line         string
	remaining    time.Duration
	fact         string

	capturing bool
	textarea  textarea.Model

	decisionPrompt string
	branches       []string
	branchCursor   int
	narration      string

	started bool
	done    bool
}

func NewModel(opts Options) Model {
	ta := textarea.New()
	ta.Placeholder = "Say something..."
	ta.CharLimit = 280
	ta.SetHeight(1)
	ta.ShowLineNumbers = false
	ta.KeyMap.InsertNewline.SetEnabled(false)

	initial := stateIntro
	if len(opts.Intro) == 0 {
		initial = stateReady
	}
	if opts.IntroDelay <= 0 {
		opts.IntroDelay = 2500 * time.Millisecond
	}

	return Model{
		keys:     DefaultKeyMap,
		opts:     opts,
		state:    initial,
		textarea: ta,
	}
}

func (m Model) Init() tea.Cmd {
	if m.state == stateIntro {
		return m.introTick()
	}
	return nil
}

func (m Model) introTick() tea.Cmd {
	return tea.Tick(m.opts.IntroDelay, func(time.Time) tea.Msg {
		return introTickMsg{}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textarea.SetWidth(max(20, m.width-6))

	case introTickMsg:
		if m.state != stateIntro {
			return m, nil
		}
		m.introIndex++
		if m.introIndex >= len(m.opts.Intro) {
			m.state = stateReady
			return m, nil
		}
		return m, m.introTick()

	case SessionStartedMsg:
		m.participants = msg.Participants

	case TurnStartedMsg:
		m.speaker = msg.Participant
		m.line = ""
		m.remaining = 0

	case CountdownMsg:
		m.remaining = msg.Remaining

	case LineRevealMsg:
		m.speaker = msg.Participant
		m.line = msg.Partial

	case LineFinalMsg:
		m.speaker = msg.Participant
		m.line = msg.Line

	case CaptureOpenedMsg:
		m.capturing = true
		m.textarea.Reset()
		return m, m.textarea.Focus()

	case CaptureResolvedMsg:
		m.capturing = false
		m.textarea.Blur()

	case InterstitialMsg:
		m.fact = msg.Text

	case InterstitialClearedMsg:
		m.fact = ""

	case DecisionPromptMsg:
		m.state = stateDecision
		m.decisionPrompt = msg.Prompt
		m.branches = msg.Branches
		m.branchCursor = 0

	case DecisionResolvedMsg:
		m.narration = msg.Narration

	case SessionEndedMsg:
		m.state = stateDone
		m.done = true
	}

	if m.capturing {
		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.state {
	case stateIntro:
		// any key fast-forwards the intro
		m.state = stateReady
		return m, nil

	case stateReady:
		switch {
		case key.Matches(msg, m.keys.Start):
			if !m.started {
				m.started = true
				m.state = stateSession
				if m.opts.StartSession != nil {
					m.opts.StartSession()
				}
			}
			return m, nil
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}

	case stateSession:
		if m.capturing {
			switch {
			case key.Matches(msg, m.keys.Submit):
				if m.opts.Controller != nil {
					_ = m.opts.Controller.Submit(strings.TrimSpace(m.textarea.Value()))
				}
				return m, nil
			case key.Matches(msg, m.keys.SkipInput):
				if m.opts.Controller != nil {
					_ = m.opts.Controller.SkipCapture()
				}
				return m, nil
			}

			var cmd tea.Cmd
			m.textarea, cmd = m.textarea.Update(msg)
			if m.opts.Controller != nil {
				_ = m.opts.Controller.UpdateDraft(m.textarea.Value())
			}
			return m, cmd
		}

		switch {
		case key.Matches(msg, m.keys.SkipTurn):
			if m.opts.Controller != nil {
				_ = m.opts.Controller.SkipTurn()
			}
			return m, nil
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}

	case stateDecision:
		switch {
		case key.Matches(msg, m.keys.NextBranch):
			if m.branchCursor < len(m.branches)-1 {
				m.branchCursor++
			}
			return m, nil
		case key.Matches(msg, m.keys.PrevBranch):
			if m.branchCursor > 0 {
				m.branchCursor--
			}
			return m, nil
		case key.Matches(msg, m.keys.Choose):
			if m.opts.Controller != nil && len(m.branches) > 0 {
				_ = m.opts.Controller.SubmitDecision(m.branches[m.branchCursor])
			}
			return m, nil
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}

		// number keys choose directly
		if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			if n := int(s[0] - '1'); n < len(m.branches) && m.opts.Controller != nil {
				_ = m.opts.Controller.SubmitDecision(m.branches[n])
			}
			return m, nil
		}

	case stateDone:
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) View() string {
	width := m.width
	if width <= 0 {
		width = 80
	}

	var b strings.Builder
	if m.opts.Title != "" {
		b.WriteString(titleStyle.Render(m.opts.Title))
		b.WriteString("\n\n")
	}

	switch m.state {
	case stateIntro:
		line := ""
		if m.introIndex < len(m.opts.Intro) {
			line = m.opts.Intro[m.introIndex]
		}
		b.WriteString(lineStyle.Render(wordwrap.String(line, width-4)))

	case stateReady:
		b.WriteString(lineStyle.Render("Press ENTER to start"))

	case stateSession:
		b.WriteString(m.stageView(width))

	case stateDecision:
		b.WriteString(m.decisionView(width))

	case stateDone:
		b.WriteString(lineStyle.Render("Session over. Press any key to exit."))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.helpLine()))
	return b.String()
}

func (m Model) stageView(width int) string {
	var b strings.Builder

	var roster []string
	for _, name := range m.participants {
		if name == m.speaker {
			roster = append(roster, speakerStyle.Render("● "+name))
		} else {
			roster = append(roster, idleSpeakerStyle.Render("○ "+name))
		}
	}
	b.WriteString(strings.Join(roster, "   "))
	b.WriteString("\n\n")

	stage := ""
	if m.speaker != "" {
		stage = speakerStyle.Render(m.speaker) + "\n" +
			lineStyle.Render(wordwrap.String(m.line, width-8))
	}
	b.WriteString(stageStyle.Width(width - 4).Render(stage))
	b.WriteString("\n")

	if m.remaining > 0 {
		b.WriteString(timerStyle.Render(fmt.Sprintf("%ds", int(m.remaining.Round(time.Second).Seconds()))))
		b.WriteString("\n")
	}
	if m.fact != "" {
		b.WriteString(factStyle.Render(wordwrap.String(m.fact, width-4)))
		b.WriteString("\n")
	}
	if m.capturing {
		b.WriteString(inputStyle.Render(m.textarea.View()))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) decisionView(width int) string {
	var b strings.Builder
	b.WriteString(wordwrap.String(m.decisionPrompt, width-8))
	b.WriteString("\n\n")

	if m.narration != "" {
		b.WriteString(lineStyle.Render(wordwrap.String(m.narration, width-8)))
	} else {
		for i, id := range m.branches {
			label := id
			if l, ok := m.opts.BranchLabels[id]; ok {
				label = l
			}
			cursor := "  "
			line := fmt.Sprintf("%s[%d] %s", cursor, i+1, label)
			if i == m.branchCursor {
				line = chosenBranchStyle.Render("> " + fmt.Sprintf("[%d] %s", i+1, label))
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	return decisionStyle.Width(width - 4).Render(b.String())
}

func (m Model) helpLine() string {
	switch m.state {
	case stateReady:
		return "enter: start   q: quit"
	case stateSession:
		if m.capturing {
			return "enter: say it   esc: stay silent"
		}
		return "space: skip turn   q: quit"
	case stateDecision:
		return "↑/↓: choose   enter: confirm"
	default:
		return ""
	}
}
