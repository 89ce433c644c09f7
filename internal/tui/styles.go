package tui

import "github.com/charmbracelet/lipgloss"

var (
	amber    = lipgloss.Color("214")
	dimGray  = lipgloss.Color("240")
	offWhite = lipgloss.Color("252")
	teal     = lipgloss.Color("37")

	titleStyle = lipgloss.NewStyle().
			Foreground(amber).
			Bold(true).
			Padding(0, 1)

	stageStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(dimGray).
			Padding(1, 2)

	speakerStyle = lipgloss.NewStyle().
			Foreground(amber).
			Bold(true)

	idleSpeakerStyle = lipgloss.NewStyle().
				Foreground(dimGray)

	lineStyle = lipgloss.NewStyle().
			Foreground(offWhite)

	timerStyle = lipgloss.NewStyle().
			Foreground(teal)

	factStyle = lipgloss.NewStyle().
			Foreground(teal).
			Italic(true).
			Padding(0, 1)

	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(amber).
			Padding(0, 1)

	decisionStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(amber).
			Padding(1, 2)

	chosenBranchStyle = lipgloss.NewStyle().
				Foreground(amber).
				Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(dimGray).
			Padding(0, 1)
)
