package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	onlineStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	selectedStyle   = lipgloss.NewStyle().Bold(true)
	outgoingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	statusOKStyle   = lipgloss.NewStyle().Faint(true)
	statusErrStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
