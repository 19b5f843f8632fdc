package tui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("99")
	successColor = lipgloss.Color("42")
	errorColor   = lipgloss.Color("196")
	mutedColor   = lipgloss.Color("245")
	accentColor  = lipgloss.Color("212")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			PaddingLeft(1).
			PaddingRight(1)

	tabStyle       = lipgloss.NewStyle().Foreground(mutedColor).PaddingRight(2)
	activeTabStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true).PaddingRight(2)

	paneStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)

	paneTitleStyle = lipgloss.NewStyle().Foreground(mutedColor).Bold(true)

	labelStyle          = lipgloss.NewStyle().Foreground(mutedColor)
	cursorLabelStyle    = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	optionStyle         = lipgloss.NewStyle().PaddingRight(1)
	selectedOptionStyle = lipgloss.NewStyle().Foreground(primaryColor).Bold(true).PaddingRight(1)

	attrNameStyle = lipgloss.NewStyle().Foreground(accentColor)

	statusSuccessStyle = lipgloss.NewStyle().Foreground(successColor).Bold(true)
	statusErrorStyle   = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
)
