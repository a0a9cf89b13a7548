package editor

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	primaryColor = lipgloss.Color("99")  // Purple
	successColor = lipgloss.Color("42")  // Green
	warningColor = lipgloss.Color("226") // Yellow
	errorColor   = lipgloss.Color("196") // Red
	mutedColor   = lipgloss.Color("245") // Gray
	accentColor  = lipgloss.Color("212") // Pink

	// Title style
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			PaddingLeft(1).
			PaddingRight(2)

	// Header style
	headerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(mutedColor).
			MarginBottom(1)

	// Tab styles
	tabStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(0, 2)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true).
			Underline(true).
			Padding(0, 2)

	// Form row styles
	labelStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Width(16)

	selectedLabelStyle = lipgloss.NewStyle().
				Foreground(accentColor).
				Bold(true).
				Width(16)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	actionStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	inactiveLinkStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Strikethrough(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	countStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	overCountStyle = lipgloss.NewStyle().
			Foreground(warningColor).
			Bold(true)

	inputPromptStyle = lipgloss.NewStyle().
				Foreground(accentColor)

	formStyle = lipgloss.NewStyle().
			PaddingRight(2)

	// Footer style
	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(mutedColor).
			MarginTop(1)

	// Banner styles
	errorBannerStyle = lipgloss.NewStyle().
				Foreground(errorColor).
				Bold(true).
				Padding(0, 1).
				BorderStyle(lipgloss.ThickBorder()).
				BorderForeground(errorColor)

	statusStyle = lipgloss.NewStyle().
			Foreground(successColor).
			PaddingLeft(1)

	// Spinner style
	spinnerStyle = lipgloss.NewStyle().
			Foreground(primaryColor)
)
