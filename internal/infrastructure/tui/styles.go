package tui

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	colorPrimary   = lipgloss.Color("5")
	colorSecondary = lipgloss.Color("6")
	colorText      = lipgloss.Color("15")
	colorSubtext   = lipgloss.Color("8")
)

var frameStyle = lipgloss.NewStyle().Padding(1, 2)

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorSecondary).
	Align(lipgloss.Right)

var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorSubtext).
	Padding(0, 1)

var boxTitleStyle = lipgloss.NewStyle().Foreground(colorSecondary)
var listTitleStyle = lipgloss.NewStyle().Foreground(colorPrimary)

var specNameStyle = lipgloss.NewStyle().Bold(true).Foreground(colorText)
var specInfoStyle = lipgloss.NewStyle().Foreground(colorSubtext)
var selectedStyle = lipgloss.NewStyle().Bold(true).Background(colorPrimary)

var progressLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(colorText)

var specHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
var tabStyle = lipgloss.NewStyle().Foreground(colorSubtext)
var activeTabStyle = lipgloss.NewStyle().
	Bold(true).
	Reverse(true).
	Foreground(colorSecondary)

var mutedStyle = lipgloss.NewStyle().Foreground(colorSubtext)
var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

var footerStyle = lipgloss.NewStyle().Align(lipgloss.Right)
