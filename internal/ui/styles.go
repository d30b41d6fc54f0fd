package ui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle       = lipgloss.NewStyle().Bold(true)
	dimStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89"))
	activeTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7aa2f7")).Bold(true).Underline(true)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a9b1d6"))
	listLineStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#c0caf5"))
	selectedStyle    = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#1a1b26")).
				Background(lipgloss.Color("#7aa2f7")).
				Bold(true)
	linkStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7dcfff"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ece6a"))
)
