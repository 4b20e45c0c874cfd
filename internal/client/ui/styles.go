// Package ui renders minired data for the terminal.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	Primary    = lipgloss.Color("#FF4500")
	Secondary  = lipgloss.Color("#00BFFF")
	SuccessCol = lipgloss.Color("#2ECC71")
	ErrorCol   = lipgloss.Color("#FF3131")
	Text       = lipgloss.Color("#FFFFFF")
	Muted      = lipgloss.Color("#888888")

	HeaderStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			MarginBottom(1)

	CardStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Muted).
			Width(64)

	AuthorStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	InfoKeyStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Width(10)

	InfoValueStyle = lipgloss.NewStyle().
			Foreground(Text)

	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(ErrorCol)

	SuccessTextStyle = lipgloss.NewStyle().
				Foreground(SuccessCol)

	CommentStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(Muted)
)
