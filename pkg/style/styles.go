// Package style defines the lipgloss styles used by the attrevents CLI.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette
var (
	HeadingColor = lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#fafafa"}
	TextColor    = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#cccccc"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#22863a", Dark: "#85e89d"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#cb2431", Dark: "#f97583"}
	AccentColor  = lipgloss.AdaptiveColor{Light: "#0366d6", Dark: "#79b8ff"}
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// Object and attribute rendering
	ObjectStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true)

	AttributeStyle = lipgloss.NewStyle().
			Foreground(AccentColor)

	HandlerStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Italic(true)

	ListItemStyle = lipgloss.NewStyle().
			PaddingLeft(2)
)
