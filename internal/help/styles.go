// Package help renders argument documentation in aligned, styled columns.
// This file defines lipgloss styles for consistent terminal output.

package help

import "github.com/charmbracelet/lipgloss"

// Styles holds all the lipgloss styles used for documentation rendering.
type Styles struct {
	// Header is the style for section headers (bold).
	Header lipgloss.Style

	// Flag is the style for flag and option names (cyan).
	Flag lipgloss.Style

	// Value is the style for captured values and placeholders (yellow).
	Value lipgloss.Style

	// Desc is the style for description text (unstyled).
	Desc lipgloss.Style
}

// DefaultStyles returns the standard styles for documentation output.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().Bold(true),
		Flag:   lipgloss.NewStyle().Foreground(lipgloss.Color("6")), // Cyan
		Value:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")), // Yellow
		Desc:   lipgloss.NewStyle(),
	}
}
