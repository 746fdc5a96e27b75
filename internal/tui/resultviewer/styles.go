// ============================================================================
// spiffy - SPIF Patent Number Checker
// ============================================================================
//
// Package:     resultviewer
// Description: Styles for the result viewer TUI
// Author:      Mike Stoffels
// Created:     2025-12-14
// License:     MIT
// ============================================================================

package resultviewer

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/spiffy/internal/report"
)

var (
	ColorBgPanel = lipgloss.Color("#1E293B") // Slate 800
	ColorTextDim = lipgloss.Color("#64748B") // Slate 500
)

// Logo/Header styles
var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(report.ColorPrimary).
			Bold(true)

	SubHeaderStyle = lipgloss.NewStyle().
			Foreground(report.ColorTextMuted).
			Italic(true)

	TitlePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(report.ColorPrimary).
			Padding(0, 2).
			MarginBottom(1)
)

// Entry styles
var (
	RowNumberStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim).
			Width(7).
			Align(lipgloss.Right)

	KindStyle = lipgloss.NewStyle().
			Foreground(report.ColorSecondary).
			Width(4)

	IdentifierStyle = lipgloss.NewStyle().
			Foreground(report.ColorText).
			Bold(true).
			Width(22)

	MessageStyle = lipgloss.NewStyle().
			Foreground(report.ColorTextMuted)

	BadgeOKStyle = lipgloss.NewStyle().
			Foreground(report.ColorSuccess).
			Bold(true)

	BadgeInvalidStyle = lipgloss.NewStyle().
				Foreground(report.ColorError).
				Bold(true)

	BadgeUncheckedStyle = lipgloss.NewStyle().
				Foreground(report.ColorWarning).
				Bold(true)

	BadgeUnsupportedStyle = lipgloss.NewStyle().
				Foreground(report.ColorMuted).
				Bold(true)
)

// Panel/bar styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(report.ColorDimmed).
			Padding(0, 1)

	FilterBarStyle = lipgloss.NewStyle().
			Background(ColorBgPanel).
			Foreground(report.ColorText).
			Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorBgPanel).
			Foreground(report.ColorText).
			Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(report.ColorError).
			Bold(true)
)

// Help styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(report.ColorTextMuted).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(report.ColorPrimary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(report.ColorTextMuted)

	FilterActiveStyle = lipgloss.NewStyle().
				Foreground(report.ColorSuccess).
				Bold(true)

	FilterInactiveStyle = lipgloss.NewStyle().
				Foreground(ColorTextDim)
)

// Logo
const Logo = "spiffy results"

// RenderKeyHint renders a keyboard shortcut hint
func RenderKeyHint(key, description string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(description)
}

// RenderFilterStatus renders a filter status indicator
func RenderFilterStatus(name string, active bool) string {
	if active {
		return FilterActiveStyle.Render(name)
	}
	return FilterInactiveStyle.Render(name)
}

// RenderBadge renders the status badge of a category
func RenderBadge(c Category) string {
	switch c {
	case CategoryOK:
		return BadgeOKStyle.Render("[OK]     ")
	case CategoryInvalid:
		return BadgeInvalidStyle.Render("[INVALID]")
	case CategoryUnsupported:
		return BadgeUnsupportedStyle.Render("[UNSUPP] ")
	default:
		return BadgeUncheckedStyle.Render("[SKIPPED]")
	}
}
