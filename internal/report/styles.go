package report

import "github.com/charmbracelet/lipgloss"

// Color palette shared with the result viewer
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorWarning   = lipgloss.Color("#F59E0B") // Amber
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorDimmed    = lipgloss.Color("#374151") // Dark Gray
	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Width(14)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDimmed).
			Padding(0, 1)

	HeaderCellStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true).
			Width(16).
			Align(lipgloss.Right)

	KindCellStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true).
			Width(12)

	CellStyle = lipgloss.NewStyle().
			Width(16).
			Align(lipgloss.Right)

	OKStyle      = CellStyle.Foreground(ColorSuccess)
	InvalidStyle = CellStyle.Foreground(ColorError)
	WarnStyle    = CellStyle.Foreground(ColorWarning)
	MutedStyle   = CellStyle.Foreground(ColorMuted)

	MessageStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)
)
