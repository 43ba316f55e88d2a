package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	PrimaryColor   = lipgloss.Color("#A78BFA") // Purple
	SecondaryColor = lipgloss.Color("#10B981") // Green
	WarningColor   = lipgloss.Color("#F59E0B") // Amber
	ErrorColor     = lipgloss.Color("#F87171") // Red
	MutedColor     = lipgloss.Color("#9CA3AF") // Gray
	TextColor      = lipgloss.Color("#F9FAFB") // Light text
	BorderColor    = lipgloss.Color("#6B7280") // Gray

	// Convenience styles for colors
	Primary = lipgloss.NewStyle().Foreground(PrimaryColor)
	Muted   = lipgloss.NewStyle().Foreground(MutedColor)
	Error   = lipgloss.NewStyle().Foreground(ErrorColor)
	Text    = lipgloss.NewStyle().Foreground(TextColor)

	// Header
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor)

	Subtitle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	// Card styles
	GiverName = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor)

	ReceiverName = lipgloss.NewStyle().
			Bold(true).
			Foreground(SecondaryColor)

	Department = lipgloss.NewStyle().
			Foreground(MutedColor)

	PointsBadge = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			Background(PrimaryColor).
			Padding(0, 1)

	Reason = lipgloss.NewStyle().
		Italic(true).
		Foreground(TextColor)

	Separator = lipgloss.NewStyle().
			Foreground(BorderColor)

	// Status panels
	ErrorPanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ErrorColor).
			Padding(1, 2)

	EmptyPanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(1, 2)

	// Help bar
	HelpBar = lipgloss.NewStyle().
		Foreground(MutedColor)

	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(SecondaryColor)
)
