package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	Primary    = lipgloss.Color("#97CE4C")
	Secondary  = lipgloss.Color("#44C5E8")
	Success    = lipgloss.Color("#C3E88D")
	Warning    = lipgloss.Color("#FFCB6B")
	Error      = lipgloss.Color("#F07178")
	Info       = lipgloss.Color("#82AAFF")
	Muted      = lipgloss.Color("#546E7A")
	Background = lipgloss.Color("#263238")
	Foreground = lipgloss.Color("#EEFFFF")

	// Loading images sit on a gray backdrop
	Placeholder = lipgloss.Color("#9CA3AF")

	RoundedBorder = lipgloss.RoundedBorder()
	ThickBorder   = lipgloss.ThickBorder()
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			MarginBottom(1)

	// Character name on a card
	NameStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Bold(true)

	TextStyle = lipgloss.NewStyle().
			Foreground(Foreground)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	CardStyle = lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Cards whose image is still loading
	LoadingCardStyle = lipgloss.NewStyle().
				Border(RoundedBorder).
				BorderForeground(Muted).
				Padding(0, 1)

	StatusAlive = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	StatusDead = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	StatusUnknown = lipgloss.NewStyle().
			Foreground(Warning)

	ProgressBarStyle = lipgloss.NewStyle().
				Foreground(Primary)

	ProgressEmptyStyle = lipgloss.NewStyle().
				Foreground(Muted)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(Primary)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true).
			MarginTop(1)
)

// StatusStyle picks the style for a character status value.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case "Alive":
		return StatusAlive
	case "Dead":
		return StatusDead
	case "unknown":
		return StatusUnknown
	default:
		return TextStyle
	}
}
