package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the theme-dependent lipgloss styles.
type Styles struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Danger    lipgloss.Color
	Success   lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Border    lipgloss.Color
	Surface   lipgloss.Color

	Header       lipgloss.Style
	Row          lipgloss.Style
	RowSelected  lipgloss.Style
	RowChecked   lipgloss.Style
	GoalReached  lipgloss.Style
	StatusBar    lipgloss.Style
	UndoBanner   lipgloss.Style
	Modal        lipgloss.Style
	ModalTitle   lipgloss.Style
	Help         lipgloss.Style
	StatLabel    lipgloss.Style
	StatValue    lipgloss.Style
	FilterPrompt lipgloss.Style
}

// NewStyles builds the style set for a theme ("light" or "dark").
func NewStyles(theme string) Styles {
	s := Styles{
		Primary:   lipgloss.Color("#4ECDC4"),
		Secondary: lipgloss.Color("#6C757D"),
		Danger:    lipgloss.Color("#FF6B6B"),
		Success:   lipgloss.Color("#95E1A3"),
	}

	if theme == "dark" {
		s.Text = lipgloss.Color("#FFFFFF")
		s.Muted = lipgloss.Color("#888888")
		s.Border = lipgloss.Color("#333333")
		s.Surface = lipgloss.Color("#16213e")
	} else {
		s.Text = lipgloss.Color("#1A1A1A")
		s.Muted = lipgloss.Color("#767676")
		s.Border = lipgloss.Color("#CCCCCC")
		s.Surface = lipgloss.Color("#EAEAEA")
	}

	s.Header = lipgloss.NewStyle().Bold(true).Foreground(s.Primary).Padding(0, 1)
	s.Row = lipgloss.NewStyle().Padding(0, 1)
	s.RowSelected = lipgloss.NewStyle().Padding(0, 1).Background(s.Surface).Bold(true)
	s.RowChecked = lipgloss.NewStyle().Padding(0, 1).Foreground(s.Primary)
	s.GoalReached = lipgloss.NewStyle().Foreground(s.Success).Bold(true)
	s.StatusBar = lipgloss.NewStyle().
		Foreground(s.Muted).
		Padding(0, 1).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(s.Border)
	s.UndoBanner = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#1A1A1A")).
		Background(lipgloss.Color("#FFE66D")).
		Padding(0, 1).
		Bold(true)
	s.Modal = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Primary).
		Padding(1, 2)
	s.ModalTitle = lipgloss.NewStyle().Bold(true).Foreground(s.Primary)
	s.Help = lipgloss.NewStyle().Foreground(s.Muted)
	s.StatLabel = lipgloss.NewStyle().Foreground(s.Muted).Width(18)
	s.StatValue = lipgloss.NewStyle().Bold(true).Foreground(s.Text)
	s.FilterPrompt = lipgloss.NewStyle().Foreground(s.Primary).Bold(true)

	return s
}

// swatch renders a small colored block for a counter color.
func swatch(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("■")
}
