// Package theme holds the named lipgloss palettes switched at runtime
// via the :theme command.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme is the visual palette shared by every view.
type Theme struct {
	Name          string
	Title         lipgloss.Style
	WeekdayHeader lipgloss.Style
	InactiveDay   lipgloss.Style
	Today         lipgloss.Style
	Selected      lipgloss.Style
	VisualRange   lipgloss.Style
	EventMarker   lipgloss.Style
	StatusOK      lipgloss.Style
	StatusError   lipgloss.Style
	Faint         lipgloss.Style
	Accent        lipgloss.Style
	HelpKey       lipgloss.Style
	Border        lipgloss.Style
	Cursor        lipgloss.Style
}

func Default() Theme {
	return Theme{
		Name:          "default",
		Title:         lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		WeekdayHeader: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		InactiveDay:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Today:         lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Selected:      lipgloss.NewStyle().Background(lipgloss.Color("4")).Foreground(lipgloss.Color("15")).Bold(true),
		VisualRange:   lipgloss.NewStyle().Background(lipgloss.Color("8")).Foreground(lipgloss.Color("15")).Bold(true),
		EventMarker:   lipgloss.NewStyle().Underline(true),
		StatusOK:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Faint:         lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Accent:        lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
		HelpKey:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Border:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Cursor:        lipgloss.NewStyle().Background(lipgloss.Color("15")).Foreground(lipgloss.Color("0")),
	}
}

func gruvbox() Theme {
	t := Default()
	t.Name = "gruvbox"
	t.Title = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	t.WeekdayHeader = lipgloss.NewStyle().Foreground(lipgloss.Color("142"))
	t.Today = lipgloss.NewStyle().Foreground(lipgloss.Color("142")).Bold(true)
	t.Selected = lipgloss.NewStyle().Background(lipgloss.Color("66")).Foreground(lipgloss.Color("229")).Bold(true)
	t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("175")).Bold(true)
	return t
}

func nord() Theme {
	t := Default()
	t.Name = "nord"
	t.Title = lipgloss.NewStyle().Foreground(lipgloss.Color("110")).Bold(true)
	t.WeekdayHeader = lipgloss.NewStyle().Foreground(lipgloss.Color("109"))
	t.Today = lipgloss.NewStyle().Foreground(lipgloss.Color("144")).Bold(true)
	t.Selected = lipgloss.NewStyle().Background(lipgloss.Color("67")).Foreground(lipgloss.Color("231")).Bold(true)
	t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("139")).Bold(true)
	return t
}

// ByName resolves a theme name, falling back to the default palette for
// anything unrecognized.
func ByName(name string) Theme {
	switch name {
	case "gruvbox":
		return gruvbox()
	case "nord":
		return nord()
	default:
		return Default()
	}
}

// Names lists the selectable palettes.
func Names() []string {
	return []string{"default", "gruvbox", "nord"}
}
