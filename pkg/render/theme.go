package render

import "github.com/charmbracelet/lipgloss"

// Theme defines colors and icons for terminal rendering.
type Theme struct {
	Name     string
	Error    lipgloss.Style
	Success  lipgloss.Style
	Location lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style
	Icons    ThemeIcons
}

// ThemeIcons defines the icon set for a theme.
type ThemeIcons struct {
	Pass string
	Fail string
}

// DefaultTheme returns the colored theme.
func DefaultTheme() Theme {
	return Theme{
		Name:     "default",
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")), // red
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("34")),  // green
		Location: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),  // blue
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("242")), // gray
		Bold:     lipgloss.NewStyle().Bold(true),
		Icons: ThemeIcons{
			Pass: "✓",
			Fail: "✗",
		},
	}
}

// MonoTheme returns a theme with no colors and ASCII icons.
func MonoTheme() Theme {
	return Theme{
		Name:     "mono",
		Error:    lipgloss.NewStyle(),
		Success:  lipgloss.NewStyle(),
		Location: lipgloss.NewStyle(),
		Muted:    lipgloss.NewStyle(),
		Bold:     lipgloss.NewStyle(),
		Icons: ThemeIcons{
			Pass: "+",
			Fail: "x",
		},
	}
}

// ThemeByName returns a theme by name, defaulting to DefaultTheme.
func ThemeByName(name string) Theme {
	if name == "mono" {
		return MonoTheme()
	}
	return DefaultTheme()
}
