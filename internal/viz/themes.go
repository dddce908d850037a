package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/san-kum/pfx3d/internal/scene"
)

// Theme colors the panels. Background is also the clear color the strike
// zone overlay blends onto.
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Warning    lipgloss.Color
}

var (
	// ThemeNight is the stadium under lights.
	ThemeNight = Theme{
		Name:       "night",
		Primary:    "#7fd4ff",
		Accent:     "#ffe066",
		Background: "#000000",
		Text:       "#f2f2f2",
		Muted:      "#5c6370",
		Warning:    "#ff9f43",
	}

	// ThemeDayGame is grass green with clay accents.
	ThemeDayGame = Theme{
		Name:       "daygame",
		Primary:    "#1e6b2f",
		Accent:     "#b35900",
		Background: "#0b2a12",
		Text:       "#e8f5e9",
		Muted:      "#6d8f72",
		Warning:    "#d32f2f",
	}

	// ThemeScorebook is ink on paper, in the colors of a printed card.
	ThemeScorebook = Theme{
		Name:       "scorebook",
		Primary:    "#c0392b",
		Accent:     "#2c3e94",
		Background: "#1a1410",
		Text:       "#f5ecd7",
		Muted:      "#8c7b65",
		Warning:    "#e67e22",
	}

	Themes = []Theme{ThemeNight, ThemeDayGame, ThemeScorebook}
)

// GetTheme returns a theme by name, falling back to night.
func GetTheme(name string) Theme {
	t, ok := lo.Find(Themes, func(t Theme) bool { return t.Name == name })
	if !ok {
		return ThemeNight
	}
	return t
}

func ThemeNames() []string {
	return lo.Map(Themes, func(t Theme, _ int) string { return t.Name })
}

// Next is the theme after t, wrapping around.
func (t Theme) Next() Theme {
	_, i, ok := lo.FindIndexOf(Themes, func(th Theme) bool { return th.Name == t.Name })
	if !ok {
		return Themes[0]
	}
	return Themes[(i+1)%len(Themes)]
}

// Clear is the background as a scene color.
func (t Theme) Clear() scene.Color { return scene.ParseHex(string(t.Background)) }
