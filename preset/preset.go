// Package preset ships a handful of well-known color schemes so a profile
// can be themed without importing a scheme file first.
package preset

import (
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Preset is a complete color scheme: foreground, background, and the 16
// ANSI palette entries in code order 0-15. Fonts are deliberately not part
// of a preset.
type Preset struct {
	Name       string
	Foreground string
	Background string
	Palette    []string
}

// Builtins lists the shipped schemes.
var Builtins = []Preset{
	{
		Name:       "nord",
		Foreground: "#d8dee9",
		Background: "#2e3440",
		Palette: []string{
			"#3b4252", "#bf616a", "#a3be8c", "#ebcb8b",
			"#81a1c1", "#b48ead", "#88c0d0", "#e5e9f0",
			"#4c566a", "#bf616a", "#a3be8c", "#ebcb8b",
			"#81a1c1", "#b48ead", "#8fbcbb", "#eceff4",
		},
	},
	{
		Name:       "dracula",
		Foreground: "#f8f8f2",
		Background: "#282a36",
		Palette: []string{
			"#21222c", "#ff5555", "#50fa7b", "#f1fa8c",
			"#bd93f9", "#ff79c6", "#8be9fd", "#f8f8f2",
			"#6272a4", "#ff6e6e", "#69ff94", "#ffffa5",
			"#d6acff", "#ff92df", "#a4ffff", "#ffffff",
		},
	},
	{
		Name:       "gruvbox-dark",
		Foreground: "#ebdbb2",
		Background: "#282828",
		Palette: []string{
			"#282828", "#cc241d", "#98971a", "#d79921",
			"#458588", "#b16286", "#689d6a", "#a89984",
			"#928374", "#fb4934", "#b8bb26", "#fabd2f",
			"#83a598", "#d3869b", "#8ec07c", "#ebdbb2",
		},
	},
	{
		Name:       "solarized-dark",
		Foreground: "#839496",
		Background: "#002b36",
		Palette: []string{
			"#073642", "#dc322f", "#859900", "#b58900",
			"#268bd2", "#d33682", "#2aa198", "#eee8d5",
			"#002b36", "#cb4b16", "#586e75", "#657b83",
			"#839496", "#6c71c4", "#93a1a1", "#fdf6e3",
		},
	},
	{
		Name:       "catppuccin-mocha",
		Foreground: "#cdd6f4",
		Background: "#1e1e2e",
		Palette: []string{
			"#45475a", "#f38ba8", "#a6e3a1", "#f9e2af",
			"#89b4fa", "#f5c2e7", "#94e2d5", "#bac2de",
			"#585b70", "#f38ba8", "#a6e3a1", "#f9e2af",
			"#89b4fa", "#f5c2e7", "#94e2d5", "#a6adc8",
		},
	},
}

// Names returns the shipped scheme names, in declaration order.
func Names() []string {
	return lo.Map(Builtins, func(p Preset, _ int) string {
		return p.Name
	})
}

// ByName finds a shipped scheme by its exact name.
func ByName(name string) mo.Option[Preset] {
	for _, p := range Builtins {
		if p.Name == name {
			return mo.Some(p)
		}
	}
	return mo.None[Preset]()
}
