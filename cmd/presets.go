// Package cmd implements the command-line interface for termtint.
package cmd

import (
	"errors"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/termtint-cli/termtint/color"
	"github.com/termtint-cli/termtint/palette"
	"github.com/termtint-cli/termtint/preset"
	"github.com/termtint-cli/termtint/style"
	"github.com/termtint-cli/termtint/util"
)

func completionPresetNames(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return preset.Names(), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}

// presetsCmd serves as the parent command for the shipped color schemes.
var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Inspect the shipped color schemes",
}

func init() {
	presetsCmd.AddCommand(presetsListCmd)

	presetsListCmd.Flags().BoolP("raw", "r", false, "Suppress the summary line in the output")
	presetsListCmd.SetOut(os.Stdout)
}

// presetsListCmd displays the names of all shipped color schemes.
var presetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Display the names of all shipped color schemes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range preset.Names() {
			cmd.Println(name)
		}

		if !lo.Must(cmd.Flags().GetBool("raw")) {
			cmd.Println()
			cmd.Println(style.Faint(util.Quantify(len(preset.Builtins), "preset", "presets")))
		}
	},
}

func init() {
	presetsCmd.AddCommand(presetsShowCmd)
	presetsShowCmd.SetOut(os.Stdout)
}

// presetsShowCmd renders a color scheme as terminal swatches.
var presetsShowCmd = &cobra.Command{
	Use:               "show NAME",
	Short:             "Render a shipped color scheme as terminal swatches",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionPresetNames,
	Run: func(cmd *cobra.Command, args []string) {
		p, ok := preset.ByName(args[0]).Get()
		if !ok {
			handleErr(errors.New("unknown preset " + style.Fg(color.Red)(args[0])))
		}

		// Narrow terminals get narrower swatches.
		swatchWidth := 8
		if w, _, err := util.TerminalSize(); err == nil && w < 8*palette.Size/2 {
			swatchWidth = 4
		}

		cmd.Println(style.Bold(p.Name))
		cmd.Printf("%s %s\n", style.Faint("foreground"), style.Fg(color.New(p.Foreground))(p.Foreground))
		cmd.Printf("%s %s\n", style.Faint("background"), style.Fg(color.New(p.Background))(p.Background))

		for row := 0; row < 2; row++ {
			var b strings.Builder
			for _, c := range p.Palette[row*8 : row*8+8] {
				b.WriteString(style.Swatch(color.New(c), swatchWidth)(""))
			}
			cmd.Println(b.String())
		}

		packed := lo.Must(palette.EncodePacked(p.Palette))
		cmd.Println(style.Faint(packed))
	},
}
