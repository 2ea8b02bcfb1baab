// Package cmd implements the command-line interface for termtint.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/termtint-cli/termtint/color"
	"github.com/termtint-cli/termtint/icon"
	"github.com/termtint-cli/termtint/palette"
	"github.com/termtint-cli/termtint/profile"
	"github.com/termtint-cli/termtint/store"
	"github.com/termtint-cli/termtint/style"
)

func init() {
	rootCmd.AddCommand(setCmd)
}

// setCmd writes a single display property of a profile.
var setCmd = &cobra.Command{
	Use:   "set [profile ID] PROPERTY VALUE",
	Short: "Write a display property of a terminal profile",
	Long: `Write a display property of a terminal profile.

Recognized properties: font, foreground-color, background-color, palette.
Scalar values are passed through verbatim; the palette value must be the
packed form [c0, c1, ..., c15] with exactly 16 entries.`,
	Args:              cobra.RangeArgs(2, 3),
	ValidArgsFunction: completionProfileIDs,
	Run: func(cmd *cobra.Command, args []string) {
		id, property, err := profileAndProperty(args, 1)
		handleErr(err)
		value := args[len(args)-1]

		st := activeStore()

		path, err := profile.Resolve(st, id)
		handleErr(err)

		stored := store.Quote(value)
		if property == propPalette {
			// Validate the packed shape and write its canonical rendering.
			colors, err := palette.DecodePacked(value)
			handleErr(err)

			stored, err = palette.EncodePacked(colors)
			handleErr(err)
		}

		handleErr(st.Write(path+property, stored))

		fmt.Printf(
			"%s set %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(property),
		)
	},
}
