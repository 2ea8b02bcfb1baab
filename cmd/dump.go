// Package cmd implements the command-line interface for termtint.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/termtint-cli/termtint/palette"
	"github.com/termtint-cli/termtint/profile"
	"github.com/termtint-cli/termtint/scheme"
)

func init() {
	rootCmd.AddCommand(dumpCmd)
	dumpCmd.SetOut(os.Stdout)
}

// dumpCmd exports a profile's display properties as a scheme document.
var dumpCmd = &cobra.Command{
	Use:   "dump [profile ID]",
	Short: "Export a profile's display properties as a scheme document",
	Long: `Export a profile's display properties as a scheme document on standard
output, suitable for a later apply. A profile that is missing any of the
required properties aborts the dump.`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionProfileIDs,
	Run: func(cmd *cobra.Command, args []string) {
		var id string
		if len(args) == 1 {
			id = args[0]
		}

		st := activeStore()

		path, err := profile.Resolve(st, id)
		handleErr(err)

		font, err := readProperty(st, path, propFont)
		handleErr(err)

		foreground, err := readProperty(st, path, propForeground)
		handleErr(err)

		background, err := readProperty(st, path, propBackground)
		handleErr(err)

		packed, err := readProperty(st, path, propPalette)
		handleErr(err)

		colors, err := palette.DecodePacked(packed)
		handleErr(err)

		cmd.Print(scheme.Dump(font, foreground, background, colors))
	},
}
