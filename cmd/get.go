// Package cmd implements the command-line interface for termtint.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/termtint-cli/termtint/profile"
)

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.SetOut(os.Stdout)
}

// getCmd reads a single display property from a profile.
var getCmd = &cobra.Command{
	Use:   "get [profile ID] PROPERTY",
	Short: "Read a display property from a terminal profile",
	Long: `Read a display property from a terminal profile.

Recognized properties: font, foreground-color, background-color, palette.
When no profile ID is given, a single profile is selected automatically and
multiple profiles are offered interactively.`,
	Args:              cobra.RangeArgs(1, 2),
	ValidArgsFunction: completionProfileIDs,
	Run: func(cmd *cobra.Command, args []string) {
		id, property, err := profileAndProperty(args, 0)
		handleErr(err)

		st := activeStore()

		path, err := profile.Resolve(st, id)
		handleErr(err)

		value, err := readProperty(st, path, property)
		handleErr(err)

		cmd.Println(value)
	},
}
