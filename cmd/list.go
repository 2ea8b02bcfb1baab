// Package cmd implements the command-line interface for termtint.
package cmd

import (
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/termtint-cli/termtint/color"
	"github.com/termtint-cli/termtint/profile"
	"github.com/termtint-cli/termtint/style"
	"github.com/termtint-cli/termtint/util"
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolP("raw", "r", false, "Print bare profile IDs without names or summary")
	listCmd.SetOut(os.Stdout)
}

// listCmd displays the terminal profiles present in the preference database.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the terminal profiles in the preference database",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		st := activeStore()

		ids, err := profile.List(st)
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("raw")) {
			for _, id := range ids {
				cmd.Println(id)
			}
			return
		}

		for _, id := range ids {
			cmd.Printf("%s %s\n",
				style.Fg(color.Purple)(profile.VisibleName(st, id)),
				style.Faint("("+id+")"),
			)
		}

		if len(ids) > 0 {
			cmd.Println()
		}
		cmd.Println(style.Faint(util.Quantify(len(ids), "profile", "profiles")))
	},
}
