// Package cmd implements the command-line interface for termtint.
package cmd

import (
	"fmt"
	"io"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/termtint-cli/termtint/color"
	"github.com/termtint-cli/termtint/icon"
	"github.com/termtint-cli/termtint/palette"
	"github.com/termtint-cli/termtint/preset"
	"github.com/termtint-cli/termtint/profile"
	"github.com/termtint-cli/termtint/scheme"
	"github.com/termtint-cli/termtint/store"
	"github.com/termtint-cli/termtint/style"
)

func init() {
	rootCmd.AddCommand(applyCmd)

	applyCmd.Flags().StringP("preset", "p", "", "Apply a shipped color scheme instead of reading standard input")
	lo.Must0(applyCmd.RegisterFlagCompletionFunc("preset", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return preset.Names(), cobra.ShellCompDirectiveNoFileComp
	}))
}

// applyCmd imports a scheme document into a profile.
var applyCmd = &cobra.Command{
	Use:   "apply [profile ID]",
	Short: "Import a scheme document from standard input into a profile",
	Long: `Import a scheme document into a profile. The document is read from
standard input unless --preset selects a shipped scheme. Every required
property must be present; writes are independent and a failure partway
leaves the profile partially updated.`,
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

		if name := lo.Must(cmd.Flags().GetString("preset")); name != "" {
			handleErr(applyPreset(st, path, name))
		} else {
			handleErr(applyDocument(st, path, cmd.InOrStdin()))
		}

		fmt.Printf(
			"%s profile updated\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
		)
	},
}

// applyDocument parses the four properties out of a scheme document and
// writes them to the profile. All reads happen before the first write.
func applyDocument(st store.Store, path string, in io.Reader) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	doc := string(data)

	font, err := scheme.ParseRequired(doc, propFont)
	if err != nil {
		return err
	}

	foreground, err := scheme.ParseRequired(doc, propForeground)
	if err != nil {
		return err
	}

	background, err := scheme.ParseRequired(doc, propBackground)
	if err != nil {
		return err
	}

	colors, err := scheme.Palette(doc)
	if err != nil {
		return err
	}

	packed, err := palette.EncodePacked(colors)
	if err != nil {
		return err
	}

	if err := st.Write(path+propFont, store.Quote(font)); err != nil {
		return err
	}
	if err := st.Write(path+propForeground, store.Quote(foreground)); err != nil {
		return err
	}
	if err := st.Write(path+propBackground, store.Quote(background)); err != nil {
		return err
	}
	return st.Write(path+propPalette, packed)
}

// applyPreset writes a shipped color scheme to the profile. Presets carry no
// font, so the profile's font is left alone.
func applyPreset(st store.Store, path, name string) error {
	p, ok := preset.ByName(name).Get()
	if !ok {
		return fmt.Errorf("unknown preset %q (available: %v)", name, preset.Names())
	}

	packed, err := palette.EncodePacked(p.Palette)
	if err != nil {
		return err
	}

	if err := st.Write(path+propForeground, store.Quote(p.Foreground)); err != nil {
		return err
	}
	if err := st.Write(path+propBackground, store.Quote(p.Background)); err != nil {
		return err
	}
	return st.Write(path+propPalette, packed)
}
