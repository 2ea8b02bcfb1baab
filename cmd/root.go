// Package cmd implements the command-line interface for termtint.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/termtint-cli/termtint/color"
	"github.com/termtint-cli/termtint/constant"
	"github.com/termtint-cli/termtint/icon"
	"github.com/termtint-cli/termtint/key"
	"github.com/termtint-cli/termtint/log"
	"github.com/termtint-cli/termtint/profile"
	"github.com/termtint-cli/termtint/scheme"
	"github.com/termtint-cli/termtint/store"
	"github.com/termtint-cli/termtint/style"
	"github.com/termtint-cli/termtint/version"
)

// Profile properties addressable through get and set.
const (
	propFont       = "font"
	propForeground = "foreground-color"
	propBackground = "background-color"
	propPalette    = "palette"
)

var properties = []string{propFont, propForeground, propBackground, propPalette}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, square)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("backend", "B", "", "Select the preference store backend (dconf, file)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("backend", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"dconf", "file"}, cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.StoreBackend, rootCmd.PersistentFlags().Lookup("backend")))

	rootCmd.PersistentFlags().StringP("root", "R", "", "Preference database directory that holds the terminal profiles")
	lo.Must0(viper.BindPFlag(key.StoreRoot, rootCmd.PersistentFlags().Lookup("root")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

// rootCmd defines the entry point for the termtint application.
var rootCmd = &cobra.Command{
	Use:   constant.Termtint,
	Short: "Configure terminal-emulator display profiles and share color schemes",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiCyan).Render("    - Configure terminal-emulator display profiles and share color schemes"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		lo.Must0(cmd.Help())
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}

// errUnknownProperty suggests the closest recognized property name.
func errUnknownProperty(property string) error {
	closest := lo.MinBy(properties, func(a string, b string) bool {
		return levenshtein.Distance(property, a) < levenshtein.Distance(property, b)
	})
	msg := fmt.Sprintf(
		"unknown property %s, did you mean %s?",
		style.Fg(color.Red)(property),
		style.Fg(color.Yellow)(closest),
	)

	return errors.New(msg)
}

// activeStore resolves the configured store backend or aborts.
func activeStore() store.Store {
	st, err := store.Active()
	handleErr(err)
	return st
}

// profileAndProperty splits the `[profile ID] PROPERTY ...` argument shapes
// shared by get and set: the property sits at position fixed from the end,
// an optional profile ID in front of it.
func profileAndProperty(args []string, trailing int) (id, property string, err error) {
	property = args[len(args)-1-trailing]
	if len(args) == 2+trailing {
		id = args[0]
	}

	if !lo.Contains(properties, property) {
		return "", "", errUnknownProperty(property)
	}
	return id, property, nil
}

// readProperty fetches a property's display form from the profile at path.
// Scalars are unquoted at the store boundary; the palette is returned in its
// packed form unchanged.
func readProperty(st store.Store, path, property string) (string, error) {
	raw, err := st.Read(path + property)
	if err != nil {
		return "", err
	}

	if property == propPalette {
		return raw, nil
	}

	if raw == "" {
		return "", &scheme.MissingPropertyError{Property: property}
	}
	return store.Unquote(raw)
}

// completionProfileIDs offers the enumerable profile IDs plus the property
// names, since the profile argument is optional and positional.
func completionProfileIDs(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return properties, cobra.ShellCompDirectiveNoFileComp
	}

	st, err := store.Active()
	if err != nil {
		return properties, cobra.ShellCompDirectiveNoFileComp
	}

	ids, err := profile.List(st)
	if err != nil {
		return properties, cobra.ShellCompDirectiveNoFileComp
	}
	return append(ids, properties...), cobra.ShellCompDirectiveNoFileComp
}
