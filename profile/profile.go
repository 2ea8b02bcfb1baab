// Package profile enumerates terminal profiles in the preference database
// and resolves a profile identifier, or an interactive choice, to its
// storage path.
package profile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/termtint-cli/termtint/color"
	"github.com/termtint-cli/termtint/icon"
	"github.com/termtint-cli/termtint/log"
	"github.com/termtint-cli/termtint/store"
	"github.com/termtint-cli/termtint/style"
)

// ErrNoProfiles indicates the database holds no profiles at all. The
// emulator creates profiles on its own first run; this tool never does.
var ErrNoProfiles = errors.New("no profiles found in the preference database")

// Path returns the storage path for a profile ID, without checking that the
// profile exists. Reads against a nonexistent profile simply come back
// empty.
func Path(id string) string {
	return store.Root() + ":" + id + "/"
}

// List enumerates the profile IDs under the database root, in store
// enumeration order. Child directories are reported by the store as
// `:<id>/`; both decorations are stripped.
func List(st store.Store) ([]string, error) {
	entries, err := st.List(store.Root())
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, entry := range entries {
		if !strings.HasSuffix(entry, "/") {
			// Keys at the root (e.g. the emulator's default-profile
			// pointer) are not profiles.
			continue
		}
		ids = append(ids, strings.TrimPrefix(strings.TrimSuffix(entry, "/"), ":"))
	}
	return ids, nil
}

// VisibleName looks a profile's display name up. Absent or malformed names
// degrade to a placeholder instead of failing: the name is only ever used
// for display.
func VisibleName(st store.Store, id string) string {
	raw, err := st.Read(Path(id) + "visible-name")
	if err != nil {
		log.Warnf("read visible-name of %s: %v", id, err)
		return "(unnamed)"
	}

	name, err := store.Unquote(raw)
	if err != nil {
		return "(unnamed)"
	}
	return name
}

// Resolve maps a profile identifier to its storage path. An explicit ID is
// accepted as-is. Otherwise the database is enumerated: zero profiles is an
// error, a single profile is auto-selected with a note, and multiple
// profiles trigger an interactive numeric prompt that re-asks until a valid
// 1-based index is entered. There is no cancel path.
func Resolve(st store.Store, id string) (string, error) {
	if id != "" {
		return Path(id), nil
	}

	ids, err := List(st)
	if err != nil {
		return "", err
	}

	switch len(ids) {
	case 0:
		return "", ErrNoProfiles
	case 1:
		fmt.Printf("%s Using profile %s %s\n",
			icon.Get(icon.Note),
			style.Fg(color.Purple)(VisibleName(st, ids[0])),
			style.Faint("("+ids[0]+")"),
		)
		return Path(ids[0]), nil
	default:
		n, err := choose(st, ids)
		if err != nil {
			return "", err
		}
		return Path(ids[n-1]), nil
	}
}

// choose prompts for a 1-based profile index. Swappable so tests can inject
// a selection without a terminal.
var choose = func(st store.Store, ids []string) (int, error) {
	for i, id := range ids {
		fmt.Printf("%s %s %s\n",
			style.Bold(strconv.Itoa(i+1)+")"),
			style.Fg(color.Purple)(VisibleName(st, id)),
			style.Faint("("+id+")"),
		)
	}

	var answer string
	prompt := &survey.Input{
		Message: fmt.Sprintf("Which profile? [1-%d]", len(ids)),
	}

	// survey re-asks on validation failure, which gives the unbounded
	// retry loop. Interrupting the prompt kills the whole invocation.
	err := survey.AskOne(prompt, &answer, survey.WithValidator(validateChoice(len(ids))))
	if err != nil {
		return 0, err
	}

	return strconv.Atoi(strings.TrimSpace(answer))
}

// validateChoice accepts only integers in [1, count].
func validateChoice(count int) survey.Validator {
	return func(ans interface{}) error {
		n, err := strconv.Atoi(strings.TrimSpace(ans.(string)))
		if err != nil || n < 1 || n > count {
			return fmt.Errorf("enter a number between 1 and %d", count)
		}
		return nil
	}
}
