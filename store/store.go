// Package store provides access to the hierarchical preference database that
// holds terminal-emulator profiles.
//
// Paths follow dconf addressing: directories end in a slash, keys do not.
// Two backends are available: the host dconf database and a local directory
// tree mapped through the swappable filesystem layer.
package store

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/termtint-cli/termtint/key"
	"github.com/termtint-cli/termtint/where"
)

// Store is the read/write interface to the preference database.
//
// Read returns an empty string for an absent key, mirroring dconf. List
// enumerates the immediate children of a directory path; subdirectories keep
// their trailing slash. Order is whatever the backend reports.
type Store interface {
	Read(path string) (string, error)
	Write(path, value string) error
	List(path string) ([]string, error)
}

// Root returns the configured preference-database directory under which the
// terminal profiles live.
func Root() string {
	return viper.GetString(key.StoreRoot)
}

// Active returns the backend selected by the store.backend configuration key.
func Active() (Store, error) {
	backend := viper.GetString(key.StoreBackend)
	switch backend {
	case "dconf", "":
		return Dconf{}, nil
	case "file":
		return &File{Base: where.Store()}, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q (available: dconf, file)", backend)
	}
}
