package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/termtint-cli/termtint/filesystem"
)

// File maps the preference-database path tree onto a directory tree rooted
// at Base, through the swappable filesystem layer. Directories become
// directories and keys become files, so the dconf addressing convention
// carries over unchanged. Used when store.backend is "file" and by tests
// against an in-memory filesystem.
type File struct {
	Base string
}

// resolve translates a database path into a location under Base.
func (f *File) resolve(path string) string {
	return filepath.Join(f.Base, filepath.FromSlash(path))
}

func (f *File) Read(path string) (string, error) {
	data, err := filesystem.API().ReadFile(f.resolve(path))
	if err != nil {
		if os.IsNotExist(err) {
			// Absent keys read as empty, mirroring dconf.
			return "", nil
		}
		return "", fmt.Errorf("store read %s: %w", path, err)
	}
	return string(data), nil
}

func (f *File) Write(path, value string) error {
	target := f.resolve(path)
	if err := filesystem.API().MkdirAll(filepath.Dir(target), os.ModePerm); err != nil {
		return fmt.Errorf("store write %s: %w", path, err)
	}
	if err := filesystem.API().WriteFile(target, []byte(value), 0666); err != nil {
		return fmt.Errorf("store write %s: %w", path, err)
	}
	return nil
}

func (f *File) List(path string) ([]string, error) {
	infos, err := filesystem.API().ReadDir(f.resolve(path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("store list %s: %w", path, err)
	}

	var entries []string
	for _, info := range infos {
		name := info.Name()
		if info.IsDir() {
			name += "/"
		}
		entries = append(entries, name)
	}
	return entries, nil
}
