package store

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/termtint-cli/termtint/log"
)

// Dconf reads and writes the host dconf database by shelling out to the
// dconf binary. Absent keys read as empty strings; any process failure is
// fatal to the invocation.
type Dconf struct{}

func (Dconf) Read(path string) (string, error) {
	out, err := exec.Command("dconf", "read", path).Output()
	if err != nil {
		return "", fmt.Errorf("dconf read %s: %w", path, err)
	}
	return strings.TrimSuffix(string(out), "\n"), nil
}

func (Dconf) Write(path, value string) error {
	log.Debugf("dconf write %s %s", path, value)

	if err := exec.Command("dconf", "write", path, value).Run(); err != nil {
		return fmt.Errorf("dconf write %s: %w", path, err)
	}
	return nil
}

func (Dconf) List(path string) ([]string, error) {
	out, err := exec.Command("dconf", "list", path).Output()
	if err != nil {
		return nil, fmt.Errorf("dconf list %s: %w", path, err)
	}

	var entries []string
	for _, line := range strings.Split(string(out), "\n") {
		if line != "" {
			entries = append(entries, line)
		}
	}
	return entries, nil
}
