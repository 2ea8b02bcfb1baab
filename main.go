// Package main is the entry point for the termtint application.
package main

import (
	"github.com/samber/lo"
	"github.com/termtint-cli/termtint/cmd"
	"github.com/termtint-cli/termtint/config"
	"github.com/termtint-cli/termtint/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
