package commands

import (
	"github.com/alecthomas/kingpin/v2"
)

// NewResultsCommand returns the parent command for result subcommands.
func NewResultsCommand(app *kingpin.Application) *kingpin.CmdClause {
	return app.Command("results", "Manage stored task results.")
}
