package app

import (
	"github.com/spf13/cobra"

	"github.com/karnadigital/atlas/cmd/atlas/cmd/ingest"
	"github.com/karnadigital/atlas/cmd/atlas/cmd/list"
	"github.com/karnadigital/atlas/cmd/atlas/cmd/localize"
	"github.com/karnadigital/atlas/cmd/atlas/cmd/validate"
	"github.com/karnadigital/atlas/cmd/atlas/cmd/version"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(ingest.NewCommand(a))
	rootCmd.AddCommand(list.NewCommand(a))

	// Management commands
	rootCmd.AddCommand(validate.NewCommand(a))
	rootCmd.AddCommand(localize.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(version.NewCommand(a))
}
