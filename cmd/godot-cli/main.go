package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"godot-cli/internal/app"
	"godot-cli/internal/orchestrator"
	"godot-cli/pkg/models"
)

// Build-time variables injected via ldflags
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// newRootCmd builds the root command. Flag parsing is left to the
// application so actions, positionals and global flags may appear in any
// order, and help is an action rather than a cobra flag.
func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "godot-cli [action] [args]",
		Short: "A convenience CLI for creating, opening and running Godot projects",
		Long: `godot-cli manages a directory of Godot projects.

Configure the editor executable and the projects directory once with
"godot-cli config set", then create, open, run, list and delete projects
by name. Run "godot-cli help" for the list of actions.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(models.ParseInvocation(args), orchestrator.BuildInfo{
				Version: version,
				Commit:  commit,
				Date:    date,
			})
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var exitErr *app.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
