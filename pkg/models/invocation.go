package models

import (
	"strings"

	"godot-cli/internal/ui"
)

// Global flags recognized anywhere on the command line
const (
	FlagNoColor    = "--no-color"
	FlagForceColor = "--force-color"
)

// Invocation represents one parsed command line
type Invocation struct {
	// Args is the verb followed by its positional arguments, flags removed
	Args []string
	// Color is the output colour mode selected by the global flags
	Color ui.ColorMode
	// Dropped lists unrecognized "--" tokens that were removed from Args
	Dropped []string
}

// ParseInvocation strips global flags from args. Recognized flags set the
// colour mode (the last one wins); any other "--" token is dropped and
// recorded; everything else is kept in order.
func ParseInvocation(args []string) *Invocation {
	inv := &Invocation{
		Args:  []string{},
		Color: ui.ColorAuto,
	}

	for _, arg := range args {
		switch arg {
		case FlagNoColor:
			inv.Color = ui.ColorNever
		case FlagForceColor:
			inv.Color = ui.ColorAlways
		default:
			if strings.HasPrefix(arg, "--") {
				inv.Dropped = append(inv.Dropped, arg)
				continue
			}
			inv.Args = append(inv.Args, arg)
		}
	}

	return inv
}
