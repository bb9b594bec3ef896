package models

import (
	"reflect"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"godot-cli/internal/ui"
)

func TestParseInvocation(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []string
		color   ui.ColorMode
		dropped []string
	}{
		{
			name:  "empty",
			args:  nil,
			want:  []string{},
			color: ui.ColorAuto,
		},
		{
			name:  "plain verb",
			args:  []string{"run", "pong", "3"},
			want:  []string{"run", "pong", "3"},
			color: ui.ColorAuto,
		},
		{
			name:  "no color anywhere",
			args:  []string{"list", "--no-color"},
			want:  []string{"list"},
			color: ui.ColorNever,
		},
		{
			name:  "last color flag wins",
			args:  []string{"--no-color", "open", "--force-color", "pong"},
			want:  []string{"open", "pong"},
			color: ui.ColorAlways,
		},
		{
			name:    "unknown flags dropped",
			args:    []string{"--verbose", "new", "pong", "--fast"},
			want:    []string{"new", "pong"},
			color:   ui.ColorAuto,
			dropped: []string{"--verbose", "--fast"},
		},
		{
			name:  "single dash passes through",
			args:  []string{"run", "-x", "-"},
			want:  []string{"run", "-x", "-"},
			color: ui.ColorAuto,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := ParseInvocation(tt.args)
			if !reflect.DeepEqual(inv.Args, tt.want) {
				t.Errorf("Args = %v, expected %v", inv.Args, tt.want)
			}
			if inv.Color != tt.color {
				t.Errorf("Color = %v, expected %v", inv.Color, tt.color)
			}
			if !reflect.DeepEqual(inv.Dropped, tt.dropped) {
				t.Errorf("Dropped = %v, expected %v", inv.Dropped, tt.dropped)
			}
		})
	}
}

func TestParseInvocationProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	vocabulary := []string{"--no-color", "--force-color", "--other", "run", "pong", "3", "-e"}
	token := gen.IntRange(0, len(vocabulary)-1).Map(func(i int) string {
		return vocabulary[i]
	})
	tokens := gen.SliceOf(token)

	properties.Property("no positional starts with --", prop.ForAll(
		func(args []string) bool {
			for _, arg := range ParseInvocation(args).Args {
				if strings.HasPrefix(arg, "--") {
					return false
				}
			}
			return true
		},
		tokens,
	))

	properties.Property("every token is kept, consumed or dropped", prop.ForAll(
		func(args []string) bool {
			inv := ParseInvocation(args)
			consumed := 0
			for _, arg := range args {
				if arg == FlagNoColor || arg == FlagForceColor {
					consumed++
				}
			}
			return len(inv.Args)+len(inv.Dropped)+consumed == len(args)
		},
		tokens,
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
