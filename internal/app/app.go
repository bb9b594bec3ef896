package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"godot-cli/internal/config"
	"godot-cli/internal/interactive"
	"godot-cli/internal/interfaces"
	"godot-cli/internal/orchestrator"
	"godot-cli/internal/template"
	"godot-cli/internal/ui"
	"godot-cli/pkg/models"
)

const (
	envPrefix       = "GODOT_CLI"
	defaultLogLevel = "warn"
)

// ExitError asks the caller to terminate with Code after the diagnostic
// has already been printed
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// Env holds the process resources a run uses. Nil fields fall back to the
// real process environment.
type Env struct {
	Fs        afero.Fs
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Launcher  interfaces.Launcher
	Confirmer interfaces.Confirmer
}

// Run executes one invocation against the real process environment
func Run(inv *models.Invocation, build orchestrator.BuildInfo) error {
	return RunWith(inv, build, Env{})
}

// RunWith executes one invocation using env
func RunWith(inv *models.Invocation, build orchestrator.BuildInfo, env Env) error {
	env = withDefaults(env)
	out := ui.NewPrinterTo(env.Stdout, env.Stderr, inv.Color)
	settings := newSettings()
	logger := newLogger(settings, env.Stderr, out)

	for _, flag := range inv.Dropped {
		out.Warnf("unknown arg %s", flag)
	}

	confirmer := env.Confirmer
	if confirmer == nil {
		if env.Stdin == nil {
			confirmer = interactive.NewPrompter(out)
		} else {
			confirmer = interactive.NewPrompterFrom(env.Stdin, out)
		}
	}

	store, err := config.NewManager(env.Fs, settings.GetString("config"))
	if err != nil {
		return report(out, orchestrator.NewConfigLoadError(err))
	}
	logger.WithField("location", store.Location()).Debug("loading config")

	cfg, err := loadConfig(store, confirmer, out)
	if err != nil {
		return err
	}

	renderer, err := newRenderer(env.Fs, settings.GetString("marker_template"))
	if err != nil {
		return report(out, orchestrator.NewIOError("failed to load marker template", err))
	}

	orch := orchestrator.New(orchestrator.Options{
		Config:    cfg,
		Store:     store,
		Fs:        env.Fs,
		Launcher:  env.Launcher,
		Confirmer: confirmer,
		Renderer:  renderer,
		Printer:   out,
		Logger:    logger,
		Build:     build,
	})

	return report(out, orch.Dispatch(inv.Args))
}

func withDefaults(env Env) Env {
	if env.Fs == nil {
		env.Fs = afero.NewOsFs()
	}
	if env.Stdout == nil {
		env.Stdout = os.Stdout
	}
	if env.Stderr == nil {
		env.Stderr = os.Stderr
	}
	if env.Launcher == nil {
		env.Launcher = orchestrator.NewProcessLauncher()
	}
	return env
}

// newSettings reads process settings from GODOT_CLI_* environment variables
func newSettings() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetDefault("config", "")
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("marker_template", "")
	return v
}

func newLogger(settings *viper.Viper, w io.Writer, out *ui.Printer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    out.Mode() == ui.ColorNever,
		ForceColors:      out.Mode() == ui.ColorAlways,
	})

	raw := strings.TrimSpace(settings.GetString("log_level"))
	level, err := logrus.ParseLevel(raw)
	if err != nil {
		out.Warnf("invalid log level %q, using %s", raw, defaultLogLevel)
		level = logrus.WarnLevel
	}
	logger.SetLevel(level)
	return logger
}

// newRenderer parses the marker template file at path, or the built-in
// template when path is empty
func newRenderer(fs afero.Fs, path string) (*template.Processor, error) {
	if path == "" {
		return template.NewProcessor("")
	}
	text, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	return template.NewProcessor(string(text))
}

// loadConfig reads the stored configuration. A corrupt store may be reset to
// defaults with the user's approval; the reset is not saved until a later
// mutation stores it.
func loadConfig(store interfaces.ConfigStore, confirmer interfaces.Confirmer, out *ui.Printer) (*interfaces.Config, error) {
	cfg, err := store.Load()
	if err == nil {
		return cfg, nil
	}

	out.Errorf("%v", orchestrator.NewConfigLoadError(err))
	ok, cerr := confirmer.Confirm("reset to default?")
	if cerr != nil {
		return nil, report(out, orchestrator.NewIOError("failed to read answer", cerr))
	}
	if !ok {
		return nil, &ExitError{Code: 1}
	}
	return &interfaces.Config{}, nil
}

// report prints err as a single diagnostic and maps it to an exit status
func report(out *ui.Printer, err error) error {
	if err == nil {
		return nil
	}

	var cliErr *orchestrator.CLIError
	if !errors.As(err, &cliErr) {
		out.Errorf("%v", err)
		return &ExitError{Code: 1}
	}

	if cliErr.Severity() == orchestrator.SeverityWarn {
		out.Warnf("%s", cliErr.Error())
	} else {
		out.Errorf("%s", cliErr.Error())
	}

	if orchestrator.IsDeclined(cliErr) {
		return nil
	}
	return &ExitError{Code: 1}
}
