package orchestrator

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"godot-cli/internal/interfaces"
	"godot-cli/internal/project"
	"godot-cli/internal/template"
	"godot-cli/internal/ui"
)

// Name is the command name shown in help and hints
const Name = "godot-cli"

// maxUnconfirmedInstances is the largest run count started without asking
const maxUnconfirmedInstances = 4

// BuildInfo carries the values injected at build time
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// RepositoryFactory builds the project repository for a projects root
type RepositoryFactory func(root string) interfaces.ProjectRepository

// Options configures an Orchestrator. Config, Store, Launcher, Confirmer and
// Printer are required; the rest have defaults.
type Options struct {
	Config    *interfaces.Config
	Store     interfaces.ConfigStore
	Fs        afero.Fs
	Launcher  interfaces.Launcher
	Confirmer interfaces.Confirmer
	Renderer  interfaces.MarkerRenderer
	Projects  RepositoryFactory
	Printer   *ui.Printer
	Logger    logrus.FieldLogger
	Build     BuildInfo
}

// Orchestrator dispatches one command against the loaded configuration
type Orchestrator struct {
	config    *interfaces.Config
	store     interfaces.ConfigStore
	fs        afero.Fs
	launcher  interfaces.Launcher
	confirmer interfaces.Confirmer
	renderer  interfaces.MarkerRenderer
	projects  RepositoryFactory
	out       *ui.Printer
	log       logrus.FieldLogger
	build     BuildInfo
}

// New creates an orchestrator from opts
func New(opts Options) *Orchestrator {
	o := &Orchestrator{
		config:    opts.Config,
		store:     opts.Store,
		fs:        opts.Fs,
		launcher:  opts.Launcher,
		confirmer: opts.Confirmer,
		renderer:  opts.Renderer,
		projects:  opts.Projects,
		out:       opts.Printer,
		log:       opts.Logger,
		build:     opts.Build,
	}
	if o.config == nil {
		o.config = &interfaces.Config{}
	}
	if o.fs == nil {
		o.fs = afero.NewOsFs()
	}
	if o.renderer == nil {
		o.renderer = template.MustNewProcessor("")
	}
	if o.projects == nil {
		fs, renderer := o.fs, o.renderer
		o.projects = func(root string) interfaces.ProjectRepository {
			return project.NewRepository(fs, root, renderer)
		}
	}
	if o.log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		o.log = discard
	}
	return o
}

// Config returns the in-memory configuration, including unsaved mutations
func (o *Orchestrator) Config() *interfaces.Config {
	return o.config
}

// Dispatch runs the action named by args[0]. args must already be stripped of
// global flags. The returned error is a *CLIError describing the single
// diagnostic to report.
func (o *Orchestrator) Dispatch(args []string) error {
	if len(args) == 0 {
		args = []string{"help"}
	}

	verb := args[0]
	o.log.WithFields(logrus.Fields{"verb": verb, "argc": len(args)}).Debug("dispatching")

	switch verb {
	case "help", "?", "/?":
		o.printActionHelp()
		return nil
	case "version":
		o.printVersion()
		return nil
	case "new", "create":
		return o.create(args)
	case "open":
		return o.open(args)
	case "run":
		return o.run(args)
	case "list":
		return o.list(args)
	case "delete", "remove":
		return o.remove(args)
	case "config":
		return o.configure(args)
	default:
		return NewUnknownVerbError(verb)
	}
}

// repository returns the project repository for the configured root
func (o *Orchestrator) repository() interfaces.ProjectRepository {
	return o.projects(o.config.ProjectDir)
}

// resolveProject checks the config and the name, then maps the name to its directory
func (o *Orchestrator) resolveProject(name string) (interfaces.ProjectRepository, string, error) {
	if missing := o.config.Missing(interfaces.Entries...); len(missing) > 0 {
		return nil, "", NewConfigIncompleteError(missing, Name+" config set <entry> <value>")
	}
	if err := checkName(name); err != nil {
		return nil, "", err
	}

	repo := o.repository()
	path := repo.Resolve(name)
	o.log.WithField("path", path).Debug("resolved project")
	return repo, path, nil
}

// confirm asks the user and converts a no into ErrUserDeclined
func (o *Orchestrator) confirm(format string, args ...any) error {
	ok, err := o.confirmer.Confirm(fmt.Sprintf(format, args...))
	if err != nil {
		return NewIOError("failed to read confirmation", err)
	}
	if !ok {
		return NewDeclinedError()
	}
	return nil
}

// launch starts the configured editor with args
func (o *Orchestrator) launch(args []string) error {
	pid, err := o.launcher.Launch(o.config.GodotExec, args...)
	if err != nil {
		return NewSpawnError(o.config.GodotExec, err)
	}
	o.log.WithFields(logrus.Fields{"pid": pid, "args": args}).Debug("launched editor")
	return nil
}

func (o *Orchestrator) create(args []string) error {
	if err := checkArity(2, len(args), Equal); err != nil {
		return err
	}

	name := args[1]
	repo, path, err := o.resolveProject(name)
	if err != nil {
		return err
	}

	if err := o.confirm("confirm %s of project \"%s\"?", o.out.Accent("creation"), o.out.Bold(path)); err != nil {
		return err
	}

	if err := repo.Create(path); err != nil {
		if errors.Is(err, os.ErrExist) {
			return NewAlreadyExistsError(name)
		}
		return NewIOError("failed to create project", err)
	}
	if err := repo.WriteMarker(path, name); err != nil {
		return NewIOError("failed to write project file", err)
	}

	return o.launch(editCommand(path))
}

func (o *Orchestrator) open(args []string) error {
	if err := checkArity(2, len(args), Equal); err != nil {
		return err
	}

	repo, path, err := o.resolveProject(args[1])
	if err != nil {
		return err
	}
	if !repo.IsDir(path) {
		return NewInvalidPathError("invalid path or no permission")
	}

	o.out.Printf("opening project %s...\n", o.out.Bold(path))
	return o.launch(editCommand(path))
}

func (o *Orchestrator) run(args []string) error {
	if err := checkArity(1, len(args), Greater); err != nil {
		return err
	}
	if err := checkArity(4, len(args), Less); err != nil {
		return err
	}

	repo, path, err := o.resolveProject(args[1])
	if err != nil {
		return err
	}

	instances, label := uint8(1), "1"
	if len(args) > 2 {
		label = args[2]
		n, err := parseInstances(label)
		if err != nil {
			o.out.Warnf("invalid instance count (0-255): %v. defaulting to 1", err)
			label = "1"
		} else {
			instances = n
		}
	}

	if !repo.IsDir(path) {
		return NewInvalidPathError("invalid path or no permission")
	}

	if instances > maxUnconfirmedInstances {
		if err := o.confirm("run %s instances of the project?", o.out.Bold(label)); err != nil {
			return err
		}
	}

	o.out.Printf("running project %s with %d instances...\n", o.out.Bold(path), instances)

	for i := 0; i < int(instances); i++ {
		if err := o.launch(runCommand(path)); err != nil {
			return err
		}
	}
	return nil
}

func (o *Orchestrator) list(args []string) error {
	if err := checkArity(1, len(args), Equal); err != nil {
		return err
	}

	if missing := o.config.Missing(interfaces.EntryProjectDir); len(missing) > 0 {
		return NewConfigIncompleteError(missing, Name+" config set <entry> <value>")
	}

	repo := o.repository()
	if !repo.IsDir(repo.Root()) {
		return NewInvalidPathError(fmt.Sprintf("projects directory \"%s\" not found", repo.Root()))
	}

	for name, err := range repo.Projects() {
		if err != nil {
			o.out.Errorf("%v", err)
			continue
		}
		o.out.Println(name)
	}
	return nil
}

func (o *Orchestrator) remove(args []string) error {
	if err := checkArity(2, len(args), Equal); err != nil {
		return err
	}

	repo, path, err := o.resolveProject(args[1])
	if err != nil {
		return err
	}
	if !repo.Exists(path) {
		return NewInvalidPathError(fmt.Sprintf("project \"%s\" not found", path))
	}

	if err := o.confirm("confirm %s of \"%s\"?", o.out.Danger("deletion"), path); err != nil {
		return err
	}

	if err := repo.DeleteTree(path); err != nil {
		return NewIOError("failed to delete project", err)
	}
	return nil
}

func (o *Orchestrator) configure(args []string) error {
	if len(args) == 1 {
		o.out.Printf("%s %s\n\n", o.out.Title("location:"), o.store.Location())
		o.printConfigHelp()
		return nil
	}

	action := args[1]
	switch action {
	case "get":
		if err := checkArity(3, len(args), Equal); err != nil {
			return err
		}
		value, err := o.config.Get(args[2])
		if err != nil {
			return NewUnknownConfigEntryError(args[2])
		}
		o.out.Println(value)
		return nil

	case "set":
		if err := checkArity(4, len(args), Equal); err != nil {
			return err
		}
		entry, value := args[2], args[3]
		switch entry {
		case interfaces.EntryGodotExec:
			if err := checkExecutable(o.fs, value); err != nil {
				return err
			}
		case interfaces.EntryProjectDir:
			if err := checkProjectsRoot(o.fs, value); err != nil {
				return err
			}
		default:
			return NewUnknownConfigEntryError(entry)
		}
		if err := o.config.Set(entry, value); err != nil {
			return NewUnknownConfigEntryError(entry)
		}

	case "delete", "remove":
		if err := checkArity(3, len(args), Equal); err != nil {
			return err
		}
		if err := o.config.Clear(args[2]); err != nil {
			return NewUnknownConfigEntryError(args[2])
		}

	case "clear":
		if err := checkArity(2, len(args), Equal); err != nil {
			return err
		}
		if err := o.confirm("confirm deletion of config?"); err != nil {
			return err
		}
		o.config.Reset()

	default:
		return NewUnknownSubActionError(action)
	}

	return o.persist()
}

// persist stores the in-memory config; a failure leaves the in-memory value as is
func (o *Orchestrator) persist() error {
	if err := o.store.Store(o.config); err != nil {
		return NewPersistenceError(err)
	}
	o.log.WithField("location", o.store.Location()).Debug("saved config")
	return nil
}

func (o *Orchestrator) printActionHelp() {
	o.out.Printf("%s - a convenience cli for godot\n", o.out.Title(Name))
	o.out.Hintf("to force disable/enable the use of colors, use %s respectively\n", o.out.Bold("--no-color/--force-color"))

	o.out.Printf("%s get/set/delete/clear [entry] [value] | configure the cli\n", o.out.Bold("config"))
	o.out.Printf("%s/%s name | create a project\n", o.out.Bold("new"), o.out.Bold("create"))
	o.out.Printf("%s name | open a project\n", o.out.Bold("open"))
	o.out.Printf("%s name [n] | run a project [n times]\n", o.out.Bold("run"))
	o.out.Printf("%s | list all projects\n", o.out.Bold("list"))
	o.out.Printf("%s/%s name | delete a project\n", o.out.Bold("delete"), o.out.Bold("remove"))
	o.out.Printf("%s | print version information\n\n", o.out.Bold("version"))
}

func (o *Orchestrator) printConfigHelp() {
	o.out.Printf("  %s\n", o.out.Accent("actions:"))
	o.out.Printf("%s: get a config entry\n", o.out.Bold("get"))
	o.out.Printf("%s: set a config entry\n", o.out.Bold("set"))
	o.out.Printf("%s: clear a config entry\n", o.out.Bold("delete/remove"))
	o.out.Printf("%s: clear the entire config\n\n", o.out.Bold("clear"))

	o.out.Printf("  %s\n", o.out.Accent("entries:"))
	o.out.Printf("%s: path to the executable\n", o.out.Bold(interfaces.EntryGodotExec))
	o.out.Printf("%s: directory containing projects\n\n", o.out.Bold(interfaces.EntryProjectDir))
}

func (o *Orchestrator) printVersion() {
	o.out.Printf("%s version %s\n", Name, o.build.Version)
	o.out.Printf("  commit: %s\n", o.build.Commit)
	o.out.Printf("  built: %s\n", o.build.Date)
	o.out.Printf("  go version: %s\n", runtime.Version())
	o.out.Printf("  platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}
