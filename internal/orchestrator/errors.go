package orchestrator

import (
	"errors"
	"fmt"
	"strings"
)

// Error types for the categories of failure a command can end with
var (
	ErrConfigLoad         = errors.New("failed to load config")
	ErrConfigIncomplete   = errors.New("incomplete config")
	ErrArity              = errors.New("wrong argument count")
	ErrInvalidName        = errors.New("invalid project name")
	ErrInvalidPath        = errors.New("invalid path")
	ErrAlreadyExists      = errors.New("already exists")
	ErrUserDeclined       = errors.New("canceled")
	ErrPersistence        = errors.New("failed to save config")
	ErrSpawn              = errors.New("failed to launch")
	ErrUnknownVerb        = errors.New("invalid action")
	ErrUnknownSubAction   = errors.New("invalid config action")
	ErrUnknownConfigEntry = errors.New("unknown config entry")
	ErrIO                 = errors.New("i/o error")
)

// Severity of a reported failure
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarn
)

// CLIError is a failure reported to the user as a single diagnostic line
type CLIError struct {
	Type    error
	Message string
	Cause   error
}

func (e *CLIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *CLIError) Unwrap() error {
	return e.Cause
}

// Is matches the error's Type so callers can use errors.Is with the sentinels
func (e *CLIError) Is(target error) bool {
	return e.Type == target
}

// Severity returns how the failure is prefixed when reported
func (e *CLIError) Severity() Severity {
	if e.Type == ErrConfigIncomplete {
		return SeverityWarn
	}
	return SeverityError
}

func newError(kind error, cause error, format string, args ...any) *CLIError {
	return &CLIError{
		Type:    kind,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// NewConfigLoadError reports a config store that could not be read
func NewConfigLoadError(cause error) *CLIError {
	return newError(ErrConfigLoad, cause, "failed to load config")
}

// NewConfigIncompleteError names the config entries that must be set first
func NewConfigIncompleteError(missing []string, usage string) *CLIError {
	suffix := "ies"
	if len(missing) == 1 {
		suffix = "y"
	}
	return newError(ErrConfigIncomplete, nil, "please set up the following config entr%s: %s by using %s",
		suffix, strings.Join(missing, ", "), usage)
}

// NewArityError reports an argument count outside the expected relation
func NewArityError(relation string, expected, actual int) *CLIError {
	noun := "args"
	if expected == 1 {
		noun = "arg"
	}
	return newError(ErrArity, nil, "expected %s %d %s, got %d", relation, expected, noun, actual)
}

// NewInvalidNameError reports a project name that cannot be used
func NewInvalidNameError(reason string) *CLIError {
	return newError(ErrInvalidName, nil, "%s", reason)
}

// NewInvalidPathError reports a path that is missing or of the wrong type
func NewInvalidPathError(message string) *CLIError {
	return newError(ErrInvalidPath, nil, "%s", message)
}

// NewAlreadyExistsError reports a project directory present at creation time
func NewAlreadyExistsError(name string) *CLIError {
	return newError(ErrAlreadyExists, nil, "project \"%s\" already exists", name)
}

// NewDeclinedError reports a confirmation answered with no
func NewDeclinedError() *CLIError {
	return newError(ErrUserDeclined, nil, "canceled")
}

// NewPersistenceError reports a config store write failure
func NewPersistenceError(cause error) *CLIError {
	return newError(ErrPersistence, cause, "failed to save config")
}

// NewSpawnError reports an editor process that could not be started
func NewSpawnError(executable string, cause error) *CLIError {
	return newError(ErrSpawn, cause, "failed to launch %s", executable)
}

// NewUnknownVerbError reports an unrecognized action
func NewUnknownVerbError(verb string) *CLIError {
	return newError(ErrUnknownVerb, nil, "invalid action %s", verb)
}

// NewUnknownSubActionError reports an unrecognized config action
func NewUnknownSubActionError(action string) *CLIError {
	return newError(ErrUnknownSubAction, nil, "invalid action %s", action)
}

// NewUnknownConfigEntryError reports an unrecognized config entry
func NewUnknownConfigEntryError(entry string) *CLIError {
	return newError(ErrUnknownConfigEntry, nil, "unknown config entry %s", entry)
}

// NewIOError reports an unexpected filesystem failure
func NewIOError(message string, cause error) *CLIError {
	return newError(ErrIO, cause, "%s", message)
}

// IsDeclined reports whether err is a user-declined confirmation
func IsDeclined(err error) bool {
	return errors.Is(err, ErrUserDeclined)
}
