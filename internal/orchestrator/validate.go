package orchestrator

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/spf13/afero"
)

// Comparator is the relation an argument count must satisfy
type Comparator int

const (
	Less Comparator = iota - 1
	Equal
	Greater
)

func (c Comparator) String() string {
	switch c {
	case Less:
		return "less than"
	case Equal:
		return "exactly"
	case Greater:
		return "more than"
	}
	return fmt.Sprintf("Comparator(%d)", int(c))
}

// compareInts returns Less, Equal or Greater for a against b
func compareInts(a, b int) Comparator {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	}
	return Equal
}

// checkArity validates actual (which counts the verb itself) against expected
func checkArity(expected, actual int, cmp Comparator) error {
	if compareInts(actual, expected) == cmp {
		return nil
	}
	return NewArityError(cmp.String(), expected, actual)
}

// checkName rejects project names that are not pure ASCII, and the names
// that would resolve to the projects root or its parent
func checkName(name string) error {
	switch name {
	case "", ".", "..":
		return NewInvalidNameError(fmt.Sprintf("invalid project name \"%s\"", name))
	}
	for i := 0; i < len(name); i++ {
		if name[i] > unicode.MaxASCII {
			return NewInvalidNameError("non-ascii project name")
		}
	}
	return nil
}

// parseInstances parses a run instance count as an 8-bit unsigned integer
func parseInstances(s string) (uint8, error) {
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, err
	}
	return uint8(n), nil
}

// isDir reports whether path exists and is a directory
func isDir(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	return err == nil && info.IsDir()
}

// isFile reports whether path exists and is not a directory
func isFile(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	return err == nil && !info.IsDir()
}

// exists reports whether anything exists at path
func exists(fs afero.Fs, path string) bool {
	ok, err := afero.Exists(fs, path)
	return err == nil && ok
}

// checkExecutable accepts a path that exists and is not a directory
func checkExecutable(fs afero.Fs, path string) error {
	if !exists(fs, path) || isDir(fs, path) {
		return NewInvalidPathError("invalid path or no permission")
	}
	return nil
}

// checkProjectsRoot rejects a path only when it is missing and also a file,
// which never holds, so every value is accepted.
func checkProjectsRoot(fs afero.Fs, path string) error {
	if !exists(fs, path) && isFile(fs, path) {
		return NewInvalidPathError("invalid path or no permission")
	}
	return nil
}
