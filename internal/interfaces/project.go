package interfaces

import "iter"

// MarkerFile is the file whose presence identifies a project directory
const MarkerFile = "project.godot"

// ProjectRepository maps project names to directories under the projects root
type ProjectRepository interface {
	// Root returns the projects root
	Root() string

	// Resolve returns the directory of the named project without touching the filesystem
	Resolve(name string) string

	// IsDir reports whether path exists and is a directory
	IsDir(path string) bool

	// IsFile reports whether path exists and is not a directory
	IsFile(path string) bool

	// Exists reports whether anything exists at path
	Exists(path string) bool

	// Create makes the project directory; an existing directory yields an fs.ErrExist error
	Create(path string) error

	// WriteMarker writes the marker file for projectName inside path
	WriteMarker(path, projectName string) error

	// Projects enumerates directory names under the root that contain a marker file
	Projects() iter.Seq2[string, error]

	// DeleteTree removes path and everything under it
	DeleteTree(path string) error
}
