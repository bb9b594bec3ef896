// Package project maps project names to directories under the configured
// projects root and performs their filesystem lifecycle.
package project

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"godot-cli/internal/interfaces"
)

var _ interfaces.ProjectRepository = (*Repository)(nil)

// readBatch is how many directory entries Projects reads per call
const readBatch = 64

// Repository implements the ProjectRepository interface
type Repository struct {
	fs       afero.Fs
	root     string
	renderer interfaces.MarkerRenderer
}

// NewRepository creates a repository rooted at root
func NewRepository(fs afero.Fs, root string, renderer interfaces.MarkerRenderer) *Repository {
	return &Repository{
		fs:       fs,
		root:     root,
		renderer: renderer,
	}
}

// Root returns the projects root
func (r *Repository) Root() string {
	return r.root
}

// Resolve returns the directory of the named project
func (r *Repository) Resolve(name string) string {
	return filepath.Join(r.root, name)
}

// IsDir reports whether path exists and is a directory
func (r *Repository) IsDir(path string) bool {
	ok, err := afero.IsDir(r.fs, path)
	return err == nil && ok
}

// IsFile reports whether path exists and is not a directory
func (r *Repository) IsFile(path string) bool {
	info, err := r.fs.Stat(path)
	return err == nil && !info.IsDir()
}

// Exists reports whether anything exists at path
func (r *Repository) Exists(path string) bool {
	ok, err := afero.Exists(r.fs, path)
	return err == nil && ok
}

// Create makes the project directory. The existence check and the mkdir are
// not atomic, so an existing directory is detected from the mkdir error.
func (r *Repository) Create(path string) error {
	if err := r.fs.Mkdir(path, 0755); err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("project directory %s: %w", path, os.ErrExist)
		}
		return fmt.Errorf("failed to create project directory %s: %w", path, err)
	}
	return nil
}

// WriteMarker writes the marker file naming projectName inside path
func (r *Repository) WriteMarker(path, projectName string) error {
	content, err := r.renderer.Render(interfaces.Descriptor{Name: projectName})
	if err != nil {
		return err
	}

	markerPath := filepath.Join(path, interfaces.MarkerFile)
	if err := afero.WriteFile(r.fs, markerPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", markerPath, err)
	}
	return nil
}

// HasMarker reports whether the directory at path contains a marker file
func (r *Repository) HasMarker(path string) bool {
	return r.IsFile(filepath.Join(path, interfaces.MarkerFile))
}

// Projects lazily enumerates the names of directories directly under the
// root that contain a marker file. Each call re-reads the root. Failures on
// individual entries are yielded with an empty name and enumeration goes on;
// a root that cannot be opened yields a single error.
func (r *Repository) Projects() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		dir, err := r.fs.Open(r.root)
		if err != nil {
			yield("", fmt.Errorf("failed to read projects directory %s: %w", r.root, err))
			return
		}
		defer dir.Close()

		for {
			names, err := dir.Readdirnames(readBatch)
			for _, name := range names {
				path := filepath.Join(r.root, name)
				info, statErr := r.fs.Stat(path)
				if statErr != nil {
					if !yield("", fmt.Errorf("failed to read %s: %w", path, statErr)) {
						return
					}
					continue
				}
				if !info.IsDir() || !r.HasMarker(path) {
					continue
				}
				if !yield(name, nil) {
					return
				}
			}

			if errors.Is(err, io.EOF) || (err == nil && len(names) == 0) {
				return
			}
			if err != nil {
				yield("", fmt.Errorf("failed to read projects directory %s: %w", r.root, err))
				return
			}
		}
	}
}

// DeleteTree removes path and everything under it
func (r *Repository) DeleteTree(path string) error {
	if err := r.fs.RemoveAll(path); err != nil {
		return fmt.Errorf("failed to delete %s: %w", path, err)
	}
	return nil
}
