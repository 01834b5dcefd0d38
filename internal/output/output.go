// Package output writes generated files to disk.
package output

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/syssam/pgc/compiler/gen"
)

// ErrOutsideRoot is returned for a file whose path escapes the output root.
var ErrOutsideRoot = errors.New("output: path escapes the output directory")

// PathError reports a file that could not be written.
type PathError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *PathError) Error() string {
	return fmt.Sprintf("output: write %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *PathError) Unwrap() error { return e.Err }

// Writer writes generated files under a root directory.
type Writer struct {
	fs      afero.Fs
	root    string
	workers int
}

// NewWriter returns a writer of files under root on fs.
func NewWriter(fs afero.Fs, root string) *Writer {
	return &Writer{
		fs:      fs,
		root:    filepath.Clean(root),
		workers: runtime.GOMAXPROCS(0),
	}
}

// WithWorkers sets the number of parallel writes.
func (w *Writer) WithWorkers(n int) *Writer {
	if n > 0 {
		w.workers = n
	}
	return w
}

// Resolve returns the location of a generated file under the root. It
// fails with ErrOutsideRoot for absolute paths and paths leaving the root.
func (w *Writer) Resolve(name string) (string, error) {
	clean := path.Clean(name)
	if name == "" || path.IsAbs(name) || filepath.IsAbs(name) || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", &PathError{Path: name, Err: ErrOutsideRoot}
	}
	return filepath.Join(w.root, filepath.FromSlash(clean)), nil
}

// Write writes the files in parallel. Every path is checked before the
// first write, so a rejected path leaves the root untouched.
func (w *Writer) Write(ctx context.Context, files []gen.File) error {
	targets := make([]string, len(files))
	for i, f := range files {
		p, err := w.Resolve(f.Path)
		if err != nil {
			return err
		}
		targets[i] = p
	}
	if err := w.fs.MkdirAll(w.root, 0o755); err != nil {
		return fmt.Errorf("output: create output directory: %w", err)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(w.workers)
	for i, f := range files {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return w.write(targets[i], f)
			}
		})
	}
	return eg.Wait()
}

func (w *Writer) write(target string, f gen.File) error {
	if err := w.fs.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return &PathError{Path: f.Path, Err: err}
	}
	if err := afero.WriteFile(w.fs, target, []byte(f.Content), 0o644); err != nil {
		return &PathError{Path: f.Path, Err: err}
	}
	return nil
}
