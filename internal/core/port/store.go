package port

import "io"

type FileStore interface {
	// Open opens a file for reading.
	Open(path string) (io.ReadCloser, error)
	// Exists reports whether something is present at path.
	Exists(path string) (bool, error)
	// EnsureDir creates the parent directory of path and all missing ancestors. A bare file name is a no-op.
	EnsureDir(path string) error
	// WriteAtomic calls write with a temporary file next to path and moves it into place only if write and
	// close succeed.
	WriteAtomic(path string, write func(w io.Writer) error) error
}
