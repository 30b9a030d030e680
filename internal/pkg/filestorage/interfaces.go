package filestorage

import "io"

// FileStorage defines the flat-file operations the roster repositories need
type FileStorage interface {
	// Open opens a stored file for reading; the caller closes it
	Open(name string) (io.ReadCloser, error)

	// Replace overwrites a stored file with whatever write produces
	Replace(name string, write func(w io.Writer) error) error

	// GetFullPath returns the full filesystem path for a stored file name
	GetFullPath(name string) string
}
