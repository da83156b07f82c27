package source

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// File is a document on the local filesystem, identified by its absolute path.
type File struct {
	path string
}

func NewFile(path string) (*File, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	return &File{path: filepath.Clean(abs)}, nil
}

func (f *File) ID() string { return "file:" + f.path }

func (f *File) Path() string { return f.path }

func (f *File) Open(_ context.Context) (io.ReadCloser, error) {
	fh, err := os.Open(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return fh, nil
}
