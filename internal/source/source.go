// Package source provides the byte sources a problem reader consumes and the rule
// choosing between a dedicated source and the shared main one.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
)

var ErrNotFound = errors.New("source document not found")

// Source is an opaque document. Two sources with the same ID are the same document.
type Source interface {
	ID() string
	Open(ctx context.Context) (io.ReadCloser, error)
}

// ReadAll opens src, reads it fully and closes it.
func ReadAll(ctx context.Context, src Source) ([]byte, error) {
	rc, err := src.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", src.ID(), err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", src.ID(), err)
	}
	return data, nil
}

// Effective returns dedicated when set, main otherwise. The result may be nil.
func Effective(dedicated, main Source) Source {
	if dedicated != nil {
		return dedicated
	}
	return main
}

// Same compares two possibly nil sources by ID.
func Same(a, b Source) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.ID() == b.ID()
}

// Equal compares two dedicated sources after falling back to main on both sides.
func Equal(a, b, main Source) bool {
	return Same(Effective(a, main), Effective(b, main))
}
