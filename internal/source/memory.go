package source

import (
	"bytes"
	"context"
	"io"
	"sync/atomic"

	"github.com/google/uuid"
)

// Memory is an in-memory document. Each value gets its own identity, so two Memory
// sources never compare equal even with identical bytes.
type Memory struct {
	id    string
	data  []byte
	opens atomic.Int64
}

func NewMemory(data []byte) *Memory {
	return &Memory{id: "mem:" + uuid.NewString(), data: data}
}

func NewMemoryString(s string) *Memory {
	return NewMemory([]byte(s))
}

func (m *Memory) ID() string { return m.id }

func (m *Memory) Open(_ context.Context) (io.ReadCloser, error) {
	m.opens.Add(1)
	return io.NopCloser(bytes.NewReader(m.data)), nil
}

// Opens counts how many times the document was opened.
func (m *Memory) Opens() int64 {
	return m.opens.Load()
}
