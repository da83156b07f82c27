package errsink

import (
	"fmt"

	"github.com/Harshitk-cp/mcdaxml/internal/domain"
)

// Once forwards each distinct diagnostic a single time. Readers that walk the same
// fragments more than once wrap their sink with it.
func Once(inner Sink) Sink {
	return &once{inner: inner, seen: make(map[string]bool)}
}

type once struct {
	inner Sink
	seen  map[string]bool
}

func (o *once) Report(kind error, format string, args ...any) error {
	key := domain.KindName(kind) + "\x00" + fmt.Sprintf(format, args...)
	if o.seen[key] {
		return nil
	}
	o.seen[key] = true
	return o.inner.Report(kind, format, args...)
}
