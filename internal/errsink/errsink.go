// Package errsink decides what happens when a reader meets malformed input:
// abort the read, log and skip, or collect and skip.
package errsink

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Harshitk-cp/mcdaxml/internal/domain"
	"go.uber.org/zap"
)

var ErrInvalidStrategy = errors.New("invalid error strategy")

// Sink receives one diagnostic per malformed-input event. A non-nil return means the
// current read must stop and return that error; nil means skip the offending item
// and carry on.
type Sink interface {
	Report(kind error, format string, args ...any) error
}

type Strategy string

const (
	StrategyThrow   Strategy = "throw"
	StrategyLog     Strategy = "log"
	StrategyCollect Strategy = "collect"
)

func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case StrategyThrow:
		return StrategyThrow, nil
	case StrategyLog:
		return StrategyLog, nil
	case StrategyCollect:
		return StrategyCollect, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStrategy, s)
}

// Throw aborts on the first report.
type Throw struct{}

func (Throw) Report(kind error, format string, args ...any) error {
	return domain.NewReadError(kind, format, args...)
}

// Log writes each report as a warning and continues.
type Log struct {
	logger *zap.Logger
}

func NewLog(logger *zap.Logger) *Log {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Log{logger: logger}
}

func (l *Log) Report(kind error, format string, args ...any) error {
	re := domain.NewReadError(kind, format, args...)
	l.logger.Warn("malformed input",
		zap.String("kind", domain.KindName(kind)),
		zap.String("message", re.Message),
	)
	return nil
}

// Collect keeps every report in order and continues.
type Collect struct {
	errs []*domain.ReadError
}

func (c *Collect) Report(kind error, format string, args ...any) error {
	c.errs = append(c.errs, domain.NewReadError(kind, format, args...))
	return nil
}

func (c *Collect) Diagnostics() []*domain.ReadError {
	out := make([]*domain.ReadError, len(c.errs))
	copy(out, c.errs)
	return out
}

func (c *Collect) Clear() {
	c.errs = nil
}
