package errsink

import (
	"errors"

	"github.com/Harshitk-cp/mcdaxml/internal/domain"
	"go.uber.org/zap"
)

// Manager is the Sink handed to readers. It forwards to the active strategy, which
// can be swapped at runtime.
type Manager struct {
	strategy Strategy
	active   Sink
	collect  *Collect
	logger   *zap.Logger
}

func NewManager(strategy Strategy, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Manager{logger: logger, collect: &Collect{}}
	m.SetStrategy(strategy)
	return m
}

// SetStrategy switches strategy and drops anything collected so far, so old
// diagnostics are not blamed on the next read.
func (m *Manager) SetStrategy(s Strategy) {
	m.collect.Clear()
	switch s {
	case StrategyThrow:
		m.active = Throw{}
	case StrategyLog:
		m.active = NewLog(m.logger)
	default:
		s = StrategyCollect
		m.active = m.collect
	}
	m.strategy = s
}

func (m *Manager) Strategy() Strategy { return m.strategy }

func (m *Manager) Report(kind error, format string, args ...any) error {
	return m.active.Report(kind, format, args...)
}

// Diagnostics returns what the Collect strategy gathered since the last switch or Clear.
func (m *Manager) Diagnostics() []*domain.ReadError {
	return m.collect.Diagnostics()
}

func (m *Manager) Clear() {
	m.collect.Clear()
}

// Err joins the collected diagnostics, or returns nil if there are none.
func (m *Manager) Err() error {
	diags := m.collect.Diagnostics()
	if len(diags) == 0 {
		return nil
	}
	errs := make([]error, len(diags))
	for i, d := range diags {
		errs[i] = d
	}
	return errors.Join(errs...)
}
