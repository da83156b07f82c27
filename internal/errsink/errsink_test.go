package errsink

import (
	"errors"
	"testing"

	"github.com/Harshitk-cp/mcdaxml/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestThrowReturnsReadError(t *testing.T) {
	m := NewManager(StrategyThrow, nil)

	err := m.Report(domain.ErrDuplicateValue, "pair (%s, %s)", "a1", "g1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDuplicateValue))

	var re *domain.ReadError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "pair (a1, g1)", re.Message)
	assert.Empty(t, m.Diagnostics())
}

func TestLogWritesWarning(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	m := NewManager(StrategyLog, zap.New(core))

	err := m.Report(domain.ErrUnknownReference, "category %q", "c9")
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	fields := entries[0].ContextMap()
	assert.Equal(t, "unknown_reference", fields["kind"])
	assert.Equal(t, `category "c9"`, fields["message"])
	assert.Empty(t, m.Diagnostics())
}

func TestCollectKeepsOrder(t *testing.T) {
	m := NewManager(StrategyCollect, nil)

	require.NoError(t, m.Report(domain.ErrMissingRequiredField, "first"))
	require.NoError(t, m.Report(domain.ErrAmbiguousCardinality, "second"))

	diags := m.Diagnostics()
	require.Len(t, diags, 2)
	assert.Equal(t, "first", diags[0].Message)
	assert.True(t, errors.Is(diags[1], domain.ErrAmbiguousCardinality))

	joined := m.Err()
	require.Error(t, joined)
	assert.True(t, errors.Is(joined, domain.ErrMissingRequiredField))
	assert.True(t, errors.Is(joined, domain.ErrAmbiguousCardinality))
}

func TestSetStrategyClearsCollected(t *testing.T) {
	m := NewManager(StrategyCollect, nil)
	require.NoError(t, m.Report(domain.ErrDuplicateValue, "stale"))
	require.Len(t, m.Diagnostics(), 1)

	m.SetStrategy(StrategyLog)
	assert.Empty(t, m.Diagnostics())

	m.SetStrategy(StrategyCollect)
	assert.Empty(t, m.Diagnostics())
	assert.NoError(t, m.Err())
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in      string
		want    Strategy
		wantErr bool
	}{
		{"throw", StrategyThrow, false},
		{" LOG ", StrategyLog, false},
		{"Collect", StrategyCollect, false},
		{"panic", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStrategy(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidStrategy)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOnceSuppressesRepeats(t *testing.T) {
	m := NewManager(StrategyCollect, nil)
	s := Once(m)

	require.NoError(t, s.Report(domain.ErrDuplicateValue, "pair %s", "x"))
	require.NoError(t, s.Report(domain.ErrDuplicateValue, "pair %s", "x"))
	require.NoError(t, s.Report(domain.ErrUnknownReference, "pair %s", "x"))

	assert.Len(t, m.Diagnostics(), 2)
}
