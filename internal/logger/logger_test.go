package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	for _, tc := range []struct {
		json, debug bool
	}{{false, false}, {true, false}, {false, true}} {
		l, err := New(tc.json, tc.debug)
		require.NoError(t, err, "New(%v, %v)", tc.json, tc.debug)
		assert.Equal(t, tc.debug, l.Core().Enabled(zapcore.DebugLevel))
	}
}
