package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextSlot(t *testing.T) {
	msk := time.FixedZone("MSK", 3*60*60)
	now := time.Date(2026, 3, 14, 10, 30, 15, 987654321, msk)

	tests := []struct {
		name  string
		delay time.Duration
		want  string
	}{
		{name: "default delay", delay: 0, want: "2026-03-15T07:30:15Z"},
		{name: "custom delay", delay: 2 * time.Hour, want: "2026-03-14T09:30:15Z"},
		{name: "negative delay falls back", delay: -time.Minute, want: "2026-03-15T07:30:15Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextSlot(now, tt.delay))
		})
	}
}
