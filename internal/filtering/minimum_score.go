package filtering

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/tris010/recruitment-system/internal/recruitment"
)

type minimumScoreFilter struct {
	threshold float64
	logger    *zap.Logger
	enabled   bool
	reason    string
}

// NewMinimumScore creates a filter that drops matches scoring below threshold.
// A non-positive threshold leaves the filter disabled.
func NewMinimumScore(threshold float64, logger *zap.Logger) Filter {
	if logger == nil {
		logger = zap.NewNop()
	}

	f := &minimumScoreFilter{
		threshold: threshold,
		logger:    logger,
		enabled:   threshold > 0,
	}
	if !f.enabled {
		f.reason = "threshold is not set"
	}
	return f
}

func (f *minimumScoreFilter) Name() string { return "minimum_score" }

func (f *minimumScoreFilter) Disable(reason string) {
	f.enabled = false
	f.reason = reason
}

func (f *minimumScoreFilter) IsEnabled() bool { return f.enabled }

func (f *minimumScoreFilter) Validate() error {
	if math.IsNaN(f.threshold) || f.threshold > 1 {
		return fmt.Errorf("minimum score must be within (0, 1], got %v", f.threshold)
	}
	return nil
}

func (f *minimumScoreFilter) Apply(_ context.Context, m *recruitment.Matches) (*recruitment.Matches, Step, error) {
	initial := m.Len()

	removed := m.Drop(func(match *recruitment.Match) bool {
		return match.Score < f.threshold
	})
	if len(removed) > 0 {
		f.logger.Info("excluding candidates below minimum score",
			zap.Float64("minimum_score", f.threshold),
			zap.Int64s("excluded_candidates", removed),
			zap.Int("candidates_left", m.Len()),
		)
	}

	return m, Step{Initial: initial, Dropped: len(removed), Left: m.Len()}, nil
}

func (f *minimumScoreFilter) Status() Status {
	return Status{
		Name:    f.Name(),
		Enabled: f.IsEnabled(),
		Reason:  f.reason,
		Details: map[string]string{"minimum_score": fmt.Sprintf("%.2f", f.threshold)},
	}
}
