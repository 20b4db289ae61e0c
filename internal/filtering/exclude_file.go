package filtering

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/tris010/recruitment-system/internal/recruitment"
)

type excludeFileFilter struct {
	path     string
	jobID    int64
	logger   *zap.Logger
	disabled bool
	reason   string
}

// NewExcludeFile creates a filter that removes candidates excluded from jobID
// in the exclude file.
func NewExcludeFile(path string, jobID int64, logger *zap.Logger) Filter {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &excludeFileFilter{
		path:   strings.TrimSpace(path),
		jobID:  jobID,
		logger: logger,
	}
}

func (f *excludeFileFilter) Name() string { return "exclude_file" }

func (f *excludeFileFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *excludeFileFilter) IsEnabled() bool { return !f.disabled }

func (f *excludeFileFilter) Validate() error { return nil }

func (f *excludeFileFilter) Apply(_ context.Context, m *recruitment.Matches) (*recruitment.Matches, Step, error) {
	initial := m.Len()
	if f.path == "" {
		return m, Step{Initial: initial, Dropped: 0, Left: m.Len()}, nil
	}

	excluded, err := recruitment.GetExcludedCandidatesFromFile(f.path)
	if err != nil {
		return m, Step{}, fmt.Errorf("getting excluded candidates from file: %w", err)
	}

	removed := m.Exclude(excluded.ForJob(f.jobID))
	if len(removed) > 0 {
		f.logger.Info("excluding candidates based on exclude file",
			zap.String("path", f.path),
			zap.Int64("job_id", f.jobID),
			zap.Int64s("excluded_candidates", removed),
			zap.Int("candidates_left", m.Len()),
		)
	}

	return m, Step{Initial: initial, Dropped: len(removed), Left: m.Len()}, nil
}

func (f *excludeFileFilter) Status() Status {
	details := map[string]string{}
	if f.path != "" {
		details["path"] = f.path
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
