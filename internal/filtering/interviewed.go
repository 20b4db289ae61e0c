package filtering

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/tris010/recruitment-system/internal/recruitment"
)

const allowReinterviewMsg = "reinterview flag is set"

type interviewedFilter struct {
	deps   *InterviewedDeps
	ignore bool
}

type InterviewedDeps struct {
	JobID          int64
	InterviewsFile string
	Logger         *zap.Logger
}

type InterviewedConfig struct {
	Ignore bool
}

// NewInterviewed creates a filter that removes candidates already booked for
// the job in the interview ledger.
func NewInterviewed(cfg *InterviewedConfig, deps *InterviewedDeps) Filter {
	ignore := false
	if cfg != nil {
		ignore = cfg.Ignore
	}

	return &interviewedFilter{
		deps:   deps,
		ignore: ignore,
	}
}

func (f *interviewedFilter) Name() string { return "interviewed" }

func (f *interviewedFilter) Disable(string) { f.ignore = true }

func (f *interviewedFilter) IsEnabled() bool { return true }

func (f *interviewedFilter) Validate() error {
	if f.deps == nil {
		return fmt.Errorf("deps are not initialized: filter is not usable")
	}

	if f.deps.Logger == nil {
		return fmt.Errorf("logger is required")
	}

	return nil
}

func (f *interviewedFilter) Apply(_ context.Context, m *recruitment.Matches) (*recruitment.Matches, Step, error) {
	initial := m.Len()
	if f.ignore {
		f.deps.Logger.Info("keeping already interviewed candidates", zap.String("reason", allowReinterviewMsg))
		return m, Step{Initial: initial, Dropped: 0, Left: m.Len()}, nil
	}

	path := strings.TrimSpace(f.deps.InterviewsFile)
	if path == "" {
		return m, Step{Initial: initial, Dropped: 0, Left: m.Len()}, nil
	}

	ledger, err := recruitment.LoadInterviews(path)
	if err != nil {
		return m, Step{}, fmt.Errorf("load interviews: %w", err)
	}

	removed := m.Exclude(ledger.ForJob(f.deps.JobID))
	if len(removed) > 0 {
		f.deps.Logger.Info("excluding candidates already interviewed for the job",
			zap.Int64("job_id", f.deps.JobID),
			zap.Int64s("excluded_candidates", removed),
			zap.Int("candidates_left", m.Len()),
		)
	}

	return m, Step{Initial: initial, Dropped: len(removed), Left: m.Len()}, nil
}

func (f *interviewedFilter) Status() Status {
	details := map[string]string{
		"exclude_interviewed": strconv.FormatBool(!f.ignore),
	}
	reason := ""
	if f.ignore {
		reason = "skip requested via flag"
	}
	return Status{Name: f.Name(), Enabled: true, Reason: reason, Details: details}
}
