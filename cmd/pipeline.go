package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/tris010/recruitment-system/internal/filtering"
	"github.com/tris010/recruitment-system/internal/logger"
	"github.com/tris010/recruitment-system/internal/recruitment"
)

const resumePreviewLength = 80

// loadRoster combines the roster file with sections given inline in the
// config. Sections present in the file win.
func loadRoster(config *Config, logger *zap.Logger) (*recruitment.Roster, error) {
	roster, err := recruitment.DecodeRoster(map[string]any{
		"job":        viper.Get("job"),
		"candidates": viper.Get("candidates"),
		"experts":    viper.Get("experts"),
	})
	if err != nil {
		return nil, fmt.Errorf("config roster: %w", err)
	}

	if path := strings.TrimSpace(config.RosterFile); path != "" {
		fromFile, err := recruitment.LoadRoster(path)
		if err != nil {
			return nil, fmt.Errorf("roster file: %w", err)
		}
		fromFile.Merge(roster)
		roster = fromFile
		logger.Debug("roster file loaded", zap.String("path", path))
	}

	if err := roster.Validate(); err != nil {
		return nil, err
	}

	return roster, nil
}

func prepareFilters(config *Config, jobID int64, allowReinterview bool, logger *zap.Logger) *filtering.Filtering {
	minimumScore := 0.0
	if config.Filters != nil {
		minimumScore = config.Filters.MinimumScore
	}

	excludeInterviewed := true
	if config.Schedule != nil {
		excludeInterviewed = config.Schedule.ExcludeInterviewed
	}

	steps := []filtering.Filter{
		filtering.NewExcludeFile(config.ExcludeFile, jobID, logger),
		filtering.NewInterviewed(
			&filtering.InterviewedConfig{Ignore: allowReinterview || !excludeInterviewed},
			&filtering.InterviewedDeps{
				JobID:          jobID,
				InterviewsFile: config.InterviewsFile,
				Logger:         logger,
			},
		),
		filtering.NewMinimumScore(minimumScore, logger),
	}

	return filtering.New(steps, logger)
}

// rankAndFilter ranks every candidate of the roster against its job and runs the filters.
func rankAndFilter(ctx context.Context, config *Config, roster *recruitment.Roster, allowReinterview bool, logger *zap.Logger) (*recruitment.Matches, error) {
	matches := recruitment.RankCandidates(roster.Job, roster.Candidates, logger)
	logger.Info("candidates ranked", zap.Int("count", matches.Len()))

	filters := prepareFilters(config, roster.Job.ID, allowReinterview, logger)
	for _, status := range filters.Describe() {
		logger.Debug("filter configured",
			zap.String("name", status.Name),
			zap.Bool("enabled", status.Enabled),
			zap.String("reason", status.Reason),
			zap.Any("details", status.Details),
		)
	}

	return filters.RunFilters(ctx, matches)
}

func logMatches(matches *recruitment.Matches, l *zap.Logger) {
	for i, match := range matches.Items {
		fields := []zap.Field{
			zap.Int("rank", i+1),
			zap.Int64("candidate_id", match.CandidateID),
			zap.Float64("score", match.Score),
		}
		if match.Candidate != nil {
			fields = append(fields,
				zap.String("name", match.Candidate.Name),
				zap.String("resume", logger.TruncateForLog(match.Candidate.Resume(nil), resumePreviewLength)),
			)
		}
		l.Info("match", fields...)
	}
}
