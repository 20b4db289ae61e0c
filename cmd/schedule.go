package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/tris010/recruitment-system/internal/logger"
	"github.com/tris010/recruitment-system/internal/recruitment"
	"github.com/tris010/recruitment-system/internal/scheduling"
)

const (
	PromptYes           = "Yes"
	PromptNo            = "No"
	PromptReport        = "Report ranked candidates"
	PromptMatchesToFile = "Dump matches to file"

	excludeReason = "interview scheduled"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "Schedule an interview with the top candidate?",
	Items: []string{PromptYes, PromptNo, PromptReport, PromptMatchesToFile},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Rank candidates and schedule an interview for the best one",
	Run: func(cmd *cobra.Command, _ []string) {
		schedule(cmd)
	},
}

func init() {
	rootCmd.AddCommand(scheduleCmd)

	scheduleCmd.Flags().BoolP("auto-approve", "y", false, "do not ask for confirmation before scheduling")
	scheduleCmd.Flags().Bool("allow-reinterview", false, "keep candidates already interviewed for the job")
	scheduleCmd.Flags().StringP("exclude-file", "e", "", "file with candidates to exclude. Default is unset.")

	viper.BindPFlag("exclude-file", scheduleCmd.Flags().Lookup("exclude-file"))
}

func schedule(cmd *cobra.Command) {
	ctx := cmd.Context()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}
	if config == nil {
		config = &Config{}
	}

	roster, err := loadRoster(config, logger)
	if err != nil {
		logger.Fatal("loading roster", zap.Error(err))
	}

	logger = withRunFields(logger, "schedule", roster.Job.ID, roster.Job.Title)
	logger.Info("starting the recruiter", zap.String("version", version))

	allowReinterview, _ := cmd.Flags().GetBool("allow-reinterview")

	matches, err := rankAndFilter(ctx, config, roster, allowReinterview, logger)
	if err != nil {
		logger.Fatal("filtering failed", zap.Error(err))
	}

	if matches.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no candidates left after filters"))
		return
	}

	autoApprove, _ := cmd.Flags().GetBool("auto-approve")

	action := PromptYes
	for {
		if !autoApprove {
			_, action, err = prompt.Run()
			if err != nil {
				logger.Fatal("exiting", zap.Error(err))
			}
		}

		top := matches.Top()
		logger.Info("current top candidate",
			zap.Int64("candidate_id", top.CandidateID),
			zap.Float64("score", top.Score),
			zap.Int("candidates", matches.Len()),
		)

		if err := handleAction(action, logger, config, roster, matches); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, logger *zap.Logger, config *Config, roster *recruitment.Roster, matches *recruitment.Matches) error {
	switch action {
	case PromptYes:
		if err := bookInterview(logger, config, roster, matches); err != nil {
			return err
		}
		return errExit
	case PromptNo:
		logger.Info("exiting", zap.String("reason", "got no from prompt"))
		return errExit
	case PromptReport:
		pretty, _ := json.MarshalIndent(matches.Report(), "", "  ")
		logger.Info(string(pretty), zap.Int("candidates count", matches.Len()))
		return nil
	case PromptMatchesToFile:
		filename, err := matches.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func bookInterview(logger *zap.Logger, config *Config, roster *recruitment.Roster, matches *recruitment.Matches) error {
	delay := scheduling.DefaultSlotDelay
	if config.Schedule != nil && config.Schedule.Delay > 0 {
		delay = config.Schedule.Delay
	}

	interview, err := recruitment.Schedule(roster.Job, matches, roster.Experts, time.Now(), delay, logger)
	if err != nil {
		return fmt.Errorf("schedule interview: %w", err)
	}

	if path := strings.TrimSpace(config.InterviewsFile); path != "" {
		ledger, err := recruitment.LoadInterviews(path)
		if err != nil {
			return err
		}
		ledger.Append(interview)
		if err := ledger.ToFile(path); err != nil {
			return err
		}
		logger.Info("appended to interviews file", zap.String("filename", path))
	}

	if path := strings.TrimSpace(config.ExcludeFile); path != "" {
		excluded, err := recruitment.GetExcludedCandidatesFromFile(path)
		if err != nil {
			return err
		}

		booked := &recruitment.Matches{Items: []*recruitment.Match{matches.Top()}}
		excluded.Append(booked.ToExcluded(excludeReason))

		if err := excluded.ToFile(path); err != nil {
			return err
		}
		logger.Info("appended to exclude file", zap.String("filename", path))
	}

	fields := []zap.Field{
		zap.Int64("candidate_id", interview.CandidateID),
		zap.Int64("expert_id", interview.ExpertID),
		zap.String("slot", interview.Slot),
	}
	if expert := roster.FindExpert(interview.ExpertID); expert != nil {
		fields = append(fields, zap.String("expert", expert.Name))
	}
	logger.Info("interview scheduled", fields...)

	return nil
}

func withRunFields(l *zap.Logger, command string, jobID int64, title string) *zap.Logger {
	return logger.WithCommand(logger.WithJobFields(l, jobID, title), command)
}
