package cmd

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/tris010/recruitment-system/internal/logger"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank candidates for the configured job",
	Run: func(cmd *cobra.Command, _ []string) {
		rank(cmd)
	},
}

func init() {
	rootCmd.AddCommand(rankCmd)

	rankCmd.Flags().String("roster", "", "json file with the job, candidates and experts")
	rankCmd.Flags().Bool("dump", false, "dump ranked matches to a temporary file")

	viper.BindPFlag("roster-file", rankCmd.Flags().Lookup("roster"))
}

func rank(cmd *cobra.Command) {
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

	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	roster, err := loadRoster(config, logger)
	if err != nil {
		logger.Fatal("loading roster", zap.Error(err))
	}

	logger = withRunFields(logger, "rank", roster.Job.ID, roster.Job.Title)

	matches, err := rankAndFilter(ctx, config, roster, false, logger)
	if err != nil {
		logger.Fatal("filtering failed", zap.Error(err))
	}

	if matches.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no candidates left after filters"))
		return
	}

	logMatches(matches, logger)

	if dump, _ := cmd.Flags().GetBool("dump"); dump {
		filename, err := matches.DumpToTmpFile()
		if err != nil {
			logger.Fatal("dump results to file", zap.Error(err))
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
	}
}
