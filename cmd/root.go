package cmd

import (
	"errors"
	"log"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "recruiter"
)

type Config struct {
	RosterFile     string          `mapstructure:"roster-file"`
	ExcludeFile    string          `mapstructure:"exclude-file"`
	InterviewsFile string          `mapstructure:"interviews-file"`
	Filters        *FiltersConfig  `mapstructure:"filters"`
	Schedule       *ScheduleConfig `mapstructure:"schedule"`
}

type FiltersConfig struct {
	MinimumScore float64 `mapstructure:"minimum-score"`
}

type ScheduleConfig struct {
	Delay              time.Duration `mapstructure:"delay"`
	ExcludeInterviewed bool          `mapstructure:"exclude-interviewed"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "recruiter ranks candidates for a job and schedules an interview with the best matching expert",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("roster-file", "RECRUITER_ROSTER_FILE"); err != nil {
		log.Fatalf("binding RECRUITER_ROSTER_FILE environment variable: %v", err)
	}

	viper.SetDefault("schedule.delay", "24h")
	viper.SetDefault("schedule.exclude-interviewed", true)

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is recruiter.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Only rank and schedule need a config.
	if rankCmd.CalledAs() == "" && scheduleCmd.CalledAs() == "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
	}

	if err := viper.ReadInConfig(); err != nil {
		// Without an explicit --config the roster may still come from flags or env.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
