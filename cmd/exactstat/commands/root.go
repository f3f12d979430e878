package commands

import (
	"exactstat/internal/config"
	"exactstat/internal/logging"
	"exactstat/numeric"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose bool
	decimal bool
	cfg     *config.AppConfig
)

var rootCmd = &cobra.Command{
	Use:   "exactstat",
	Short: "Exactstat computes descriptive statistics with exact arithmetic",
	Long: `A calculator for descriptive statistics (mean, variance, medians, quartiles,
quantiles) that sums integers, fractions and decimals exactly instead of
accumulating float round-off. Values are read from arguments or stdin.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)

		// Load configuration
		var err error
		cfg, err = config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}
		numeric.DecimalContext.Precision = cfg.DecimalPrecision

		log.Info().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Msg("exactstat starting")
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().BoolVarP(&decimal, "decimal", "d", false, "parse inputs as exact decimals instead of floats")
}
