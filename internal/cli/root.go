package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tmahmud/uttor/internal/model"
)

var (
	cfgFile string
	verbose bool
	dbPath  string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "uttor",
	Short: "Uttor - Bangla FAQ assistant for the terminal",
	Long: `Uttor answers free-text Bangla questions from a curated FAQ database.

Pick a topic, ask a question, and Uttor returns the best-matching stored
answer by lexical token-set overlap, or a polite topic-specific fallback
when nothing scores above the confidence threshold.

The FAQ database is a flat JSON file loaded once at startup; matching is
a brute-force scan, diacritic-insensitive and Bangla-aware.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("uttor v0.1.2")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.uttor/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "FAQ database path (overrides config)")

	// Bound under a key outside the config tree so Unmarshal never
	// clobbers file values with flag defaults
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(home + "/.uttor")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match UTTOR_*
	viper.SetEnvPrefix("UTTOR")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// buildConfig resolves the effective configuration: defaults, then config
// file and environment, then flags.
func buildConfig() *model.Config {
	cfg := model.DefaultConfig()

	if err := viper.Unmarshal(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: invalid configuration, using defaults: %v\n", err)
		cfg = model.DefaultConfig()
	}

	if dbPath != "" {
		cfg.Database.Path = dbPath
	}
	if verbose {
		cfg.Output.Verbose = true
		cfg.Log.Level = "debug"
	}

	// API key comes from the environment only, never the config file
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		cfg.Voice.APIKey = key
	}

	return cfg
}
