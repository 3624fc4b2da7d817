package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pagemend/pagemend/internal/config"
)

var (
	// Global configuration loader.
	configLoader *config.Loader
	// Global configuration.
	globalConfig *config.Config
	// Configuration file path.
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "pagemend",
	Short: "Repair and transform text-line geometry in PAGE-XML files",
	Long: `pagemend is a batch toolkit for PAGE-XML documents produced by OCR
and layout analysis. It repairs broken line polygons, rebuilds missing
ones from baselines, merges lines that segmentation split apart,
renumbers element identifiers and extracts plain text.

Inputs are PAGE-XML files, directories of them, or registered
workspace names. Transformed files land in a sibling PagemendOutput
directory unless --output-dir or --overwrite says otherwise.

Examples:
  pagemend repair scans/
  pagemend extend-lines page_0001.xml --distance 24
  pagemend pseudo-polygon scans/ --overwrite
  pagemend fulltext scans/ --dehyphenate`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetRootCommand returns the root command for testing purposes.
func GetRootCommand() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is search in ., $HOME, $HOME/.config/pagemend, /etc/pagemend)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output (equivalent to --log-level=debug)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringP("output-dir", "o", "", "collect all transformed files in this directory")
	rootCmd.PersistentFlags().String("modified-subdir", config.DefaultConfig().Output.ModifiedSubdir,
		"per-input output subdirectory used when no output directory is set")
	rootCmd.PersistentFlags().Bool("overwrite", false, "write transformed files back over their inputs")
	rootCmd.PersistentFlags().Bool("dry-run", false, "run transformations but write nothing")
	rootCmd.PersistentFlags().String("format", config.DefaultConfig().Output.Format,
		"report format (text, json, yaml)")
	rootCmd.PersistentFlags().String("report", "", "write the batch report to this file instead of stdout")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("output.dir", rootCmd.PersistentFlags().Lookup("output-dir"))
	_ = viper.BindPFlag("output.modified_subdir", rootCmd.PersistentFlags().Lookup("modified-subdir"))
	_ = viper.BindPFlag("output.overwrite", rootCmd.PersistentFlags().Lookup("overwrite"))
	_ = viper.BindPFlag("output.format", rootCmd.PersistentFlags().Lookup("format"))

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if globalConfig == nil {
			initConfig()
		}

		var logLevel slog.Level
		if globalConfig.Verbose {
			logLevel = slog.LevelDebug
		} else {
			switch globalConfig.LogLevel {
			case "debug":
				logLevel = slog.LevelDebug
			case "warn":
				logLevel = slog.LevelWarn
			case "error":
				logLevel = slog.LevelError
			default:
				logLevel = slog.LevelInfo
			}
		}

		logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		}))
		slog.SetDefault(logger)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	configLoader = config.NewLoader()

	var err error
	globalConfig, err = configLoader.LoadWithFile(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
}

// GetConfig returns the configuration with current flag values
// applied. Flag bindings land in viper after the initial load, so the
// settings are unmarshaled again here.
func GetConfig() *config.Config {
	if globalConfig == nil {
		initConfig()
	}
	var cfg config.Config
	if err := GetConfigLoader().GetViper().Unmarshal(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error unmarshaling updated configuration: %v\n", err)
		return globalConfig
	}
	return &cfg
}

// GetConfigLoader returns the global configuration loader.
func GetConfigLoader() *config.Loader {
	if configLoader == nil {
		configLoader = config.NewLoader()
	}
	return configLoader
}
