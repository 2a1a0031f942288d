package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/oshoval/image-link-extractor/internal/logger"
)

var (
	cfgFile  string
	quiet    bool
	output   string
	logLevel string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "image-link-extractor",
	Short: "Extract URLs from screenshot and slide images using OCR",
	Long: `image-link-extractor finds URLs embedded in images.

It runs Tesseract OCR on each image and post-processes the recognized
text with heuristics that repair OCR noise: URLs split across lines by
wrapping are rejoined, and misread glyphs inside hash-like path segments
(O for 0, l for 1, ...) are corrected. Deterministic and local-only; no
cloud APIs, no network calls.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.image-link-extractor.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "quiet output (suppress progress messages)")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "human", "output format (human, json, csv)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	logger.Setup(logLevel)

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".image-link-extractor" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".image-link-extractor")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil && !quiet {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
