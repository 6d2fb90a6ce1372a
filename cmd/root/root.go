// Package root contains the root command for the application
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/common"
	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/config"
	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/dateutils"
	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/extractor"
	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/store"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "sms-parsing",
		Short: "A CLI tool to classify financial SMS messages and extract structured data.",
		Long: `sms-parsing classifies financial SMS messages into transaction categories
and extracts structured fields such as amounts, dates and account numbers.
Analysis runs through the Gemini API when configured and falls back to
deterministic local rules otherwise.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to sms-parsing!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()
			Log = config.ConfigureLogging()

			// Set the configured logger for packages with package-level logging
			common.SetLogger(Log)
			dateutils.SetLogger(Log)
			extractor.SetLogger(Log)
			store.SetLogger(Log)
		},
	}
)

// Init registers persistent flags on the root command.
func Init() {
	Cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose (debug) logging")
	cobra.OnInitialize(func() {
		if verbose, _ := Cmd.PersistentFlags().GetBool("verbose"); verbose {
			Log.SetLevel(logrus.DebugLevel)
		}
	})
}
