// Package analyze contains the command that analyzes a single SMS message.
package analyze

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/config"
	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/container"
	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/models"
)

var (
	message string
	date    string
)

// Cmd is the analyze command
var Cmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a single financial SMS message",
	Long: `Analyze classifies one SMS message into a transaction category, extracts
its structured fields and prints the result as JSON.`,
	RunE: run,
}

func init() {
	Cmd.Flags().StringVarP(&message, "message", "m", "", "SMS message text to analyze")
	Cmd.Flags().StringVarP(&date, "date", "d", "", "Transaction date hint used when the message has no date (e.g. 2024-05-05)")
	if err := Cmd.MarkFlagRequired("message"); err != nil {
		panic(err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.InitializeConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	c, err := container.NewContainer(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := c.Close(); err != nil {
			c.GetLogger().WithError(err).Warn("Failed to close container")
		}
	}()

	result, err := c.GetAnalyzer().Analyze(cmd.Context(), models.RawMessage{
		Text:     message,
		HintDate: date,
	})
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
