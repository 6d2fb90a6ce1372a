// Package batch contains the command that processes a CSV of SMS messages.
package batch

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/common"
	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/config"
	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/container"
)

var (
	inputFile  string
	outputFile string
)

// Cmd is the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Analyze a CSV file of SMS messages",
	Long: `Batch reads a CSV with columns customer_id, customer_name, phone_number,
message and an optional date, analyzes every row and writes a results CSV.
Rows that fail to analyze are recorded with their error; the run continues.`,
	RunE: run,
}

func init() {
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input CSV file of messages")
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "results.csv", "Output CSV file for analysis results")
	if err := Cmd.MarkFlagRequired("input"); err != nil {
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

	common.SetDelimiter([]rune(cfg.Batch.Delimiter)[0])

	progress, err := c.GetProcessor().ProcessFile(cmd.Context(), inputFile, outputFile)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Processed %d messages (%d succeeded, %d failed), results written to %s\n",
		progress.Processed, progress.Succeeded, progress.Failed, outputFile)
	return nil
}
