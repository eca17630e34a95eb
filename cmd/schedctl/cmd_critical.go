package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quietstack/cadschedule/pkg/pipeline"
)

var criticalInputPath string

var criticalCmd = &cobra.Command{
	Use:   "critical",
	Short: "Run the CPM forward/backward pass over the sequenced activities",
	Args:  cobra.NoArgs,
	RunE:  runCritical,
}

func init() {
	criticalCmd.Flags().StringVar(&criticalInputPath, "input", "", "Path to extra-activities JSON (optional)")
}

func runCritical(cmd *cobra.Command, args []string) error {
	var body any
	if criticalInputPath != "" {
		raw, err := os.ReadFile(criticalInputPath)
		if err != nil {
			return fmt.Errorf("reading input file: %w", err)
		}
		if err := json.Unmarshal(raw, &body); err != nil {
			return fmt.Errorf("parsing input JSON: %w", err)
		}
	}

	ctx, cancel := lockContext(cmd)
	defer cancel()

	result, err := pipeline.RunCritical(ctx, store, body)
	if err != nil {
		return err
	}
	logger.Info("critical complete", zap.Int("nodes", len(result.Result)))
	return printJSON(result)
}
