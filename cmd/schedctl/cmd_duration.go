package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quietstack/cadschedule/pkg/pipeline"
)

var durationCmd = &cobra.Command{
	Use:   "duration",
	Short: "Assign a construction Type and integer Duration to each cleaned activity",
	Args:  cobra.NoArgs,
	RunE:  runDuration,
}

func runDuration(cmd *cobra.Command, args []string) error {
	ctx, cancel := lockContext(cmd)
	defer cancel()

	result, err := pipeline.RunDuration(ctx, store)
	if err != nil {
		return err
	}
	logger.Info("duration complete", zap.Int("rows", result.Rows))
	return printJSON(result)
}
