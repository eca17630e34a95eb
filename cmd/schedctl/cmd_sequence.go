package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quietstack/cadschedule/pkg/pipeline"
)

var sequenceCmd = &cobra.Command{
	Use:   "sequence",
	Short: "Compute the per-CWA predecessor graph and a stable activity order",
	Args:  cobra.NoArgs,
	RunE:  runSequence,
}

func runSequence(cmd *cobra.Command, args []string) error {
	ctx, cancel := lockContext(cmd)
	defer cancel()

	result, err := pipeline.RunSequence(ctx, store)
	if err != nil {
		return err
	}
	logger.Info("sequence complete", zap.Int("edges", len(result.Edges)), zap.Int("nodes", len(result.Result)))
	return printJSON(result)
}
