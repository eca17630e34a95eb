package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quietstack/cadschedule/pkg/pipeline"
)

var cleanInputPath string

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Join layers with solids and flatten them into bounded activities",
	Args:  cobra.NoArgs,
	RunE:  runClean,
}

func init() {
	cleanCmd.Flags().StringVar(&cleanInputPath, "input", "", "Path to the raw record JSON (required)")
	_ = cleanCmd.MarkFlagRequired("input")
}

func runClean(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(cleanInputPath)
	if err != nil {
		return fmt.Errorf("reading input file: %w", err)
	}

	var body any
	if err := json.Unmarshal(raw, &body); err != nil {
		return fmt.Errorf("parsing input JSON: %w", err)
	}

	ctx, cancel := lockContext(cmd)
	defer cancel()

	result, err := pipeline.RunClean(ctx, store, body)
	if err != nil {
		return err
	}
	logger.Info("clean complete", zap.Int("rows", result.Rows))
	return printJSON(result)
}
