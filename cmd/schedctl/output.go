package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// lockContext derives a context bounded by the active config's lock
// timeout, matching the request-scoped timeout schedsrv applies per
// HTTP call.
func lockContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	timeout := activeConfig.LockTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return context.WithTimeout(cmd.Context(), timeout)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	return nil
}
