// Package obslog builds the single *zap.Logger every binary
// constructs once at startup and passes to the HTTP layer and the CLI
// commands, which log requests, stage completion, and rows processed
// as structured fields rather than formatted strings. The pipeline
// stage functions themselves take no logger.
package obslog
