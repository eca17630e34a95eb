// Package schederr defines the typed error kinds the pipeline raises,
// so the HTTP layer (pkg/httpapi) can map them to the status codes
// spec.md §7 requires without string-matching error messages. The CLI
// (cmd/schedctl) prints any error and exits with status 1 whatever
// its kind.
package schederr
