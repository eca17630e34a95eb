// Package pipeline wires pkg/clean, pkg/duration, pkg/sequence,
// pkg/critical, pkg/rules, and pkg/artifactstore together into the
// four pure stage entry points spec.md §4 describes: read the prior
// stage's artifact (or the request body, for Clean), compute, and
// persist the result under a single locked working-directory
// transaction. See spec.md §5 for the lock-ordering guarantee.
package pipeline
