// Package critical implements the Critical stage: merges extra
// activities into the sequence node list, computes a reproducible
// topological order, and runs a forward/backward Critical Path Method
// pass to annotate every activity with ES, EF, LS, LF, Float, and
// Critical. See spec.md §4.4.
package critical
