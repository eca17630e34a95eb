// Package rules models the optional user-supplied dependency-rules
// object: a mapping from activity-type name to an ordered list of
// allowed predecessor-type names, compared case-insensitively with
// internal whitespace collapsed. See spec.md §3 and §4.3.
package rules
