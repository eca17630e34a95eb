// Package record defines the dynamic, string-keyed record shape that
// flows through the pipeline, plus the single normalization function
// every stage uses for case-insensitive, whitespace-tolerant key and
// value comparisons.
package record
