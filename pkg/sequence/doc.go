// Package sequence implements the Sequence stage: for each activity it
// selects at most one predecessor per allowed predecessor type, scoped
// to the same Construction Work Area, using 2D overlap and vertical
// adjacency rules, then orders the resulting activity set with a
// stable topological sort. See spec.md §4.3.
package sequence
