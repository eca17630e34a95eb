// Package clean implements the Clean stage: it accepts raw CAD extract
// records, pairs each "layer" record with its first matching "3d solid"
// record, and flattens the join into a cleaned activity record carrying
// geometry, volume, and a bounding box. See spec.md §4.1.
package clean
