// Package duration implements the Duration stage: it classifies each
// cleaned activity into a construction Type (or an Equipment sub-type),
// selects the geometry metric that scales that type's duration, and
// computes an integer Duration in days via a median-normalized power
// law. See spec.md §4.2.
package duration
