// Package vizexport renders optional debug visualizations of a
// pipeline run: an SVG plan view of each activity's 2D bounding box
// (colored by Construction Work Area) and a Graphviz DOT rendering of
// the Sequence stage's predecessor graph.
package vizexport
