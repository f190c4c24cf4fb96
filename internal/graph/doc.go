// Package graph stores the retained widget graph.
//
// Every widget id that has ever been set owns a Node. Nodes are connected
// by four independent kinds of directed edge: depth (stacking, clipping
// and scroll ancestry), x and y position (layout dependency) and graphic
// (cosmetic sub-elements). Each node has at most one parent per edge kind
// and edges of all kinds together never form a cycle.
//
// On top of the graph the package computes the back-to-front depth order,
// answers picking queries, and derives visible areas, kid bounding boxes
// and scroll offsets.
package graph
