// Package graphdot exports a board's adjacency graph to Graphviz DOT and
// renders it to SVG.
//
// # Overview
//
// Every tile becomes a node pinned at its hex coordinates, and every
// neighbor link becomes an undirected edge. Terrain tiles are filled with a
// color per kind and labeled with their terrain and number; port tiles are
// drawn dashed with their trade ratio. [ToDOT] produces the DOT text and
// [RenderSVG] runs it through the neato engine via
// github.com/goccy/go-graphviz.
package graphdot
