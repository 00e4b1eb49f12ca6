// Package puzzlekit is a small toolkit of search structures for grid and
// graph puzzles.
//
// It brings together:
//
//	• gridgraph: sparse rune grid with optional wraparound neighbors,
//	  uniform-cost Dijkstra, regions and perimeters
//	• digraph: directed weighted graph with Dijkstra, shortest path,
//	  simple-path enumeration, path counting and ordering
//	• rangeset: integer set stored as disjoint closed intervals
//	• shape: lattice points enclosed by a rectilinear loop
//
// The cmd/puzzlekit binary wires these to puzzle input files:
//
//	puzzlekit grid   -max 64 input.txt
//	puzzlekit ranges input.txt
//	puzzlekit paths  -from svr -to out -via dac,fft input.txt
//	puzzlekit dig    -hex input.txt
//
// Every structure is single-owner and none is safe for concurrent use.
package puzzlekit
