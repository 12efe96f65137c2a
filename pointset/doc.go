// Package pointset provides named collections of planar points for the
// bitonic tour solver: loading from YAML or JSON, bounds, rigid transforms
// and deterministic random generation of valid (distinct-x) instances.
//
// File format (one or more YAML documents; JSON is accepted as YAML):
//
//	name: classic
//	points:
//	  - [0, 0]
//	  - [10, 5]
//	  - [12, -5]
//	  - [22, 0]
//
// A document may also hold a list of such sets.
package pointset
