// Package golewis enumerates the chemically relevant Lewis (resonance)
// structures of a molecular graph – atoms, sigma-bond connectivity and an
// overall charge in, a ranked list of bond-electron matrices out.
//
// 🚀 What is golewis?
//
//	A pure in-memory combinatorial solver that brings together:
//		• Element data: valence, octet targets, electronegativity, metals
//		• Graph utilities: bounded ring detection, hop-count separations
//		• Bond-electron matrices: bond orders + unbound electrons in one
//		  symmetric integer matrix with named accessors
//		• A hand-tuned scoring heuristic: octet deficiency, octet
//		  expansion, formal charges, aromaticity, radicals, zwitterions
//		• A recursive move-graph search: greedy descent plus windowed
//		  resonance exploration with hash de-duplication
//		• Covalent bond classification for transition-metal centers
//
// ✨ Why choose golewis?
//
//   - Deterministic – identical inputs yield identical ranked output
//   - Pure Go – no cgo, no quantum chemistry toolchain required
//   - Tunable – every scoring weight and search bound is an Option
//
// Under the hood, everything is organized under four subpackages:
//
//	ptable/   – immutable per-element property tables
//	molgraph/ – rings, bridgeheads, graph separations, combinatorics
//	bondmat/  – the bond-electron matrix and its derived quantities
//	lewis/    – scoring, move generation, search, ranking, metal CBC
//
// Quick ASCII example (formaldehyde):
//
//	    H           H
//	     \           \
//	      C──O   ⇒    C══O   (best structure: C=O, zero formal charges)
//	     /           /
//	    H           H
//
// Dive into lewis.Find for the full pipeline and the package docs for
// the individual building blocks.
//
//	go get github.com/deepprinciple/golewis/lewis
package golewis
