// Package cmap implements the combinatorial map hierarchy (Map1, Map2,
// Map3) on top of package dart's permutation storage: cell orbits,
// attribute embeddings, and the sew/unsew operations that keep
// embeddings consistent as topology changes.
package cmap

import (
	"ngonmap/bufferpool"
	"ngonmap/container"
	"ngonmap/dart"
	"ngonmap/internal/diag"
	"ngonmap/marker"
)

var orbitQueuePool bufferpool.DartPool

// Map1 is a 1-dimensional combinatorial map: darts linked solely by
// phi1, the face permutation. Map2 and Map3 embed Map1 and inherit its
// methods, adding phi2 and phi3 respectively.
type Map1 struct {
	Darts *dart.Darts

	embedContainers map[string]*container.ChunkArrayContainer
	embedHas        map[string]*container.BitChunkArray
	embedIdx        map[string]*container.ChunkArray[uint32]
}

func newMap1(dimension int, chunkSize uint32) Map1 {
	return Map1{
		Darts:           dart.NewDarts(dimension, chunkSize),
		embedContainers: make(map[string]*container.ChunkArrayContainer),
		embedHas:        make(map[string]*container.BitChunkArray),
		embedIdx:        make(map[string]*container.ChunkArray[uint32]),
	}
}

// NewMap1 creates an empty 1-dimensional map.
func NewMap1(chunkSize uint32) *Map1 {
	m := newMap1(1, chunkSize)
	return &m
}

func (m *Map1) darts() *dart.Darts { return m.Darts }

// ForeachDart calls f once per live dart.
func (m *Map1) ForeachDart(f func(dart.Dart)) { m.Darts.ForeachDart(f) }

// Phi1 follows the face permutation forward.
func (m *Map1) Phi1(d dart.Dart) dart.Dart { return m.Darts.Phi1(d) }

// Phi1Inv follows the face permutation backward.
func (m *Map1) Phi1Inv(d dart.Dart) dart.Dart { return m.Darts.Phi1Inv(d) }

// AddFace creates a new face of n darts linked into a single phi1
// cycle and returns its first dart. Splicing one singleton dart at a
// time into the growing cycle via Phi1Sew builds the full n-cycle
// without a separate closing step.
func (m *Map1) AddFace(n int) dart.Dart {
	if n <= 0 {
		panic("cmap: AddFace requires n >= 1")
	}
	first := m.Darts.NewDart()
	prev := first
	for i := 1; i < n; i++ {
		d := m.Darts.NewDart()
		m.Darts.Phi1Sew(prev, d)
		prev = d
	}
	return first
}

// Codegree returns the number of darts on the face incident to d.
func (m *Map1) Codegree(d dart.Dart) int {
	n := 0
	m.foreachDartOfOrbit("Face", d, func(dart.Dart) { n++ })
	return n
}

// IsTriangle reports whether the face incident to d has exactly 3 darts.
func (m *Map1) IsTriangle(d dart.Dart) bool { return m.Codegree(d) == 3 }

// generators returns the permutation generator set defining the orbit
// named by orbitName, adapted to the map's actual dimension: the same
// switch serves Map1, Map2 and Map3 since phi2/phi3 generators are
// simply absent below the dimension that introduces them.
//
// Vertex is deliberately not handled here: unlike Edge/Face/Volume,
// which are orbits of an independently-generated subgroup (plain BFS
// over the listed generators is correct), the spec defines the Vertex
// orbit from the *composed* permutation phi1^-1 o phi2 — see
// foreachVertexDart for why that needs its own walk instead of BFS
// over {phi1^-1, phi2} as independent generators.
//
// Edge   = <phi2, phi3>          (undefined below dimension 2)
// Face   = <phi1, phi3>
// Volume = <phi1, phi2>          (undefined below dimension 3)
func (m *Map1) generators(orbitName string) []func(dart.Dart) dart.Dart {
	dim := m.Darts.Dimension()
	switch orbitName {
	case "Edge":
		if dim < 2 {
			return nil
		}
		gens := []func(dart.Dart) dart.Dart{m.Darts.Phi2}
		if dim >= 3 {
			gens = append(gens, m.Darts.Phi3)
		}
		return gens
	case "Face":
		gens := []func(dart.Dart) dart.Dart{m.Darts.Phi1}
		if dim >= 3 {
			gens = append(gens, m.Darts.Phi3)
		}
		return gens
	case "Volume":
		if dim < 3 {
			return nil
		}
		return []func(dart.Dart) dart.Dart{m.Darts.Phi1, m.Darts.Phi2}
	}
	return nil
}

// foreachDartOfOrbit visits every dart of the orbit containing start
// exactly once, via BFS over the orbit's generator set. An orbit with
// no generators (e.g. Edge in a Map1) is trivially just {start}.
// Vertex is special-cased to foreachVertexDart instead of the generic
// generator-set BFS; see that method's doc comment for why.
func (m *Map1) foreachDartOfOrbit(orbitName string, start dart.Dart, f func(dart.Dart)) {
	if orbitName == "Vertex" {
		m.foreachVertexDart(start, f)
		return
	}
	gens := m.generators(orbitName)
	if len(gens) == 0 {
		f(start)
		return
	}
	mk := marker.NewDartMarker(m.Darts)
	defer mk.Release()

	queue := orbitQueuePool.Get(8)
	defer orbitQueuePool.Release(queue)

	queue = append(queue, uint32(start))
	mk.Mark(start)
	for len(queue) > 0 {
		d := dart.Dart(queue[0])
		queue = queue[1:]
		f(d)
		for _, g := range gens {
			nd := g(d)
			if !mk.IsMarked(nd) {
				mk.Mark(nd)
				queue = append(queue, uint32(nd))
			}
		}
	}
}

// foreachVertexDart visits every dart of the Vertex orbit containing
// start. Edge/Face/Volume are orbits of a subgroup independently
// generated by the listed permutations, so plain BFS over those
// generators (foreachDartOfOrbit's default path) is correct for them.
// Vertex is not: phi1^-1 is a full cycle around an entire face, so
// BFS-ing {phi1^-1, phi2} as independent generators — or equivalently
// walking the single composed permutation phi1^-1 o phi2 forward until
// it returns to start — keeps applying phi1^-1 even across an unglued
// edge (phi2 is a fixed point there by the open-gluing convention),
// wrapping straight through the rest of the same face and merging
// unrelated corners into one bogus vertex. The fix is to only move to
// a neighboring face's corner when the edge actually being crossed is
// sewn, and otherwise stop in that direction:
//
//   - forward: from d, cross the edge represented by phi1^-1(d) (the
//     previous corner in d's face, which shares d's corner) via phi2,
//     but only if that edge isn't a phi2 fixed point.
//   - backward: cross the edge represented by d itself via phi2,
//     again only if it isn't a phi2 fixed point, landing on
//     phi1(phi2(d)) — the corresponding corner in the adjacent face.
//   - phi3 (dimension 3 only): jump directly to the corresponding
//     dart in an adjacent volume. This one genuinely is an independent
//     generator (an involution taken on its own, not composed with
//     phi1^-1), so folding it into the same BFS alongside the two
//     phi2 crossings above is safe.
//
// BFS (rather than a single start-to-start walk) additionally makes
// this correct for an interior vertex whose face fan closes on itself:
// it terminates via the marker's visited check instead of needing to
// detect "back at start".
func (m *Map1) foreachVertexDart(start dart.Dart, f func(dart.Dart)) {
	dim := m.Darts.Dimension()
	if dim < 2 {
		f(start)
		return
	}
	mk := marker.NewDartMarker(m.Darts)
	defer mk.Release()

	queue := orbitQueuePool.Get(8)
	defer orbitQueuePool.Release(queue)

	visit := func(d dart.Dart) {
		if !mk.IsMarked(d) {
			mk.Mark(d)
			queue = append(queue, uint32(d))
		}
	}
	visit(start)
	for len(queue) > 0 {
		d := dart.Dart(queue[0])
		queue = queue[1:]
		f(d)

		prev := m.Darts.Phi1Inv(d)
		if crossed := m.Darts.Phi2(prev); crossed != prev {
			visit(crossed)
		}
		if crossed := m.Darts.Phi2(d); crossed != d {
			visit(m.Darts.Phi1(crossed))
		}
		if dim >= 3 {
			visit(m.Darts.Phi3(d))
		}
	}
}

func (m *Map1) orbitDartsSlice(orbitName string, start dart.Dart) []dart.Dart {
	var out []dart.Dart
	m.foreachDartOfOrbit(orbitName, start, func(d dart.Dart) { out = append(out, d) })
	return out
}

// assertLiveDart panics under CMAP_DEBUG when d does not belong to
// this map's dart container range.
func (m *Map1) assertLiveDart(op string, d dart.Dart) {
	diag.Assert(m.Darts.Container.IsLive(uint32(d)), "%s: dart %v is not live", op, d)
}
