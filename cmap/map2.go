package cmap

import (
	"ngonmap/dart"
	"ngonmap/internal/diag"
)

// Map2 is a 2-dimensional combinatorial map: Map1 plus phi2, the
// involution gluing two darts of distinct faces along an edge.
type Map2 struct {
	Map1
}

// NewMap2 creates an empty 2-dimensional map.
func NewMap2(chunkSize uint32) *Map2 {
	return &Map2{newMap1(2, chunkSize)}
}

// Phi2 follows the edge involution.
func (m *Map2) Phi2(d dart.Dart) dart.Dart { return m.Darts.Phi2(d) }

// SewFaces glues d and e along an edge (phi2(d) == e afterwards),
// merging their Edge cells and reconciling the Vertex cells at both
// ends of the newly shared edge.
func (m *Map2) SewFaces(d, e dart.Dart) {
	m.assertLiveDart("SewFaces", d)
	m.assertLiveDart("SewFaces", e)

	vertexTouched := []dart.Dart{d, e, m.Phi1Inv(d), m.Phi1Inv(e)}
	m.Darts.Phi2Sew(d, e)
	m.reconcileOrbit("Edge", []dart.Dart{d, e})
	m.reconcileOrbit("Vertex", vertexTouched)
}

// UnsewFaces undoes SewFaces on the edge currently glued to d,
// splitting its Edge cell back apart and reconciling the Vertex cells
// that may now split across the two faces.
func (m *Map2) UnsewFaces(d dart.Dart) {
	m.assertLiveDart("UnsewFaces", d)
	e := m.Darts.Phi2(d)
	diag.Assert(e != d, "UnsewFaces %v: phi2 already a fixed point", d)
	vertexTouched := []dart.Dart{d, e, m.Phi1Inv(d), m.Phi1Inv(e)}
	m.Darts.Phi2Unsew(d)
	m.reconcileOrbit("Edge", []dart.Dart{d, e})
	m.reconcileOrbit("Vertex", vertexTouched)
}
