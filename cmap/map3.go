package cmap

import (
	"ngonmap/dart"
	"ngonmap/internal/diag"
)

// Map3 is a 3-dimensional combinatorial map: Map2 plus phi3, the
// involution gluing two darts of distinct volumes along a face.
type Map3 struct {
	Map2
}

// NewMap3 creates an empty 3-dimensional map.
func NewMap3(chunkSize uint32) *Map3 {
	return &Map3{Map2{newMap1(3, chunkSize)}}
}

// Phi3 follows the volume involution.
func (m *Map3) Phi3(d dart.Dart) dart.Dart { return m.Darts.Phi3(d) }

// Sew3 glues d and e along a face (phi3(d) == e afterwards) and
// reconciles every cell that may merge as a result: the shared Face,
// and the Edge and Vertex cells along its boundary. Volume cells stay
// separate, since the Volume orbit <phi1, phi2> does not include phi3.
func (m *Map3) Sew3(d, e dart.Dart) {
	m.assertLiveDart("Sew3", d)
	m.assertLiveDart("Sew3", e)

	faceTouched := []dart.Dart{d, e, m.Phi1(d), m.Phi1(e), m.Phi1Inv(d), m.Phi1Inv(e)}
	vertexTouched := []dart.Dart{d, e, m.Phi1Inv(d), m.Phi1Inv(e), m.Phi2(d), m.Phi2(e)}

	m.Darts.Phi3Sew(d, e)

	m.reconcileOrbit("Volume", []dart.Dart{d, e})
	m.reconcileOrbit("Face", faceTouched)
	m.reconcileOrbit("Edge", []dart.Dart{d, e})
	m.reconcileOrbit("Vertex", vertexTouched)
}

// Unsew3 undoes Sew3 on the volume currently glued to d.
func (m *Map3) Unsew3(d dart.Dart) {
	m.assertLiveDart("Unsew3", d)
	e := m.Darts.Phi3(d)
	diag.Assert(e != d, "Unsew3 %v: phi3 already a fixed point", d)
	faceTouched := []dart.Dart{d, e, m.Phi1(d), m.Phi1(e), m.Phi1Inv(d), m.Phi1Inv(e)}
	vertexTouched := []dart.Dart{d, e, m.Phi1Inv(d), m.Phi1Inv(e), m.Phi2(d), m.Phi2(e)}

	m.Darts.Phi3Unsew(d)

	m.reconcileOrbit("Volume", []dart.Dart{d, e})
	m.reconcileOrbit("Face", faceTouched)
	m.reconcileOrbit("Edge", []dart.Dart{d, e})
	m.reconcileOrbit("Vertex", vertexTouched)
}
