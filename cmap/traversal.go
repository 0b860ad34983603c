package cmap

import (
	"ngonmap/dart"
	"ngonmap/marker"
	"ngonmap/orbit"
)

// CellWalker is the minimal surface ForeachCell/NbCells need: any map
// that can enumerate its darts and walk an orbit from a starting dart.
// *Map1 satisfies it directly; *Map2 and *Map3 inherit it by embedding.
type CellWalker interface {
	darts() *dart.Darts
	foreachDartOfOrbit(orbitName string, start dart.Dart, f func(dart.Dart))
}

// ForeachCell calls f once per distinct cell of orbit O, in the order
// its representative dart is first encountered while scanning darts.
func ForeachCell[O orbit.Tag](m CellWalker, f func(Cell[O])) {
	orbitName := orbit.Name[O]()
	mk := marker.NewDartMarker(m.darts())
	defer mk.Release()

	m.darts().ForeachDart(func(d dart.Dart) {
		if mk.IsMarked(d) {
			return
		}
		m.foreachDartOfOrbit(orbitName, d, func(od dart.Dart) { mk.Mark(od) })
		f(Cell[O]{Dart: d})
	})
}

// NbCells counts the distinct cells of orbit O.
func NbCells[O orbit.Tag](m CellWalker) uint32 {
	var n uint32
	ForeachCell[O](m, func(Cell[O]) { n++ })
	return n
}

// ForeachIncidentVertex visits the vertex at each corner of face,
// once per incident dart (so a non-simple face may revisit a vertex).
func ForeachIncidentVertex(m CellWalker, face Cell[orbit.Face], f func(Cell[orbit.Vertex])) {
	m.foreachDartOfOrbit("Face", face.Dart, func(d dart.Dart) {
		f(Cell[orbit.Vertex]{Dart: d})
	})
}
