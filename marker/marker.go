// Package marker provides scoped, pooled bit-column markers used to
// flag visited darts or cells during a traversal without paying for a
// fresh allocation every time one is needed.
package marker

import (
	"ngonmap/container"
	"ngonmap/dart"
)

// DartMarker is a scratch per-dart boolean flag borrowed from the
// owning container's marker pool. Callers must call Release when done;
// the usual pattern is `defer m.Release()` right after acquiring it.
type DartMarker struct {
	col       *container.BitChunkArray
	container *container.ChunkArrayContainer
	released  bool
}

// NewDartMarker acquires a clear marker column over d's dart container.
func NewDartMarker(d *dart.Darts) *DartMarker {
	c := d.Container
	return &DartMarker{col: c.AcquireMarkerColumn(), container: c}
}

// IsMarked reports whether dt has been marked in this scope.
func (m *DartMarker) IsMarked(dt dart.Dart) bool {
	return m.col.Get(uint32(dt))
}

// Mark flags dt as visited.
func (m *DartMarker) Mark(dt dart.Dart) {
	m.col.SetTrue(uint32(dt))
}

// Unmark clears the flag on dt without affecting neighboring darts.
func (m *DartMarker) Unmark(dt dart.Dart) {
	m.col.SetFalse(uint32(dt))
}

// Release returns the marker column to the container's pool. Calling
// Release more than once is a no-op.
func (m *DartMarker) Release() {
	if m.released {
		return
	}
	m.container.ReleaseMarkerColumn(m.col)
	m.released = true
}
