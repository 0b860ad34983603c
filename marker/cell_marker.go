package marker

import (
	"ngonmap/container"
	"ngonmap/orbit"
)

// CellMarker flags cell slots (not darts) of orbit O as visited,
// backed by the same pooled bit-column mechanism as DartMarker. O is
// purely a compile-time tag; the column itself indexes by cell slot,
// independent of which orbit it's being used to mark.
type CellMarker[O orbit.Tag] struct {
	col       *container.BitChunkArray
	container *container.ChunkArrayContainer
	released  bool
}

// NewCellMarker acquires a clear marker column over the given
// container, typically a per-orbit embedding container.
func NewCellMarker[O orbit.Tag](c *container.ChunkArrayContainer) *CellMarker[O] {
	return &CellMarker[O]{col: c.AcquireMarkerColumn(), container: c}
}

func (m *CellMarker[O]) IsMarked(slot uint32) bool { return m.col.Get(slot) }
func (m *CellMarker[O]) Mark(slot uint32)          { m.col.SetTrue(slot) }
func (m *CellMarker[O]) Unmark(slot uint32)        { m.col.SetFalse(slot) }

// Release returns the marker column to the container's pool.
func (m *CellMarker[O]) Release() {
	if m.released {
		return
	}
	m.container.ReleaseMarkerColumn(m.col)
	m.released = true
}
