package cmap

import (
	"ngonmap/container"
	"ngonmap/dart"
	"ngonmap/orbit"
)

// Cell identifies a cell of orbit O by one of its incident darts. Two
// Cell values with darts in the same orbit denote the same cell.
type Cell[O orbit.Tag] struct {
	Dart dart.Dart
}

// NewCell wraps d as a cell of orbit O.
func NewCell[O orbit.Tag](d dart.Dart) Cell[O] { return Cell[O]{Dart: d} }

// AttributeHandle is a typed reference to a named column over orbit
// O's embedding container. Go disallows generic methods, so the
// map-dependent Get/Set below take the map explicitly instead of
// capturing it on construction.
type AttributeHandle[O orbit.Tag, T container.Numeric] struct {
	orbitName string
	econt     *container.ChunkArrayContainer
	col       *container.ChunkArray[T]
}

// AddAttribute creates a new orbit-O attribute column named name,
// lazily creating that orbit's embedding container on first use.
func AddAttribute[O orbit.Tag, T container.Numeric](m embedder, name string) (*AttributeHandle[O, T], error) {
	orbitName := orbit.Name[O]()
	econt := m.embeddingContainer(orbitName)
	col, err := container.AddAttribute[T](econt, name)
	if err != nil {
		return nil, err
	}
	return &AttributeHandle[O, T]{orbitName: orbitName, econt: econt, col: col}, nil
}

// GetAttribute looks up an existing orbit-O attribute column by name.
func GetAttribute[O orbit.Tag, T container.Numeric](m embedder, name string) (*AttributeHandle[O, T], error) {
	orbitName := orbit.Name[O]()
	econt := m.embeddingContainer(orbitName)
	col, err := container.GetAttribute[T](econt, name)
	if err != nil {
		return nil, err
	}
	return &AttributeHandle[O, T]{orbitName: orbitName, econt: econt, col: col}, nil
}

// IsValid reports whether h still refers to a live column: false for a
// default-constructed handle (col is nil) and false once the column
// has been removed from its container via RemoveAttribute, even though
// h itself keeps pointing at the now-detached *ChunkArray.
func (h AttributeHandle[O, T]) IsValid() bool {
	return h.col != nil && !h.col.Removed()
}

// Get returns the value attached to c's cell, embedding the cell (with
// a default-valued slot) on first access if it wasn't embedded yet.
func (h *AttributeHandle[O, T]) Get(m embedder, c Cell[O]) T {
	slot := m.ensureEmbedding(h.orbitName, c.Dart)
	return h.col.Get(slot)
}

// Set writes the value attached to c's cell, embedding it first if
// necessary.
func (h *AttributeHandle[O, T]) Set(m embedder, c Cell[O], v T) {
	slot := m.ensureEmbedding(h.orbitName, c.Dart)
	h.col.Set(slot, v)
}

// Foreach calls f once per live slot's current value, in ascending
// slot order, skipping free slots by consulting the embedding
// container's refcount column. A no-op on an invalid handle.
func (h *AttributeHandle[O, T]) Foreach(f func(slot uint32, v T)) {
	if !h.IsValid() {
		return
	}
	h.econt.ForeachLiveSlot(func(slot uint32) {
		f(slot, h.col.Get(slot))
	})
}

// SetAllContainerValues writes v to every live slot of the underlying
// column. A no-op on an invalid handle.
func (h *AttributeHandle[O, T]) SetAllContainerValues(v T) {
	if !h.IsValid() {
		return
	}
	h.econt.ForeachLiveSlot(func(slot uint32) {
		h.col.Set(slot, v)
	})
}
