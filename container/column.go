// Package container implements the columnar attribute store described by
// the design: a ChunkArrayContainer holding named, typed ChunkArray
// columns addressed by a slot index, with a free list for slot reuse and
// a binary persistence format shared by every column.
package container

import "io"

// Numeric is the set of fixed-size element types a generic ChunkArray
// column can hold. Boolean columns use the dedicated BitChunkArray
// specialization instead (see bitchunkarray.go).
type Numeric interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~int8 | ~int16 | ~int32 | ~int64 |
		~float32 | ~float64
}

// Column is the type-erased view of a chunked column that
// ChunkArrayContainer needs in order to manage capacity, slot lifecycle,
// and persistence uniformly across heterogeneous element types.
type Column interface {
	Name() string
	TypeTag() string
	InitElt(slot uint32)
	CopyElt(dst, src uint32)
	SwapElt(i, j uint32)
	Capacity() uint32
	NbChunks() uint32
	SetNbChunks(n uint32)
	ChunkSize() uint32
	// ElemByteSize is sizeof(T) for a typed column, from which the
	// persisted chunk_byte_size header field C*sizeof(T) is computed; a
	// bit-packed boolean column instead returns C/8, its bytes per chunk
	// and the header value itself.
	ElemByteSize() uint32
	Save(w io.Writer, nbLines uint32) error
	Load(r io.Reader) error
	// LoadedLines reports the num_live_lines header field read by the
	// most recent Load call (0 before the first Load).
	LoadedLines() uint32
	// ChunkPointers exposes the raw backing bytes of each chunk for
	// direct I/O or zero-copy upload. Callers must not retain the
	// returned slices across any mutation of the column.
	ChunkPointers() (blocks [][]byte, blockBytes uint32)
	// Removed reports whether RemoveAttribute has detached this column
	// from its container; SetRemoved is how RemoveAttribute says so.
	// AttributeHandle.IsValid consults this to invalidate handles to a
	// column that no longer exists.
	Removed() bool
	SetRemoved(bool)
}
