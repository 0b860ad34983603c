package container

import (
	"encoding/binary"
	"io"
	"unsafe"

	"ngonmap/cmerr"
)

// ChunkArray is one typed column: a sequence of fixed-size chunks of C
// elements each. Access a[i] is chunks[i/C][i%C].
type ChunkArray[T Numeric] struct {
	name        string
	chunkSize   uint32
	chunks      [][]T
	loadedLines uint32
	removed     bool
}

// NewChunkArray creates an empty column with the given chunk size. The
// name is purely descriptive (used in error messages and persistence).
func NewChunkArray[T Numeric](name string, chunkSize uint32) *ChunkArray[T] {
	return &ChunkArray[T]{name: name, chunkSize: chunkSize}
}

func (a *ChunkArray[T]) Name() string     { return a.name }
func (a *ChunkArray[T]) ChunkSize() uint32 { return a.chunkSize }
func (a *ChunkArray[T]) NbChunks() uint32  { return uint32(len(a.chunks)) }
func (a *ChunkArray[T]) Capacity() uint32  { return a.NbChunks() * a.chunkSize }

func (a *ChunkArray[T]) TypeTag() string {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return "u8"
	case uint16:
		return "u16"
	case uint32:
		return "u32"
	case uint64:
		return "u64"
	case int8:
		return "i8"
	case int16:
		return "i16"
	case int32:
		return "i32"
	case int64:
		return "i64"
	case float32:
		return "f32"
	case float64:
		return "f64"
	default:
		return "unknown"
	}
}

func (a *ChunkArray[T]) ElemByteSize() uint32 {
	var zero T
	return uint32(unsafe.Sizeof(zero))
}

// AddChunk allocates one default-initialized chunk.
func (a *ChunkArray[T]) AddChunk() {
	a.chunks = append(a.chunks, make([]T, a.chunkSize))
}

// SetNbChunks grows or shrinks the chunk vector. Shrinking frees the
// trailing chunks; indices into surviving chunks remain valid.
func (a *ChunkArray[T]) SetNbChunks(n uint32) {
	cur := uint32(len(a.chunks))
	if n <= cur {
		a.chunks = a.chunks[:n]
		return
	}
	for i := cur; i < n; i++ {
		a.AddChunk()
	}
}

func (a *ChunkArray[T]) chunkOf(i uint32) (uint32, uint32) {
	return i / a.chunkSize, i % a.chunkSize
}

// Get returns the element at slot i. Behavior is undefined for
// i >= Capacity(), matching the contract of the original design.
func (a *ChunkArray[T]) Get(i uint32) T {
	c, o := a.chunkOf(i)
	return a.chunks[c][o]
}

// Set writes v at slot i.
func (a *ChunkArray[T]) Set(i uint32, v T) {
	c, o := a.chunkOf(i)
	a.chunks[c][o] = v
}

// InitElt assigns the type's zero value to slot i.
func (a *ChunkArray[T]) InitElt(i uint32) {
	var zero T
	a.Set(i, zero)
}

// CopyElt copies the value at src to dst.
func (a *ChunkArray[T]) CopyElt(dst, src uint32) {
	a.Set(dst, a.Get(src))
}

// SwapElt exchanges the values at i and j in place.
func (a *ChunkArray[T]) SwapElt(i, j uint32) {
	vi, vj := a.Get(i), a.Get(j)
	a.Set(i, vj)
	a.Set(j, vi)
}

// ChunkPointers exposes each chunk's backing storage as a raw byte
// slice via an unsafe reinterpretation, for direct I/O or upload. The
// caller must not retain these slices across any mutation of the
// column: a SetNbChunks call can replace the backing chunks entirely.
func (a *ChunkArray[T]) ChunkPointers() ([][]byte, uint32) {
	blockBytes := a.chunkSize * a.ElemByteSize()
	out := make([][]byte, len(a.chunks))
	for i, c := range a.chunks {
		if len(c) == 0 {
			continue
		}
		out[i] = unsafe.Slice((*byte)(unsafe.Pointer(&c[0])), blockBytes)
	}
	return out, blockBytes
}

// Save writes the column header followed by nbLines elements: all full
// chunks but the last, then a tail sized to the live remainder.
func (a *ChunkArray[T]) Save(w io.Writer, nbLines uint32) error {
	numChunks := a.NbChunks()
	chunkByteSize := a.chunkSize * a.ElemByteSize()
	hdr := [3]uint32{numChunks, nbLines, chunkByteSize}
	if err := binary.Write(w, binary.LittleEndian, hdr); err != nil {
		return cmerr.Wrap(cmerr.IoTruncated, "ChunkArray.Save: header", err)
	}
	if numChunks == 0 {
		return nil
	}
	for i := uint32(0); i < numChunks-1; i++ {
		if err := binary.Write(w, binary.LittleEndian, a.chunks[i]); err != nil {
			return cmerr.Wrap(cmerr.IoTruncated, "ChunkArray.Save: full chunk", err)
		}
	}
	tailLen := nbLines - (numChunks-1)*a.chunkSize
	last := a.chunks[numChunks-1]
	if tailLen > uint32(len(last)) {
		tailLen = uint32(len(last))
	}
	if err := binary.Write(w, binary.LittleEndian, last[:tailLen]); err != nil {
		return cmerr.Wrap(cmerr.IoTruncated, "ChunkArray.Save: tail", err)
	}
	return nil
}

// Load restores exactly the layout Save produced. It returns a typed
// error (without mutating the receiver) if the stored chunk byte size
// disagrees with the current element size times chunk size.
func (a *ChunkArray[T]) Load(r io.Reader) error {
	var hdr [3]uint32
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return cmerr.Wrap(cmerr.IoTruncated, "ChunkArray.Load: header", err)
	}
	numChunks, nbLines, chunkByteSize := hdr[0], hdr[1], hdr[2]
	wantByteSize := a.chunkSize * a.ElemByteSize()
	if chunkByteSize != wantByteSize {
		return cmerr.New(cmerr.IoVersionMismatch, "ChunkArray.Load", a.name)
	}
	chunks := make([][]T, numChunks)
	for i := range chunks {
		chunks[i] = make([]T, a.chunkSize)
	}
	for i := uint32(0); i < numChunks; i++ {
		if i+1 < numChunks {
			if err := binary.Read(r, binary.LittleEndian, chunks[i]); err != nil {
				return cmerr.Wrap(cmerr.IoTruncated, "ChunkArray.Load: full chunk", err)
			}
			continue
		}
		tailLen := nbLines - (numChunks-1)*a.chunkSize
		if err := binary.Read(r, binary.LittleEndian, chunks[i][:tailLen]); err != nil {
			return cmerr.Wrap(cmerr.IoTruncated, "ChunkArray.Load: tail", err)
		}
	}
	a.chunks = chunks
	a.loadedLines = nbLines
	return nil
}

// LoadedLines reports the num_live_lines header field read by the most
// recent Load call.
func (a *ChunkArray[T]) LoadedLines() uint32 { return a.loadedLines }

// Removed reports whether RemoveAttribute has removed this column from
// its owning container. Outstanding AttributeHandles consult this to
// implement IsValid rather than silently reading/writing a column that
// no longer belongs to any container.
func (a *ChunkArray[T]) Removed() bool { return a.removed }

// SetRemoved marks the column as detached from its container. Called
// once, by ChunkArrayContainer.RemoveAttribute.
func (a *ChunkArray[T]) SetRemoved(v bool) { a.removed = v }
