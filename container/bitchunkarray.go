package container

import (
	"encoding/binary"
	"io"
	"unsafe"

	"ngonmap/cmerr"
)

const wordBits = 32

// BitChunkArray is the bit-packed specialization for boolean columns.
// Each chunk backs C logical bits with C/32 uint32 words.
type BitChunkArray struct {
	name        string
	chunkSize   uint32 // C, logical bits per chunk
	chunks      [][]uint32
	loadedLines uint32
	removed     bool
}

// NewBitChunkArray creates an empty bit-packed column. chunkSize (C)
// must be a multiple of 32.
func NewBitChunkArray(name string, chunkSize uint32) *BitChunkArray {
	return &BitChunkArray{name: name, chunkSize: chunkSize}
}

func (a *BitChunkArray) Name() string      { return a.name }
func (a *BitChunkArray) TypeTag() string   { return "bool" }
func (a *BitChunkArray) ChunkSize() uint32 { return a.chunkSize }
func (a *BitChunkArray) NbChunks() uint32  { return uint32(len(a.chunks)) }
func (a *BitChunkArray) Capacity() uint32  { return a.NbChunks() * a.chunkSize }

// ElemByteSize reports C/8, the persisted chunk byte size for a boolean
// column (bits, not the 32-bit words used internally).
func (a *BitChunkArray) ElemByteSize() uint32 { return a.chunkSize / 8 }

func (a *BitChunkArray) wordsPerChunk() uint32 { return a.chunkSize / wordBits }

func (a *BitChunkArray) AddChunk() {
	a.chunks = append(a.chunks, make([]uint32, a.wordsPerChunk()))
}

func (a *BitChunkArray) SetNbChunks(n uint32) {
	cur := uint32(len(a.chunks))
	if n <= cur {
		a.chunks = a.chunks[:n]
		return
	}
	for i := cur; i < n; i++ {
		a.AddChunk()
	}
}

func (a *BitChunkArray) locate(i uint32) (chunk, word, bit uint32) {
	chunk = i / a.chunkSize
	within := i % a.chunkSize
	word = within / wordBits
	bit = within % wordBits
	return
}

// Get reports whether bit i is set.
func (a *BitChunkArray) Get(i uint32) bool {
	c, w, b := a.locate(i)
	return a.chunks[c][w]&(1<<b) != 0
}

// SetTrue sets bit i.
func (a *BitChunkArray) SetTrue(i uint32) {
	c, w, b := a.locate(i)
	a.chunks[c][w] |= 1 << b
}

// SetFalse clears bit i.
func (a *BitChunkArray) SetFalse(i uint32) {
	c, w, b := a.locate(i)
	a.chunks[c][w] &^= 1 << b
}

// SetVal sets or clears bit i depending on v.
func (a *BitChunkArray) SetVal(i uint32, v bool) {
	if v {
		a.SetTrue(i)
	} else {
		a.SetFalse(i)
	}
}

// SetFalseDirty clears the entire 32-bit word containing bit i, not
// just bit i itself. It clobbers the 31 neighboring bits and must only
// be used when the caller intends to clear the whole column (e.g. a
// marker release) — never mix with SetTrue on unrelated bits of the
// same word.
func (a *BitChunkArray) SetFalseDirty(i uint32) {
	c, w, _ := a.locate(i)
	a.chunks[c][w] = 0
}

// ClearAll zeroes every word of every chunk; the bulk form of
// SetFalseDirty used by marker release.
func (a *BitChunkArray) ClearAll() {
	for _, c := range a.chunks {
		for i := range c {
			c[i] = 0
		}
	}
}

func (a *BitChunkArray) InitElt(i uint32)          { a.SetFalse(i) }
func (a *BitChunkArray) CopyElt(dst, src uint32)   { a.SetVal(dst, a.Get(src)) }
func (a *BitChunkArray) SwapElt(i, j uint32) {
	vi, vj := a.Get(i), a.Get(j)
	a.SetVal(i, vj)
	a.SetVal(j, vi)
}

func (a *BitChunkArray) ChunkPointers() ([][]byte, uint32) {
	blockBytes := a.wordsPerChunk() * 4
	out := make([][]byte, len(a.chunks))
	for i, c := range a.chunks {
		if len(c) == 0 {
			continue
		}
		out[i] = unsafe.Slice((*byte)(unsafe.Pointer(&c[0])), blockBytes)
	}
	return out, blockBytes
}

// Save persists the column. num_live_lines is rounded up to a multiple
// of 32 before writing, per the boolean persistence format.
func (a *BitChunkArray) Save(w io.Writer, nbLines uint32) error {
	numChunks := a.NbChunks()
	roundedLines := (nbLines + wordBits - 1) / wordBits * wordBits
	chunkByteSize := a.ElemByteSize()
	hdr := [3]uint32{numChunks, roundedLines, chunkByteSize}
	if err := binary.Write(w, binary.LittleEndian, hdr); err != nil {
		return cmerr.Wrap(cmerr.IoTruncated, "BitChunkArray.Save: header", err)
	}
	if numChunks == 0 {
		return nil
	}
	for i := uint32(0); i < numChunks-1; i++ {
		if err := binary.Write(w, binary.LittleEndian, a.chunks[i]); err != nil {
			return cmerr.Wrap(cmerr.IoTruncated, "BitChunkArray.Save: full chunk", err)
		}
	}
	tailBits := roundedLines - (numChunks-1)*a.chunkSize
	tailWords := tailBits / wordBits
	last := a.chunks[numChunks-1]
	if tailWords > uint32(len(last)) {
		tailWords = uint32(len(last))
	}
	if err := binary.Write(w, binary.LittleEndian, last[:tailWords]); err != nil {
		return cmerr.Wrap(cmerr.IoTruncated, "BitChunkArray.Save: tail", err)
	}
	return nil
}

func (a *BitChunkArray) Load(r io.Reader) error {
	var hdr [3]uint32
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return cmerr.Wrap(cmerr.IoTruncated, "BitChunkArray.Load: header", err)
	}
	numChunks, nbLines, chunkByteSize := hdr[0], hdr[1], hdr[2]
	if chunkByteSize != a.ElemByteSize() {
		return cmerr.New(cmerr.IoVersionMismatch, "BitChunkArray.Load", a.name)
	}
	wordsPerChunk := a.wordsPerChunk()
	chunks := make([][]uint32, numChunks)
	for i := range chunks {
		chunks[i] = make([]uint32, wordsPerChunk)
	}
	roundedLines := (nbLines + wordBits - 1) / wordBits * wordBits
	for i := uint32(0); i < numChunks; i++ {
		if i+1 < numChunks {
			if err := binary.Read(r, binary.LittleEndian, chunks[i]); err != nil {
				return cmerr.Wrap(cmerr.IoTruncated, "BitChunkArray.Load: full chunk", err)
			}
			continue
		}
		tailBits := roundedLines - (numChunks-1)*a.chunkSize
		tailWords := tailBits / wordBits
		if tailWords > uint32(len(chunks[i])) {
			tailWords = uint32(len(chunks[i]))
		}
		if err := binary.Read(r, binary.LittleEndian, chunks[i][:tailWords]); err != nil {
			return cmerr.Wrap(cmerr.IoTruncated, "BitChunkArray.Load: tail", err)
		}
	}
	a.chunks = chunks
	a.loadedLines = nbLines
	return nil
}

// LoadedLines reports the num_live_lines header field read by the most
// recent Load call.
func (a *BitChunkArray) LoadedLines() uint32 { return a.loadedLines }

// Removed reports whether RemoveAttribute has detached this column
// from its owning container.
func (a *BitChunkArray) Removed() bool { return a.removed }

// SetRemoved marks the column as detached from its container.
func (a *BitChunkArray) SetRemoved(v bool) { a.removed = v }
