package container

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Stats summarizes a container for diagnostics and the catalog index;
// see cmd/cmapinfo for a consumer.
type Stats struct {
	Capacity     uint32
	Live         uint32
	FreeListLen  uint32
	NbColumns    int
	ChunkSize    uint32
	ApproxBytes  uint64
}

// Stats computes a summary of the container's current shape.
func (c *ChunkArrayContainer) Stats() Stats {
	var freeLen uint32
	for h := c.freeHead; h != noNext; {
		freeLen++
		h = nextOfVal(c.refcount.Get(h))
	}
	var bytes uint64
	bytes += uint64(c.refcount.Capacity()) * uint64(c.refcount.ElemByteSize())
	for _, col := range c.columns {
		if _, ok := col.(*BitChunkArray); ok {
			// A boolean column's ElemByteSize is already bytes per chunk.
			bytes += uint64(col.NbChunks()) * uint64(col.ElemByteSize())
			continue
		}
		bytes += uint64(col.Capacity()) * uint64(col.ElemByteSize())
	}
	return Stats{
		Capacity:    c.Capacity(),
		Live:        c.nbLive,
		FreeListLen: freeLen,
		NbColumns:   len(c.columns),
		ChunkSize:   c.chunkSize,
		ApproxBytes: bytes,
	}
}

// String renders the stats with humanized byte counts.
func (s Stats) String() string {
	return fmt.Sprintf("live=%d/%d free=%d columns=%d chunk=%d size=%s",
		s.Live, s.Capacity, s.FreeListLen, s.NbColumns, s.ChunkSize,
		humanize.Bytes(s.ApproxBytes))
}
