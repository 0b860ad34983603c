package container

import (
	"encoding/binary"
	"io"

	"ngonmap/cmerr"
)

// formatVersion is the persistence format tag written in every
// container header; it lets Load reject containers written by an
// incompatible layout before touching any column.
const formatVersion = "v1.0.0"

func newColumnForTag(tag, name string, chunkSize uint32) (Column, error) {
	switch tag {
	case "u8":
		return NewChunkArray[uint8](name, chunkSize), nil
	case "u16":
		return NewChunkArray[uint16](name, chunkSize), nil
	case "u32":
		return NewChunkArray[uint32](name, chunkSize), nil
	case "u64":
		return NewChunkArray[uint64](name, chunkSize), nil
	case "i8":
		return NewChunkArray[int8](name, chunkSize), nil
	case "i16":
		return NewChunkArray[int16](name, chunkSize), nil
	case "i32":
		return NewChunkArray[int32](name, chunkSize), nil
	case "i64":
		return NewChunkArray[int64](name, chunkSize), nil
	case "f32":
		return NewChunkArray[float32](name, chunkSize), nil
	case "f64":
		return NewChunkArray[float64](name, chunkSize), nil
	case "bool":
		return NewBitChunkArray(name, chunkSize), nil
	default:
		return nil, cmerr.New(cmerr.IoVersionMismatch, "Load", name)
	}
}

func writeString(w io.Writer, s string) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(s))); err != nil {
		return err
	}
	_, err := w.Write([]byte(s))
	return err
}

func readString(r io.Reader) (string, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

// Save writes the container prefix (format version, attribute count),
// the refcount column, then every other column in sorted name order.
func (c *ChunkArrayContainer) Save(w io.Writer) error {
	if err := writeString(w, formatVersion); err != nil {
		return cmerr.Wrap(cmerr.IoTruncated, "Container.Save", err)
	}
	names := c.AttributeNames()
	if err := binary.Write(w, binary.LittleEndian, uint32(len(names)+1)); err != nil {
		return cmerr.Wrap(cmerr.IoTruncated, "Container.Save", err)
	}
	if err := writeColumn(w, c.refcount, c.highWater); err != nil {
		return err
	}
	for _, name := range names {
		col := c.columns[name]
		if err := writeColumn(w, col, c.highWater); err != nil {
			return err
		}
	}
	return nil
}

func writeColumn(w io.Writer, col Column, nbLines uint32) error {
	if err := writeString(w, col.Name()); err != nil {
		return cmerr.Wrap(cmerr.IoTruncated, "Container.Save", err)
	}
	if err := writeString(w, col.TypeTag()); err != nil {
		return cmerr.Wrap(cmerr.IoTruncated, "Container.Save", err)
	}
	return col.Save(w, nbLines)
}

// Load replaces the container's contents with a previously-saved
// image. On any failure the container is left exactly as it was
// before the call (the new column set is built up in a scratch
// container and only swapped in on full success).
func (c *ChunkArrayContainer) Load(r io.Reader) error {
	version, err := readString(r)
	if err != nil {
		return cmerr.Wrap(cmerr.IoTruncated, "Container.Load", err)
	}
	if !compatibleVersion(version) {
		return cmerr.New(cmerr.IoVersionMismatch, "Container.Load", version)
	}
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return cmerr.Wrap(cmerr.IoTruncated, "Container.Load", err)
	}
	if count == 0 {
		return cmerr.New(cmerr.IoTruncated, "Container.Load", "")
	}

	scratch := &ChunkArrayContainer{chunkSize: c.chunkSize, columns: make(map[string]Column), freeHead: noNext}
	refName, refTag, refCol, nbLines, err := readColumn(r, c.chunkSize)
	if err != nil {
		return err
	}
	refcountCol, ok := refCol.(*ChunkArray[uint32])
	if !ok || refTag != "u32" {
		return cmerr.New(cmerr.TypeMismatch, "Container.Load", refName)
	}
	scratch.refcount = refcountCol
	scratch.highWater = nbLines
	scratch.nbLive = scratch.countLive()
	scratch.rebuildFreeList()

	for i := uint32(1); i < count; i++ {
		name, _, col, _, err := readColumn(r, c.chunkSize)
		if err != nil {
			return err
		}
		scratch.columns[name] = col
	}

	*c = *scratch
	return nil
}

func readColumn(r io.Reader, chunkSize uint32) (name, tag string, col Column, nbLines uint32, err error) {
	name, err = readString(r)
	if err != nil {
		return "", "", nil, 0, cmerr.Wrap(cmerr.IoTruncated, "Container.Load: column name", err)
	}
	tag, err = readString(r)
	if err != nil {
		return "", "", nil, 0, cmerr.Wrap(cmerr.IoTruncated, "Container.Load: column tag", err)
	}
	col, err = newColumnForTag(tag, name, chunkSize)
	if err != nil {
		return "", "", nil, 0, err
	}
	if err = col.Load(r); err != nil {
		return "", "", nil, 0, err
	}
	return name, tag, col, col.LoadedLines(), nil
}

func (c *ChunkArrayContainer) countLive() uint32 {
	var n uint32
	for i := uint32(0); i < c.highWater; i++ {
		if !isFreeVal(c.refcount.Get(i)) {
			n++
		}
	}
	return n
}

// rebuildFreeList reconstructs the singly-linked free list from the
// loaded refcount column's free bits (the persisted refcount values
// carry the free flag but not necessarily a consistent chain, since
// only the bit and — where already free — the next pointer are
// meaningful after a raw column reload).
func (c *ChunkArrayContainer) rebuildFreeList() {
	c.freeHead = noNext
	for i := c.highWater; i > 0; i-- {
		slot := i - 1
		if isFreeVal(c.refcount.Get(slot)) {
			c.refcount.Set(slot, encodeFree(c.freeHead))
			c.freeHead = slot
		}
	}
}
