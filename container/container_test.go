package container

import (
	"testing"

	"ngonmap/cmerr"
)

func TestInsertLinesGrowsAndReusesFreed(t *testing.T) {
	c := NewContainer(32)
	a := c.InsertLines(3)
	if c.NbElements() != 3 {
		t.Fatalf("nb elements = %d, want 3", c.NbElements())
	}
	c.RemoveLine(a + 1)
	if c.NbElements() != 2 {
		t.Fatalf("nb elements after remove = %d, want 2", c.NbElements())
	}
	if c.IsLive(a + 1) {
		t.Fatalf("slot %d should be free", a+1)
	}

	b := c.InsertLines(1)
	if b != a+1 {
		t.Fatalf("expected freed slot %d to be reused, got %d", a+1, b)
	}
}

func TestInsertLinesReusesContiguousRun(t *testing.T) {
	c := NewContainer(32)
	base := c.InsertLines(4)
	// Free base+2 first so base+1 ends up at the free-list head, with
	// base+2 right behind it: the head starts a run of two free slots.
	c.RemoveLine(base + 2)
	c.RemoveLine(base + 1)

	run := c.InsertLines(2)
	if run != base+1 {
		t.Fatalf("expected reuse of contiguous run at %d, got %d", base+1, run)
	}
}

func TestAddAttributeNameInUse(t *testing.T) {
	c := NewContainer(32)
	if _, err := AddAttribute[float64](c, "x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := AddAttribute[float64](c, "x")
	if !cmerr.Is(err, cmerr.NameInUse) {
		t.Fatalf("expected NameInUse, got %v", err)
	}
}

func TestGetAttributeMissingAndTypeMismatch(t *testing.T) {
	c := NewContainer(32)
	if _, err := GetAttribute[float64](c, "nope"); !cmerr.Is(err, cmerr.Missing) {
		t.Fatalf("expected Missing, got %v", err)
	}
	if _, err := AddAttribute[float64](c, "x"); err != nil {
		t.Fatal(err)
	}
	if _, err := GetAttribute[uint32](c, "x"); !cmerr.Is(err, cmerr.TypeMismatch) {
		t.Fatalf("expected TypeMismatch, got %v", err)
	}
}

func TestAttributeWriteThroughAllLiveSlots(t *testing.T) {
	c := NewContainer(32)
	base := c.InsertLines(3)
	x, err := AddAttribute[float64](c, "x")
	if err != nil {
		t.Fatal(err)
	}
	for i := uint32(0); i < 3; i++ {
		x.Set(base+i, 3.0)
	}
	for i := uint32(0); i < 3; i++ {
		if got := x.Get(base + i); got != 3.0 {
			t.Fatalf("slot %d: got %v want 3.0", base+i, got)
		}
	}
}

func TestForceTypeSizeMatch(t *testing.T) {
	c := NewContainer(32)
	base := c.InsertLines(1)
	f, _ := AddAttribute[float32](c, "x")
	f.Set(base, 3.5)

	asU32, err := GetAttributeForceType[uint32, float32](c, "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bits := asU32.Get(base)
	if bits == 0 {
		t.Fatalf("expected nonzero bit pattern for 3.5")
	}
}

func TestForceTypeSizeMismatch(t *testing.T) {
	c := NewContainer(32)
	if _, err := AddAttribute[float32](c, "x"); err != nil {
		t.Fatal(err)
	}
	_, err := GetAttributeForceType[float64, float32](c, "x")
	if !cmerr.Is(err, cmerr.TypeSizeMismatch) {
		t.Fatalf("expected TypeSizeMismatch, got %v", err)
	}
	// original column is untouched
	if _, err := GetAttribute[float32](c, "x"); err != nil {
		t.Fatalf("original column should still be readable: %v", err)
	}
}

func TestRemoveAddAttributeCycleYieldsFreshDefaultColumn(t *testing.T) {
	c := NewContainer(32)
	base := c.InsertLines(2)
	x, _ := AddAttribute[uint32](c, "n")
	x.Set(base, 99)

	if err := c.RemoveAttribute("n"); err != nil {
		t.Fatal(err)
	}
	x2, err := AddAttribute[uint32](c, "n")
	if err != nil {
		t.Fatal(err)
	}
	if x2.Capacity() != c.Capacity() {
		t.Fatalf("new column capacity %d != container capacity %d", x2.Capacity(), c.Capacity())
	}
	for i := uint32(0); i < x2.Capacity(); i++ {
		if x2.Get(i) != 0 {
			t.Fatalf("slot %d not default-initialized: %d", i, x2.Get(i))
		}
	}
}

func TestCompactRemapsOverFreedSlots(t *testing.T) {
	c := NewContainer(32)
	base := c.InsertLines(4)
	x, _ := AddAttribute[uint32](c, "tag")
	for i := uint32(0); i < 4; i++ {
		x.Set(base+i, base+i)
	}
	c.RemoveLine(base + 1)

	remap := c.Compact()
	if c.NbElements() != 3 {
		t.Fatalf("nb elements after compact = %d, want 3", c.NbElements())
	}
	for old, new := range remap {
		if x.Get(new) != old {
			t.Fatalf("remap %d->%d: column value %d, want %d", old, new, x.Get(new), old)
		}
	}
}
