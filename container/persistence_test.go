package container

import (
	"io"
	"testing"
)

func TestColumnSaveLoadRoundTrip(t *testing.T) {
	a := NewChunkArray[float64]("x", 4)
	a.SetNbChunks(3)
	for i := uint32(0); i < 10; i++ {
		a.Set(i, float64(i)*2.25)
	}

	var buf fakeBuffer
	if err := a.Save(&buf, 10); err != nil {
		t.Fatalf("save: %v", err)
	}

	b := NewChunkArray[float64]("x", 4)
	if err := b.Load(&buf); err != nil {
		t.Fatalf("load: %v", err)
	}
	for i := uint32(0); i < 10; i++ {
		if got, want := b.Get(i), a.Get(i); got != want {
			t.Fatalf("slot %d: got %v want %v", i, got, want)
		}
	}
}

func TestBoolColumnSaveLoadRoundTrip(t *testing.T) {
	a := NewBitChunkArray("flag", 32)
	a.SetNbChunks(3) // 96 bits
	positions := []uint32{0, 31, 32, 33, 69}
	for _, p := range positions {
		a.SetTrue(p)
	}

	var buf fakeBuffer
	if err := a.Save(&buf, 70); err != nil {
		t.Fatalf("save: %v", err)
	}

	b := NewBitChunkArray("flag", 32)
	if err := b.Load(&buf); err != nil {
		t.Fatalf("load: %v", err)
	}
	for i := uint32(0); i < 96; i++ {
		want := false
		for _, p := range positions {
			if p == i {
				want = true
			}
		}
		if got := b.Get(i); got != want {
			t.Fatalf("bit %d: got %v want %v", i, got, want)
		}
	}
}

func TestColumnLoadRejectsChunkByteSizeMismatch(t *testing.T) {
	a := NewChunkArray[float32]("x", 4)
	a.SetNbChunks(1)

	var buf fakeBuffer
	if err := a.Save(&buf, 4); err != nil {
		t.Fatal(err)
	}

	b := NewChunkArray[float64]("x", 4) // different element size
	err := b.Load(&buf)
	if err == nil {
		t.Fatalf("expected version mismatch error")
	}
}

func TestContainerSaveLoadRoundTrip(t *testing.T) {
	c := NewContainer(32)
	base := c.InsertLines(5)
	x, _ := AddAttribute[float64](c, "x")
	flag, _ := c.AddBoolAttribute("flag")
	for i := uint32(0); i < 5; i++ {
		x.Set(base+i, float64(i))
		flag.SetVal(base+i, i%2 == 0)
	}
	c.RemoveLine(base + 2)

	var buf fakeBuffer
	if err := c.Save(&buf); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded := NewContainer(32)
	if err := loaded.Load(&buf); err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.NbElements() != c.NbElements() {
		t.Fatalf("nb elements: got %d want %d", loaded.NbElements(), c.NbElements())
	}
	lx, err := GetAttribute[float64](loaded, "x")
	if err != nil {
		t.Fatal(err)
	}
	for i := uint32(0); i < 5; i++ {
		if i == 2 {
			continue // freed
		}
		if got := lx.Get(base + i); got != float64(i) {
			t.Fatalf("slot %d: got %v want %v", base+i, got, float64(i))
		}
	}
	if loaded.IsLive(base + 2) {
		t.Fatalf("freed slot should stay free across round trip")
	}
}

func TestContainerSaveWithDigestDetectsCorruption(t *testing.T) {
	c := NewContainer(32)
	base := c.InsertLines(2)
	x, _ := AddAttribute[uint32](c, "n")
	x.Set(base, 7)

	var buf fakeBuffer
	if err := c.SaveWithDigest(&buf); err != nil {
		t.Fatal(err)
	}
	corrupted := append([]byte(nil), buf.data...)
	corrupted[0] ^= 0xFF

	loaded := NewContainer(32)
	err := loaded.LoadWithDigest(&fakeBuffer{data: corrupted})
	if err == nil {
		t.Fatalf("expected digest mismatch error")
	}
}

// fakeBuffer is a minimal growable byte buffer implementing io.Reader
// and io.Writer without pulling in bytes.Buffer's extra surface, kept
// local to these tests for clarity.
type fakeBuffer struct {
	data []byte
	pos  int
}

func (b *fakeBuffer) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}

func (b *fakeBuffer) Read(p []byte) (int, error) {
	n := copy(p, b.data[b.pos:])
	b.pos += n
	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}
