package container

import "testing"

func TestChunkArrayGetSetAcrossChunks(t *testing.T) {
	a := NewChunkArray[float64]("x", 4)
	a.SetNbChunks(3) // capacity 12
	for i := uint32(0); i < a.Capacity(); i++ {
		a.Set(i, float64(i)*1.5)
	}
	for i := uint32(0); i < a.Capacity(); i++ {
		if got := a.Get(i); got != float64(i)*1.5 {
			t.Fatalf("slot %d: got %v want %v", i, got, float64(i)*1.5)
		}
	}
}

func TestChunkArraySetNbChunksShrinkKeepsSurvivors(t *testing.T) {
	a := NewChunkArray[uint32]("n", 4)
	a.SetNbChunks(2)
	a.Set(0, 42)
	a.SetNbChunks(1)
	if a.Capacity() != 4 {
		t.Fatalf("capacity after shrink = %d, want 4", a.Capacity())
	}
	if got := a.Get(0); got != 42 {
		t.Fatalf("surviving slot corrupted: got %d", got)
	}
}

func TestChunkArraySwapAndCopyElt(t *testing.T) {
	a := NewChunkArray[int32]("s", 4)
	a.SetNbChunks(1)
	a.Set(0, 10)
	a.Set(1, 20)
	a.SwapElt(0, 1)
	if a.Get(0) != 20 || a.Get(1) != 10 {
		t.Fatalf("swap failed: %d %d", a.Get(0), a.Get(1))
	}
	a.CopyElt(2, 0)
	if a.Get(2) != a.Get(0) {
		t.Fatalf("copy failed: %d != %d", a.Get(2), a.Get(0))
	}
}

func TestBitChunkArrayBasics(t *testing.T) {
	a := NewBitChunkArray("flag", 64)
	a.SetNbChunks(2) // 128 bits
	positions := []uint32{0, 31, 32, 33, 69}
	for _, p := range positions {
		a.SetTrue(p)
	}
	for i := uint32(0); i < a.Capacity(); i++ {
		want := false
		for _, p := range positions {
			if p == i {
				want = true
			}
		}
		if got := a.Get(i); got != want {
			t.Fatalf("bit %d: got %v want %v", i, got, want)
		}
	}
}

func TestBitChunkArraySetFalseDirtyClobbersWord(t *testing.T) {
	a := NewBitChunkArray("flag", 64)
	a.SetNbChunks(1)
	a.SetTrue(0)
	a.SetTrue(1)
	a.SetFalseDirty(0) // clears the whole 32-bit word containing bit 0
	if a.Get(0) || a.Get(1) {
		t.Fatalf("expected both bits cleared by word-level dirty clear")
	}
}
