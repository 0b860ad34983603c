package bufferpool

import "testing"

func TestU32PoolGetReleaseRoundTrip(t *testing.T) {
	var p U32Pool
	buf := p.Get(8)
	if len(buf) != 0 || cap(buf) < 8 {
		t.Fatalf("expected empty buffer with cap >= 8, got len=%d cap=%d", len(buf), cap(buf))
	}
	buf = append(buf, 1, 2, 3)
	p.Release(buf)

	reused := p.Get(4)
	if len(reused) != 0 {
		t.Fatalf("expected reused buffer truncated to len 0, got %v", reused)
	}
}

func TestDartPoolEmbedsU32Pool(t *testing.T) {
	var p DartPool
	buf := p.Get(2)
	buf = append(buf, 7)
	p.Release(buf)
	if got := p.Get(1); cap(got) < 1 {
		t.Fatalf("expected pooled buffer reused")
	}
}
