package marker

import (
	"testing"

	"ngonmap/container"
	"ngonmap/dart"
	"ngonmap/orbit"
)

func TestDartMarkerMarkAndRelease(t *testing.T) {
	d := dart.NewDarts(1, 32)
	a := d.NewDart()
	b := d.NewDart()

	m := NewDartMarker(d)
	m.Mark(a)
	if !m.IsMarked(a) {
		t.Fatalf("expected a marked")
	}
	if m.IsMarked(b) {
		t.Fatalf("expected b unmarked")
	}
	m.Release()

	// A freshly acquired marker must come back clear even though the
	// pool reused the same underlying column.
	m2 := NewDartMarker(d)
	defer m2.Release()
	if m2.IsMarked(a) {
		t.Fatalf("expected marker column cleared on reacquire")
	}
}

func TestCellMarkerGenericOverOrbit(t *testing.T) {
	c := container.NewContainer(32)
	base := c.InsertLines(3)

	vm := NewCellMarker[orbit.Vertex](c)
	defer vm.Release()
	vm.Mark(base + 1)
	if !vm.IsMarked(base+1) || vm.IsMarked(base) {
		t.Fatalf("vertex marker state wrong")
	}
}
