package dart

import "testing"

func TestNewDartStartsAsFixedPoint(t *testing.T) {
	d := NewDarts(2, 32)
	a := d.NewDart()
	if d.Phi1(a) != a || d.Phi1Inv(a) != a {
		t.Fatalf("phi1 not a fixed point on fresh dart")
	}
	if d.Phi2(a) != a {
		t.Fatalf("phi2 not a fixed point on fresh dart")
	}
}

func TestPhi1SewBuildsFaceCycle(t *testing.T) {
	d := NewDarts(1, 32)
	a := d.NewDart()
	b := d.NewDart()
	c := d.NewDart()

	// Splice a->b and b->c into a single 3-cycle a->b->c->a.
	d.Phi1Sew(a, b)
	d.Phi1Sew(b, c)

	if d.Phi1(a) != b || d.Phi1(b) != c || d.Phi1(c) != a {
		t.Fatalf("expected 3-cycle a->b->c->a, got a->%v b->%v c->%v", d.Phi1(a), d.Phi1(b), d.Phi1(c))
	}
	if d.Phi1Inv(b) != a || d.Phi1Inv(c) != b || d.Phi1Inv(a) != c {
		t.Fatalf("phi1inv inconsistent with phi1")
	}
}

func TestPhi1UnsewReversesSplice(t *testing.T) {
	d := NewDarts(1, 32)
	a := d.NewDart()
	b := d.NewDart()
	d.Phi1Sew(a, b)
	d.Phi1Unsew(a, b)
	if d.Phi1(a) != a || d.Phi1(b) != b {
		t.Fatalf("unsew did not restore fixed points: a->%v b->%v", d.Phi1(a), d.Phi1(b))
	}
}

func TestPhi2SewAndUnsew(t *testing.T) {
	d := NewDarts(2, 32)
	a := d.NewDart()
	b := d.NewDart()
	d.Phi2Sew(a, b)
	if d.Phi2(a) != b || d.Phi2(b) != a {
		t.Fatalf("phi2 not symmetric after sew")
	}
	d.Phi2Unsew(a)
	if d.Phi2(a) != a || d.Phi2(b) != b {
		t.Fatalf("phi2 not restored to fixed points after unsew")
	}
}

func TestDeleteDartFreesSlotForReuse(t *testing.T) {
	d := NewDarts(1, 32)
	a := d.NewDart()
	d.DeleteDart(a)
	b := d.NewDart()
	if b != a {
		t.Fatalf("expected freed slot %v to be reused, got %v", a, b)
	}
}

func TestForeachDartVisitsOnlyLiveDarts(t *testing.T) {
	d := NewDarts(1, 32)
	a := d.NewDart()
	b := d.NewDart()
	d.DeleteDart(a)

	var seen []Dart
	d.ForeachDart(func(dt Dart) { seen = append(seen, dt) })
	if len(seen) != 1 || seen[0] != b {
		t.Fatalf("expected only %v visited, got %v", b, seen)
	}
}
