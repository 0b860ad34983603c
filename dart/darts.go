package dart

import (
	"ngonmap/container"
	"ngonmap/internal/diag"
)

// Darts owns the dart-level storage of a combinatorial map: the
// phi1/phi1inv face permutation, the optional phi2/phi3 involutions
// (present only for CMap2/CMap3), and a free-form embedding container
// cell/AttributeHandle machinery in package cmap builds on top of.
type Darts struct {
	Container *container.ChunkArrayContainer

	dimension int

	phi1    *container.ChunkArray[uint32]
	phi1inv *container.ChunkArray[uint32]
	phi2    *container.ChunkArray[uint32] // nil when dimension < 2
	phi3    *container.ChunkArray[uint32] // nil when dimension < 3
}

// NewDarts allocates dart storage for a map of the given dimension (1,
// 2, or 3) with the given chunk size.
func NewDarts(dimension int, chunkSize uint32) *Darts {
	if dimension < 1 || dimension > 3 {
		panic("dart: dimension must be 1, 2 or 3")
	}
	c := container.NewContainer(chunkSize)
	d := &Darts{Container: c, dimension: dimension}

	d.phi1, _ = container.AddAttribute[uint32](c, "__phi1")
	d.phi1inv, _ = container.AddAttribute[uint32](c, "__phi1inv")
	if dimension >= 2 {
		d.phi2, _ = container.AddAttribute[uint32](c, "__phi2")
	}
	if dimension >= 3 {
		d.phi3, _ = container.AddAttribute[uint32](c, "__phi3")
	}
	return d
}

// Dimension reports the map dimension this dart storage was built for.
func (d *Darts) Dimension() int { return d.dimension }

// NbDarts reports the number of live darts.
func (d *Darts) NbDarts() uint32 { return d.Container.NbElements() }

// NewDart allocates a fresh dart, all of whose permutations start as
// fixed points on itself.
func (d *Darts) NewDart() Dart {
	slot := d.Container.InsertLines(1)
	dt := Dart(slot)
	d.phi1.Set(slot, slot)
	d.phi1inv.Set(slot, slot)
	if d.phi2 != nil {
		d.phi2.Set(slot, slot)
	}
	if d.phi3 != nil {
		d.phi3.Set(slot, slot)
	}
	return dt
}

// DeleteDart releases a dart's slot. Callers must already have
// restored all of its permutations to fixed points (i.e. fully unsewn
// it) before deleting; this is asserted under CMAP_DEBUG.
func (d *Darts) DeleteDart(dt Dart) {
	diag.Assert(d.Phi1(dt) == dt && d.Phi1Inv(dt) == dt,
		"DeleteDart %v: phi1 not a fixed point", dt)
	if d.phi2 != nil {
		diag.Assert(d.Phi2(dt) == dt, "DeleteDart %v: phi2 not a fixed point", dt)
	}
	if d.phi3 != nil {
		diag.Assert(d.Phi3(dt) == dt, "DeleteDart %v: phi3 not a fixed point", dt)
	}
	d.Container.RemoveLine(uint32(dt))
}

// Phi1 follows the face permutation forward.
func (d *Darts) Phi1(dt Dart) Dart { return Dart(d.phi1.Get(uint32(dt))) }

// Phi1Inv follows the face permutation backward.
func (d *Darts) Phi1Inv(dt Dart) Dart { return Dart(d.phi1inv.Get(uint32(dt))) }

// Phi2 follows the dimension-2 involution. Only valid when Dimension() >= 2.
func (d *Darts) Phi2(dt Dart) Dart { return Dart(d.phi2.Get(uint32(dt))) }

// Phi3 follows the dimension-3 involution. Only valid when Dimension() >= 3.
func (d *Darts) Phi3(dt Dart) Dart { return Dart(d.phi3.Get(uint32(dt))) }

func (d *Darts) setPhi1(dt, target Dart) {
	d.phi1.Set(uint32(dt), uint32(target))
	d.phi1inv.Set(uint32(target), uint32(dt))
}

// Phi1Sew splices the face permutation by exchanging phi1(dt) and
// phi1(e), the way a single transposition-based splice does for linked
// lists; when e is a fixed point of phi1 this makes phi1(dt) == e. It
// is the primitive AddFace in package cmap builds faces from.
func (d *Darts) Phi1Sew(dt, e Dart) {
	dtNext := d.Phi1(dt)
	eNext := d.Phi1(e)
	d.setPhi1(dt, eNext)
	d.setPhi1(e, dtNext)
}

// Phi1Unsew is its own inverse: splicing the same pair again undoes
// the splice.
func (d *Darts) Phi1Unsew(dt, e Dart) { d.Phi1Sew(dt, e) }

// Phi2Sew links dt and e as phi2 partners. Both must be fixed points
// of phi2 beforehand; asserted under CMAP_DEBUG.
func (d *Darts) Phi2Sew(dt, e Dart) {
	diag.Assert(d.Phi2(dt) == dt, "Phi2Sew %v: not a fixed point", dt)
	diag.Assert(d.Phi2(e) == e, "Phi2Sew %v: not a fixed point", e)
	d.phi2.Set(uint32(dt), uint32(e))
	d.phi2.Set(uint32(e), uint32(dt))
}

// Phi2Unsew restores dt and its current phi2 partner to fixed points.
func (d *Darts) Phi2Unsew(dt Dart) {
	e := d.Phi2(dt)
	d.phi2.Set(uint32(dt), uint32(dt))
	if e != dt {
		d.phi2.Set(uint32(e), uint32(e))
	}
}

// Phi3Sew links dt and e as phi3 partners. Both must be fixed points
// of phi3 beforehand; asserted under CMAP_DEBUG.
func (d *Darts) Phi3Sew(dt, e Dart) {
	diag.Assert(d.Phi3(dt) == dt, "Phi3Sew %v: not a fixed point", dt)
	diag.Assert(d.Phi3(e) == e, "Phi3Sew %v: not a fixed point", e)
	d.phi3.Set(uint32(dt), uint32(e))
	d.phi3.Set(uint32(e), uint32(dt))
}

// Phi3Unsew restores dt and its current phi3 partner to fixed points.
func (d *Darts) Phi3Unsew(dt Dart) {
	e := d.Phi3(dt)
	d.phi3.Set(uint32(dt), uint32(dt))
	if e != dt {
		d.phi3.Set(uint32(e), uint32(e))
	}
}

// ForeachDart calls f once per live dart in slot order.
func (d *Darts) ForeachDart(f func(Dart)) {
	d.Container.ForeachLiveSlot(func(slot uint32) { f(Dart(slot)) })
}
