// Package dart implements the dart-level storage of a combinatorial
// map: one container slot per dart, phi1/phi1inv permutation columns,
// optional phi2/phi3 involutions, and per-orbit embedding index
// columns layered on top.
package dart

import "math"

// Dart identifies a single dart by its slot in the owning Darts
// container. The zero value is not special; use NilDart for "no dart".
type Dart uint32

// NilDart is the sentinel for "no dart". An unsewn involution does not
// use it: an unglued dart is a fixed point of phi2/phi3 on itself.
const NilDart Dart = math.MaxUint32

// IsNil reports whether d is the sentinel.
func (d Dart) IsNil() bool { return d == NilDart }

func (d Dart) String() string {
	if d.IsNil() {
		return "<nil-dart>"
	}
	return "#" + itoa(uint32(d))
}

func itoa(v uint32) string {
	if v == 0 {
		return "0"
	}
	var buf [10]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}
