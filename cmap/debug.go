package cmap

import (
	"fmt"

	"github.com/kr/pretty"

	"ngonmap/dart"
	"ngonmap/internal/diag"
)

// dartRow is a flattened, pretty-printable view of one dart's
// permutations, used by DumpTopology for ad-hoc debugging sessions.
type dartRow struct {
	Dart          dart.Dart
	Phi1, Phi1Inv dart.Dart
	Phi2, Phi3    dart.Dart
}

// DumpTopology prints every live dart's permutation values via
// kr/pretty when CMAP_DEBUG is set; it is a no-op otherwise so callers
// can sprinkle it through exploratory code without cluttering normal
// runs.
func DumpTopology(m *Map1) {
	if !diag.Enabled() {
		return
	}
	var rows []dartRow
	m.ForeachDart(func(d dart.Dart) {
		row := dartRow{Dart: d, Phi1: m.Phi1(d), Phi1Inv: m.Phi1Inv(d)}
		if m.Darts.Dimension() >= 2 {
			row.Phi2 = m.Darts.Phi2(d)
		}
		if m.Darts.Dimension() >= 3 {
			row.Phi3 = m.Darts.Phi3(d)
		}
		rows = append(rows, row)
	})
	fmt.Println(pretty.Sprint(rows))
}
