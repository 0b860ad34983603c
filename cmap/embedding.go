package cmap

import (
	"ngonmap/container"
	"ngonmap/dart"
)

// embedder is the interface the generic AttributeHandle functions need:
// satisfied by *Map1, and promoted automatically to *Map2 and *Map3
// through struct embedding.
type embedder interface {
	darts() *dart.Darts
	foreachDartOfOrbit(orbitName string, start dart.Dart, f func(dart.Dart))
	ensureEmbedding(orbitName string, dt dart.Dart) uint32
	embeddingSlot(orbitName string, dt dart.Dart) (uint32, bool)
	embeddingContainer(orbitName string) *container.ChunkArrayContainer
}

// embeddingContainer lazily creates the embedding container and its
// backing has/idx columns (stored directly on the dart container) the
// first time the given orbit is embedded.
func (m *Map1) embeddingContainer(orbitName string) *container.ChunkArrayContainer {
	if c, ok := m.embedContainers[orbitName]; ok {
		return c
	}
	c := container.NewContainer(m.Darts.Container.ChunkSize())
	hasCol, _ := m.Darts.Container.AddBoolAttribute("__has_embed_" + orbitName)
	idxCol, _ := container.AddAttribute[uint32](m.Darts.Container, "__embed_"+orbitName)
	m.embedContainers[orbitName] = c
	m.embedHas[orbitName] = hasCol
	m.embedIdx[orbitName] = idxCol
	return c
}

// embeddingSlot returns the cell slot embedded at dt for orbitName, or
// ok=false if that orbit has never been embedded, or dt's cell hasn't
// been assigned a slot yet.
func (m *Map1) embeddingSlot(orbitName string, dt dart.Dart) (uint32, bool) {
	hasCol, ok := m.embedHas[orbitName]
	if !ok || !hasCol.Get(uint32(dt)) {
		return 0, false
	}
	return m.embedIdx[orbitName].Get(uint32(dt)), true
}

// ensureEmbedding returns dt's cell slot for orbitName, allocating one
// and propagating it across the whole orbit if dt wasn't embedded yet.
func (m *Map1) ensureEmbedding(orbitName string, dt dart.Dart) uint32 {
	if slot, ok := m.embeddingSlot(orbitName, dt); ok {
		return slot
	}
	econt := m.embeddingContainer(orbitName)
	slot := econt.InsertLines(1)
	hasCol := m.embedHas[orbitName]
	idxCol := m.embedIdx[orbitName]
	m.foreachDartOfOrbit(orbitName, dt, func(od dart.Dart) {
		hasCol.SetTrue(uint32(od))
		idxCol.Set(uint32(od), slot)
	})
	return slot
}

// reconcileOrbit recomputes orbitName's cell membership after a
// topology mutation, given a set of darts known to touch every
// affected component. It preserves attribute data across the mutation
// by keeping, for each post-mutation component, the pre-mutation slot
// belonging to the component containing the globally smallest dart
// that referenced it:
//
//   - merge (several old slots collapse into one component): all but
//     the kept slot are freed from the embedding container.
//   - split (one old slot's darts spread across several components):
//     only the component owning the smallest referencing dart keeps
//     it; the others get a freshly allocated slot.
//
// Components that were never embedded are left unembedded; a later
// AddAttribute/AttributeHandle.Get call embeds them lazily.
func (m *Map1) reconcileOrbit(orbitName string, touchedDarts []dart.Dart) {
	hasCol, ok := m.embedHas[orbitName]
	if !ok {
		return
	}
	idxCol := m.embedIdx[orbitName]
	econt := m.embedContainers[orbitName]

	visited := make(map[dart.Dart]bool, len(touchedDarts)*2)
	var components [][]dart.Dart
	for _, d := range touchedDarts {
		if visited[d] {
			continue
		}
		comp := m.orbitDartsSlice(orbitName, d)
		for _, od := range comp {
			visited[od] = true
		}
		components = append(components, comp)
	}

	owner := make(map[uint32]int)
	ownerMinDart := make(map[uint32]dart.Dart)
	compOldSlots := make([]map[uint32]bool, len(components))
	for ci, comp := range components {
		old := make(map[uint32]bool)
		for _, d := range comp {
			if hasCol.Get(uint32(d)) {
				s := idxCol.Get(uint32(d))
				old[s] = true
				if cur, seen := ownerMinDart[s]; !seen || d < cur {
					ownerMinDart[s] = d
					owner[s] = ci
				}
			}
		}
		compOldSlots[ci] = old
	}

	for ci, comp := range components {
		var target uint32
		assigned := false
		for s := range compOldSlots[ci] {
			if owner[s] == ci && (!assigned || s < target) {
				target = s
				assigned = true
			}
		}
		if !assigned {
			if len(compOldSlots[ci]) == 0 {
				// This component never touched an embedded slot; leave it
				// unembedded rather than forcing an allocation.
				continue
			}
			target = econt.InsertLines(1)
		}
		for s := range compOldSlots[ci] {
			if s != target && owner[s] == ci {
				econt.RemoveLine(s)
			}
		}
		for _, d := range comp {
			hasCol.SetTrue(uint32(d))
			idxCol.Set(uint32(d), target)
		}
	}
}
