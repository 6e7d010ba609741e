package spawners

import (
	"math/rand/v2"

	"ebiten-pathsim/data"
)

// SpawnTable picks template IDs with probability proportional to weight
type SpawnTable struct {
	Entries     []SpawnTableEntry
	totalWeight int
}

// SpawnTableEntry represents a single entry in a spawn table
type SpawnTableEntry struct {
	TemplateID string
	Weight     int
}

// NewSpawnTable creates a spawn table. Entries with a weight of zero or less
// are never picked.
func NewSpawnTable(entries []SpawnTableEntry) *SpawnTable {
	t := &SpawnTable{}
	for _, entry := range entries {
		if entry.Weight <= 0 {
			continue
		}
		t.Entries = append(t.Entries, entry)
		t.totalWeight += entry.Weight
	}
	return t
}

// NewSpawnTableFromTemplates builds a table from every loaded template's
// spawn weight, in ID order so a seeded run is reproducible
func NewSpawnTableFromTemplates(m *data.EntityTemplateManager) *SpawnTable {
	var entries []SpawnTableEntry
	for _, id := range m.IDs() {
		tmpl, _ := m.GetTemplate(id)
		entries = append(entries, SpawnTableEntry{TemplateID: id, Weight: tmpl.SpawnWeight})
	}
	return NewSpawnTable(entries)
}

// Pick rolls one template ID. It returns false for an empty table.
func (t *SpawnTable) Pick(rng *rand.Rand) (string, bool) {
	if t.totalWeight == 0 {
		return "", false
	}

	roll := rng.IntN(t.totalWeight)
	for _, entry := range t.Entries {
		if roll < entry.Weight {
			return entry.TemplateID, true
		}
		roll -= entry.Weight
	}

	// Unreachable while totalWeight matches the entries
	return t.Entries[len(t.Entries)-1].TemplateID, true
}

// Len returns the number of pickable entries
func (t *SpawnTable) Len() int {
	return len(t.Entries)
}
