package ecs

import (
	"sort"
	"strings"
)

// StorageStats summarizes what a storage holds.
type StorageStats struct {
	ArchetypeCount     int
	TotalEntityCount   int
	SingletonCount     int
	SingletonTypes     []string
	ArchetypeBreakdown []ArchetypeStats
}

type ArchetypeStats struct {
	ID             uint32
	ComponentTypes []string
	EntityCount    int
}

// Label joins the component type names of the archetype.
func (a ArchetypeStats) Label() string {
	return strings.Join(a.ComponentTypes, ", ")
}

func (s *Storage) CollectStats() StorageStats {
	stats := StorageStats{SingletonCount: s.singletons.Len()}

	for _, archetype := range s.Archetypes() {
		names := make([]string, len(archetype.types))
		for i, t := range archetype.types {
			names[i] = t.String()
		}
		count := archetype.Len()
		stats.ArchetypeBreakdown = append(stats.ArchetypeBreakdown, ArchetypeStats{
			ID:             archetype.id,
			ComponentTypes: names,
			EntityCount:    count,
		})
		stats.TotalEntityCount += count
	}
	stats.ArchetypeCount = len(stats.ArchetypeBreakdown)

	for _, entry := range s.singletons.All() {
		stats.SingletonTypes = append(stats.SingletonTypes, entry.typ.String())
	}
	sort.Strings(stats.SingletonTypes)
	return stats
}
