package ecs_test

import (
	"reflect"
	"testing"

	"github.com/plus3/coinfall/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStorage() *ecs.Storage {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	ecs.RegisterComponent[Health](registry)
	ecs.RegisterComponent[Label](registry)
	return ecs.NewStorage(registry)
}

func TestEntityId(t *testing.T) {
	id := ecs.NewEntityId(0xDEADBEEF, 42)
	assert.Equal(t, uint32(0xDEADBEEF), id.ArchetypeId())
	assert.Equal(t, uint32(42), id.Index())
}

func TestStorageSpawn(t *testing.T) {
	storage := newStorage()

	a := storage.Spawn(Position{X: 1, Y: 2}, Velocity{DX: 3})
	b := storage.Spawn(&Velocity{DX: 5}, Position{X: 4})
	c := storage.Spawn(Position{X: 9})

	assert.Equal(t, a.ArchetypeId(), b.ArchetypeId(), "component order does not change the archetype")
	assert.NotEqual(t, a.ArchetypeId(), c.ArchetypeId())
	assert.Equal(t, uint32(0), a.Index())
	assert.Equal(t, uint32(1), b.Index())
	assert.Equal(t, 3, storage.Len())

	pos := ecs.ReadComponent[Position](storage, b)
	require.NotNil(t, pos)
	assert.Equal(t, 4.0, pos.X)
	assert.Equal(t, 5.0, ecs.ReadComponent[Velocity](storage, b).DX)
	assert.Nil(t, ecs.ReadComponent[Velocity](storage, c))
	assert.Nil(t, ecs.ReadComponent[Health](storage, ecs.NewEntityId(7, 7)))

	pos.X = 40
	assert.Equal(t, 40.0, ecs.ReadComponent[Position](storage, b).X, "components are returned by pointer")
}

func TestStorageSpawnPanics(t *testing.T) {
	tests := []struct {
		name       string
		components []any
	}{
		{"no components", nil},
		{"unregistered", []any{3.5}},
		{"duplicate type", []any{Position{}, Position{}}},
		{"map", []any{map[string]int{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Panics(t, func() { newStorage().Spawn(tt.components...) })
		})
	}
}

func TestStorageDeleteReusesSlot(t *testing.T) {
	storage := newStorage()
	a := storage.Spawn(Position{X: 1})
	b := storage.Spawn(Position{X: 2})

	storage.Delete(a)
	storage.Delete(a)
	storage.Delete(ecs.NewEntityId(99, 0))

	assert.Equal(t, 1, storage.Len())
	assert.Nil(t, storage.Component(a, reflect.TypeFor[Position]()))
	assert.Equal(t, 2.0, ecs.ReadComponent[Position](storage, b).X)

	c := storage.Spawn(Position{X: 3})
	assert.Equal(t, a, c)
	assert.Equal(t, 3.0, ecs.ReadComponent[Position](storage, c).X)
}

func TestComponentAddressesSurviveGrowth(t *testing.T) {
	storage := newStorage()
	first := storage.Spawn(Position{X: 1})
	ptr := ecs.ReadComponent[Position](storage, first)

	for i := range 500 {
		storage.Spawn(Position{X: float64(i)})
	}

	ptr.X = 77
	assert.Equal(t, 77.0, ecs.ReadComponent[Position](storage, first).X)
}

func TestArchetypes(t *testing.T) {
	storage := newStorage()
	id := storage.Spawn(Health{Current: 1, Max: 3}, Label("slime"))
	storage.Spawn(Health{Current: 2, Max: 3}, Label("bat"))
	storage.Spawn(Position{})

	archetypes := storage.Archetypes()
	require.Len(t, archetypes, 2)
	assert.Less(t, archetypes[0].ID(), archetypes[1].ID())

	archetype := storage.Archetype(id)
	require.NotNil(t, archetype)
	assert.Equal(t, []reflect.Type{reflect.TypeFor[Health](), reflect.TypeFor[Label]()}, archetype.Types())
	assert.True(t, archetype.HasComponent(reflect.TypeFor[Label]()))
	assert.False(t, archetype.HasComponent(reflect.TypeFor[Position]()))
	assert.Equal(t, 2, archetype.Len())

	var ids []ecs.EntityId
	for e := range archetype.Iter() {
		ids = append(ids, e)
	}
	assert.Equal(t, []ecs.EntityId{id, ecs.NewEntityId(archetype.ID(), 1)}, ids)
}

func TestCollectStats(t *testing.T) {
	storage := newStorage()

	stats := storage.CollectStats()
	assert.Zero(t, stats.ArchetypeCount)
	assert.Zero(t, stats.TotalEntityCount)
	assert.Zero(t, stats.SingletonCount)

	storage.Spawn(Position{}, Velocity{})
	storage.Spawn(Position{}, Velocity{})
	storage.Spawn(Health{}, Label("x"))
	ecs.NewSingleton(storage, Health{Max: 10})
	ecs.NewSingleton(storage, Label("world"))

	stats = storage.CollectStats()
	assert.Equal(t, 2, stats.ArchetypeCount)
	assert.Equal(t, 3, stats.TotalEntityCount)
	assert.Equal(t, 2, stats.SingletonCount)
	assert.Equal(t, []string{"ecs_test.Health", "ecs_test.Label"}, stats.SingletonTypes)

	counts := map[string]int{}
	for _, a := range stats.ArchetypeBreakdown {
		counts[a.Label()] = a.EntityCount
	}
	assert.Equal(t, map[string]int{
		"ecs_test.Position, ecs_test.Velocity": 2,
		"ecs_test.Health, ecs_test.Label":      1,
	}, counts)
}
