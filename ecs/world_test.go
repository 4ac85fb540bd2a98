package ecs_test

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/aftermath/ecs"
)

func TestCreateEntity(t *testing.T) {
	world := ecs.NewWorld()

	e1 := world.CreateEntity()
	e2 := world.CreateEntity()

	assert.NotEqual(t, e1.ID(), e2.ID())
	assert.True(t, e1.Active())
	assert.Equal(t, 2, world.EntityCount())

	found, ok := world.Entity(e1.ID())
	require.True(t, ok)
	assert.Same(t, e1, found)
}

func TestCreateEntityWithID(t *testing.T) {
	world := ecs.NewWorld()

	e, err := world.CreateEntityWithID(42)
	require.NoError(t, err)
	assert.Equal(t, ecs.EntityID(42), e.ID())

	_, err = world.CreateEntityWithID(42)
	var dup *ecs.DuplicateIDError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, ecs.EntityID(42), dup.ID)

	// The generator must skip past supplied IDs.
	next := world.CreateEntity()
	assert.Greater(t, next.ID(), ecs.EntityID(42))
}

func TestIDsNeverReused(t *testing.T) {
	world := ecs.NewWorld()

	seen := make(map[ecs.EntityID]bool)
	for i := 0; i < 100; i++ {
		e := world.CreateEntity()
		assert.False(t, seen[e.ID()])
		seen[e.ID()] = true
		e.Destroy()
	}
}

func TestQuery(t *testing.T) {
	world := ecs.NewWorld()

	both := world.CreateEntity()
	require.NoError(t, both.AddComponent(&Position{}))
	require.NoError(t, both.AddComponent(&Velocity{}))

	posOnly := world.CreateEntity()
	require.NoError(t, posOnly.AddComponent(&Position{}))

	velOnly := world.CreateEntity()
	require.NoError(t, velOnly.AddComponent(&Velocity{}))

	assert.ElementsMatch(t, []*ecs.Entity{both, posOnly}, world.Query(ecs.TypeOf[Position]()))
	assert.ElementsMatch(t, []*ecs.Entity{both}, world.Query(ecs.TypeOf[Position](), ecs.TypeOf[Velocity]()))
	assert.Empty(t, world.Query(ecs.TypeOf[Health]()))
	assert.Empty(t, world.Query(ecs.TypeOf[Position](), ecs.TypeOf[Health]()))
	assert.Empty(t, world.Query())
}

func TestQuerySortedByID(t *testing.T) {
	world := ecs.NewWorld()
	for i := 0; i < 20; i++ {
		e := world.CreateEntity()
		require.NoError(t, e.AddComponent(&Position{}))
	}

	matched := world.Query(ecs.TypeOf[Position]())
	require.Len(t, matched, 20)
	for i := 1; i < len(matched); i++ {
		assert.Less(t, matched[i-1].ID(), matched[i].ID())
	}
}

func TestQueryActivationFilter(t *testing.T) {
	world := ecs.NewWorld()

	e := world.CreateEntity()
	require.NoError(t, e.AddComponent(&Position{}))

	e.SetActive(false)
	assert.Empty(t, world.Query(ecs.TypeOf[Position]()))
	assert.ElementsMatch(t, []*ecs.Entity{e}, world.QueryAll(ecs.TypeOf[Position]()))

	// Reactivation is visible starting from the next query.
	e.SetActive(true)
	assert.ElementsMatch(t, []*ecs.Entity{e}, world.Query(ecs.TypeOf[Position]()))
}

func TestQueryTag(t *testing.T) {
	world := ecs.NewWorld()

	a := world.CreateEntity()
	a.AddTag("enemy")
	b := world.CreateEntity()
	b.AddTag("enemy").AddTag("boss")
	world.CreateEntity().AddTag("npc")

	assert.ElementsMatch(t, []*ecs.Entity{a, b}, world.QueryTag("enemy"))
	assert.ElementsMatch(t, []*ecs.Entity{b}, world.QueryTag("boss"))
	assert.Empty(t, world.QueryTag("loot"))

	b.SetActive(false)
	assert.ElementsMatch(t, []*ecs.Entity{a}, world.QueryTag("enemy"))
}

// orderedSystem records the order systems run in, shared across instances.
type orderedSystem struct {
	name  string
	order *[]string
}

func (s *orderedSystem) RequiredComponents() []reflect.Type { return nil }

func (s *orderedSystem) Update(dt float64, entities []*ecs.Entity) {
	*s.order = append(*s.order, s.name)
}

func TestTickRegistrationOrder(t *testing.T) {
	world := ecs.NewWorld()

	var order []string
	world.RegisterSystem(&orderedSystem{name: "first", order: &order})
	world.RegisterSystem(&orderedSystem{name: "second", order: &order})
	world.RegisterSystem(&orderedSystem{name: "third", order: &order})

	world.Tick(0.016)
	world.Tick(0.016)

	assert.Equal(t, []string{
		"first", "second", "third",
		"first", "second", "third",
	}, order)
}

// componentAdder attaches a Velocity to every Position entity it sees.
type componentAdder struct{}

func (componentAdder) RequiredComponents() []reflect.Type {
	return []reflect.Type{ecs.TypeOf[Position]()}
}

func (componentAdder) Update(dt float64, entities []*ecs.Entity) {
	for _, e := range entities {
		if !e.HasComponent(ecs.TypeOf[Velocity]()) {
			_ = e.AddComponent(&Velocity{DX: 1})
		}
	}
}

// matchCounter records how many entities matched on each tick.
type matchCounter struct {
	required []reflect.Type
	counts   []int
}

func (s *matchCounter) RequiredComponents() []reflect.Type { return s.required }

func (s *matchCounter) Update(dt float64, entities []*ecs.Entity) {
	s.counts = append(s.counts, len(entities))
}

func TestTickMutationVisibleToLaterSystems(t *testing.T) {
	world := ecs.NewWorld()

	adder := componentAdder{}
	counter := &matchCounter{required: []reflect.Type{ecs.TypeOf[Velocity]()}}
	world.RegisterSystem(adder)
	world.RegisterSystem(counter)

	e := world.CreateEntity()
	require.NoError(t, e.AddComponent(&Position{}))

	// The adder runs first, so the counter sees the new Velocity on the
	// very same tick.
	world.Tick(0.016)
	assert.Equal(t, []int{1}, counter.counts)
}

// destroyer destroys everything it matches.
type destroyer struct{}

func (destroyer) RequiredComponents() []reflect.Type {
	return []reflect.Type{ecs.TypeOf[Health]()}
}

func (destroyer) Update(dt float64, entities []*ecs.Entity) {
	for _, e := range entities {
		e.Destroy()
	}
}

func TestTickDestroyVisibleToLaterSystems(t *testing.T) {
	world := ecs.NewWorld()

	counter := &matchCounter{required: []reflect.Type{ecs.TypeOf[Health]()}}
	world.RegisterSystem(destroyer{})
	world.RegisterSystem(counter)

	e := world.CreateEntity()
	require.NoError(t, e.AddComponent(&Health{Current: 10}))

	world.Tick(0.016)
	assert.Equal(t, []int{0}, counter.counts)
	assert.Equal(t, 0, world.EntityCount())
}

// initRecorder remembers the world it was registered on.
type initRecorder struct {
	world *ecs.World
}

func (s *initRecorder) Init(w *ecs.World)                  { s.world = w }
func (s *initRecorder) RequiredComponents() []reflect.Type { return nil }
func (s *initRecorder) Update(dt float64, e []*ecs.Entity) {}

func TestRegisterSystemInit(t *testing.T) {
	world := ecs.NewWorld()
	rec := &initRecorder{}
	world.RegisterSystem(rec)
	assert.Same(t, world, rec.world)
	assert.Equal(t, 1, world.SystemCount())
}

func TestStats(t *testing.T) {
	world := ecs.NewWorld()
	world.RegisterSystem(&matchCounter{required: []reflect.Type{ecs.TypeOf[Position]()}})

	e := world.CreateEntity()
	require.NoError(t, e.AddComponent(&Position{}))
	e.AddTag("enemy")
	world.CreateEntity().SetActive(false)

	world.Tick(0.016)
	world.Tick(0.016)

	stats := world.Stats()
	assert.Equal(t, 2, stats.EntityCount)
	assert.Equal(t, 1, stats.ActiveEntityCount)
	assert.Equal(t, 1, stats.ComponentTypeCount)
	assert.Equal(t, 1, stats.TagCount)
	assert.Equal(t, 1, stats.SystemCount)
	assert.Equal(t, int64(2), stats.TickCount)

	require.Len(t, stats.Systems, 1)
	sys := stats.Systems[0]
	assert.Equal(t, "matchCounter", sys.Name)
	assert.Equal(t, int64(2), sys.ExecutionCount)
	assert.GreaterOrEqual(t, sys.MaxDuration, sys.MinDuration)
}

func TestRunUntilCancelled(t *testing.T) {
	world := ecs.NewWorld()
	counter := &matchCounter{required: []reflect.Type{ecs.TypeOf[Position]()}}
	world.RegisterSystem(counter)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	world.Run(ctx, time.Millisecond)

	assert.NotEmpty(t, counter.counts)
}

func TestEntities(t *testing.T) {
	world := ecs.NewWorld()
	e1 := world.CreateEntity()
	e2 := world.CreateEntity()
	e3 := world.CreateEntity()
	e2.Destroy()

	entities := world.Entities()
	require.Len(t, entities, 2)
	assert.Same(t, e1, entities[0])
	assert.Same(t, e3, entities[1])
}
