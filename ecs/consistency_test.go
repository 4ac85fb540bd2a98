package ecs_test

import (
	"fmt"
	"math/rand"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/aftermath/ecs"
)

// TestIndexConsistencyRandomized drives the world through randomized
// attach/detach/tag/activate/destroy sequences and checks every query result
// against a naive full scan over the surviving entities.
func TestIndexConsistencyRandomized(t *testing.T) {
	componentTypes := []reflect.Type{
		ecs.TypeOf[Position](),
		ecs.TypeOf[Velocity](),
		ecs.TypeOf[Health](),
		ecs.TypeOf[Name](),
	}
	factories := map[reflect.Type]func() ecs.Component{
		ecs.TypeOf[Position](): func() ecs.Component { return &Position{} },
		ecs.TypeOf[Velocity](): func() ecs.Component { return &Velocity{} },
		ecs.TypeOf[Health]():   func() ecs.Component { return &Health{} },
		ecs.TypeOf[Name]():     func() ecs.Component { return &Name{} },
	}
	tags := []ecs.Tag{"alpha", "beta", "gamma"}

	for seed := int64(0); seed < 4; seed++ {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			rng := rand.New(rand.NewSource(seed))
			world := ecs.NewWorld()
			var live []*ecs.Entity

			for op := 0; op < 3000; op++ {
				switch {
				case len(live) == 0 || rng.Intn(10) == 0:
					live = append(live, world.CreateEntity())
				case rng.Intn(20) == 0:
					i := rng.Intn(len(live))
					live[i].Destroy()
					live = append(live[:i], live[i+1:]...)
				default:
					e := live[rng.Intn(len(live))]
					ct := componentTypes[rng.Intn(len(componentTypes))]
					switch rng.Intn(4) {
					case 0:
						if !e.HasComponent(ct) {
							require.NoError(t, e.AddComponent(factories[ct]()))
						}
					case 1:
						e.RemoveComponent(ct)
					case 2:
						tag := tags[rng.Intn(len(tags))]
						if e.HasTag(tag) {
							e.RemoveTag(tag)
						} else {
							e.AddTag(tag)
						}
					case 3:
						e.SetActive(!e.Active())
					}
				}

				if op%250 == 0 {
					checkAgainstFullScan(t, world, live, componentTypes, tags)
				}
			}
			checkAgainstFullScan(t, world, live, componentTypes, tags)
		})
	}
}

func checkAgainstFullScan(t *testing.T, world *ecs.World, live []*ecs.Entity, componentTypes []reflect.Type, tags []ecs.Tag) {
	t.Helper()

	// Single-type and pair queries against the reference scan.
	for i, ct := range componentTypes {
		expected := scanIDs(live, func(e *ecs.Entity) bool {
			return e.Active() && e.HasComponent(ct)
		})
		assert.Equal(t, expected, queryIDs(world.Query(ct)))

		other := componentTypes[(i+1)%len(componentTypes)]
		expectedPair := scanIDs(live, func(e *ecs.Entity) bool {
			return e.Active() && e.HasComponents(ct, other)
		})
		assert.Equal(t, expectedPair, queryIDs(world.Query(ct, other)))

		expectedAll := scanIDs(live, func(e *ecs.Entity) bool {
			return e.HasComponent(ct)
		})
		assert.Equal(t, expectedAll, queryIDs(world.QueryAll(ct)))
	}

	for _, tag := range tags {
		expected := scanIDs(live, func(e *ecs.Entity) bool {
			return e.Active() && e.HasTag(tag)
		})
		assert.Equal(t, expected, queryIDs(world.QueryTag(tag)))
	}

	assert.Equal(t, len(live), world.EntityCount())
}

func scanIDs(live []*ecs.Entity, match func(*ecs.Entity) bool) []ecs.EntityID {
	ids := []ecs.EntityID{}
	for _, e := range live {
		if match(e) {
			ids = append(ids, e.ID())
		}
	}
	// The live slice is in creation order, which is ID order.
	return ids
}

func queryIDs(entities []*ecs.Entity) []ecs.EntityID {
	ids := []ecs.EntityID{}
	for _, e := range entities {
		ids = append(ids, e.ID())
	}
	return ids
}
