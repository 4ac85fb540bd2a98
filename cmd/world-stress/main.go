// Command world-stress exercises the world's index maintenance under heavy
// churn: randomized component sets, constant component/tag/activation
// mutation, and entity destruction/respawn, reported as tick-time statistics.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"

	"github.com/plus3/aftermath/component"
	"github.com/plus3/aftermath/ecs"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 10000, "The initial number of entities to create.")
	churn := flag.Int("churn", 200, "Entities mutated or recycled per tick.")
	profileMode := flag.String("profile", "", "Enable profiling: cpu or mem.")
	flag.Parse()

	switch *profileMode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath(".")).Stop()
	case "":
	default:
		log.Fatalf("unknown profile mode %q", *profileMode)
	}

	log.Println("Starting world stress test...")

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	world := ecs.NewWorld()
	world.RegisterSystem(newDriftSystem())
	world.RegisterSystem(newChurnSystem(rng, *churn))

	log.Printf("Populating world with %d entities...\n", *entityCount)
	for i := 0; i < *entityCount; i++ {
		spawnRandomEntity(world, rng)
	}
	log.Println("Population complete.")

	report := &Report{
		Duration: *duration,
		Entities: *entityCount,
		Churn:    *churn,
		TickTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	deadline := time.Now().Add(*duration)
	startTime := time.Now()
	lastFrameTime := time.Now()
	var totalTicks int64

	for time.Now().Before(deadline) {
		deltaTime := time.Since(lastFrameTime)
		lastFrameTime = time.Now()

		tickStart := time.Now()
		world.Tick(float64(deltaTime) / float64(time.Second))
		tickDuration := time.Since(tickStart)

		report.TickTime.Samples = append(report.TickTime.Samples, tickDuration)
		totalTicks++
	}

	report.TotalTime = time.Since(startTime)
	report.TotalTicks = totalTicks
	report.FinalEntities = world.EntityCount()
	report.TickTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	for _, sys := range world.Stats().Systems {
		log.Printf("system %s: avg=%s max=%s runs=%d", sys.Name, sys.AvgDuration, sys.MaxDuration, sys.ExecutionCount)
	}

	log.Println("Stress test complete.")
}

var stressTags = []ecs.Tag{"npc", "hostile", "loot", "structure", "marker"}

// spawnRandomEntity creates an entity with a Transform plus a random subset of
// the physics components and tags, occasionally inactive.
func spawnRandomEntity(world *ecs.World, rng *rand.Rand) *ecs.Entity {
	e := world.CreateEntity()
	mustAdd(e, component.NewTransform(rng.Float64()*1000, rng.Float64()*1000))

	if rng.Intn(2) == 0 {
		rb := component.NewRigidBody(1 + rng.Float64()*9)
		rb.Velocity.X = rng.Float64()*20 - 10
		rb.Velocity.Y = rng.Float64()*20 - 10
		mustAdd(e, rb)
	}
	if rng.Intn(3) == 0 {
		mustAdd(e, component.NewCollider(16, 16))
	}
	for _, tag := range stressTags {
		if rng.Intn(4) == 0 {
			e.AddTag(tag)
		}
	}
	if rng.Intn(10) == 0 {
		e.SetActive(false)
	}
	return e
}

func mustAdd(e *ecs.Entity, c ecs.Component) {
	if err := e.AddComponent(c); err != nil {
		log.Fatal(err)
	}
}
