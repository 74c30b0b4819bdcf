package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"github.com/plus3/yaecs/ecs"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 10000, "The initial number of entities to create.")
	components := flag.Int("components", 5, "The maximum number of components per spawned entity (1-5).")
	spawnPerTick := flag.Int("spawn", 10, "The number of entities spawned every tick.")
	useMasks := flag.Bool("masks", false, "Filter system views with component bitmasks.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	profileMode := flag.String("profile", "", "Write a profile to the working directory: cpu or mem.")
	verbose := flag.Bool("v", false, "Log world events at debug level.")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Random seed.")
	flag.Parse()

	if *components < 1 || *components > 5 {
		log.Fatalf("invalid -components %d: must be between 1 and 5", *components)
	}

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		log.Fatalf("invalid -profile %q: must be cpu or mem", *profileMode)
	}

	log.Println("Starting ECS stress test...")

	// 1. Setup World and systems
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	opts := []ecs.Option{
		ecs.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))),
	}
	if *useMasks {
		opts = append(opts, ecs.WithMaskRegistry(NewMaskRegistry()))
	}
	world := ecs.NewWorld(opts...)
	ecs.AddGlobal(world, SimConfig{Bounds: 1000, SpawnPerRun: *spawnPerTick, Components: *components})
	ecs.AddGlobal(world, Tally{})

	rng := rand.New(rand.NewSource(*seed))
	RegisterSystems(world, rng)

	// 2. Populate the world with initial entities
	log.Printf("Populating world with %d entities...\n", *entityCount)
	for i := 0; i < *entityCount; i++ {
		world.AddEntity(RandomEntity(rng, *components))
	}
	log.Println("Population complete.")

	// 3. Run the simulation loop
	report := &Report{
		Duration:       *duration,
		Entities:       *entityCount,
		Components:     *components,
		Masks:          *useMasks,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			world.Update()
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	report.World = world.Stats()
	report.Tally, _ = ecs.GetGlobal[Tally](world)

	log.Println("Simulation finished.")

	// 4. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
