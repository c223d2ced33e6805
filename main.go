package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"planetsim/config"
	"planetsim/mesh"
	"planetsim/tectonics"
)

func main() {
	var (
		configPath = flag.String("config", "settings.json", "Path to settings file")
		plates     = flag.Int("plates", 0, "Number of tectonic plates (overrides settings)")
		resolution = flag.Int("resolution", 0, "Icosphere subdivision level (overrides settings)")
		seed       = flag.Int64("seed", 0, "Random seed (overrides settings)")
		port       = flag.Int("port", 0, "Server port (overrides settings)")
		meshKind   = flag.String("mesh", "ico", "Sphere mesh type (ico, uv)")
		steps      = flag.Int("steps", 0, "Run N headless steps and exit instead of serving")
		stepSize   = flag.Float64("dt", 0.1, "Time step for headless runs")
	)
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	settings, err := config.Load(*configPath)
	if err != nil {
		slog.Error("loading settings", "err", err)
		os.Exit(1)
	}
	if *plates > 0 {
		settings.Simulation.Planet.NumTectonicPlates = *plates
	}
	if *resolution > 0 {
		settings.Simulation.Planet.PlanetResolution = *resolution
	}
	if *seed != 0 {
		settings.Simulation.Seed = *seed
	}
	if *port > 0 {
		settings.Server.Port = *port
	}

	var planet *mesh.Mesh
	switch *meshKind {
	case "uv":
		level := settings.Simulation.Planet.PlanetResolution
		planet = mesh.NewUVSphere(level*8, level*16)
	default:
		planet = mesh.NewIcosphere(settings.Simulation.Planet.PlanetResolution)
	}

	fmt.Println("=== Plate Tectonics Planet Simulator ===")
	fmt.Printf("Plates requested: %d\n", settings.Simulation.Planet.NumTectonicPlates)
	fmt.Printf("Mesh: %s, %d vertices, %d triangles\n",
		*meshKind, planet.VertexCount(), planet.TriangleCount())
	fmt.Printf("Seed: %d\n", settings.Simulation.Seed)

	params := tectonics.DefaultParams()
	params.NumPlates = settings.Simulation.Planet.NumTectonicPlates
	params.Seed = settings.Simulation.Seed
	params.HotspotCount = settings.Simulation.HotspotCount

	lith := tectonics.NewLithosphere(params)
	if err := lith.CreatePlates(planet.Positions); err != nil {
		slog.Error("creating plates", "err", err)
		os.Exit(1)
	}

	for _, p := range lith.Plates() {
		fmt.Printf("Plate %d: %s, speed %.4f, rotation %.4f, %d vertices\n",
			p.ID, p.Type, p.Movement.Norm(), p.RotationRate, len(p.Vertices))
	}

	if *steps > 0 {
		runHeadless(lith, planet, *steps, *stepSize)
		return
	}

	server := newViewerServer(settings, lith, planet)
	if err := server.run(); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

// runHeadless advances the simulation a fixed number of steps and prints a
// summary, for profiling and quick experiments without a viewer.
func runHeadless(lith *tectonics.Lithosphere, planet *mesh.Mesh, steps int, dt float64) {
	stepper := tectonics.NewAdaptiveTimeStep()

	for i := 0; i < steps; i++ {
		step := stepper.NextStep(lith, dt)
		lith.Update(step, planet.Positions, planet.Indices)
	}

	convergent, divergent, transform := 0, 0, 0
	for _, b := range lith.Boundaries() {
		switch b.Type {
		case tectonics.Convergent:
			convergent++
		case tectonics.Divergent:
			divergent++
		case tectonics.Transform:
			transform++
		}
	}

	fmt.Printf("After %d steps (t=%.2f): %d boundaries (conv:%d div:%d trans:%d), peak stress %.4f\n",
		steps, lith.Time(), len(lith.Boundaries()),
		convergent, divergent, transform, tectonics.MaxBoundaryStress(lith))
	for _, p := range lith.Plates() {
		fmt.Printf("Plate %d: mass %.2f, %d vertices, %d boundaries\n",
			p.ID, p.TotalMass, len(p.Vertices), len(p.Boundaries))
	}
}
