// Package config loads the optional settings.json and carries the planet
// parameters from the host into the simulation core.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// PlanetParameters is the creation-time configuration of the simulation
// core: how many plates to request and how finely to mesh the sphere.
type PlanetParameters struct {
	NumTectonicPlates int `json:"numTectonicPlates"`
	PlanetResolution  int `json:"planetResolution"`
}

// Settings is the full host configuration.
type Settings struct {
	Simulation SimulationSettings `json:"simulation"`
	Server     ServerSettings     `json:"server"`
}

type SimulationSettings struct {
	Planet       PlanetParameters `json:"planet"`
	Seed         int64            `json:"seed"`
	TimeSpeed    float64          `json:"timeSpeed"`
	HotspotCount int              `json:"hotspotCount"`
}

type ServerSettings struct {
	Port             int `json:"port"`
	UpdateIntervalMs int `json:"updateIntervalMs"`
}

// Default returns the settings used when no file is present.
func Default() Settings {
	return Settings{
		Simulation: SimulationSettings{
			Planet: PlanetParameters{
				NumTectonicPlates: 8,
				PlanetResolution:  4,
			},
			Seed:         1,
			TimeSpeed:    1.0,
			HotspotCount: 0,
		},
		Server: ServerSettings{
			Port:             8080,
			UpdateIntervalMs: 100,
		},
	}
}

// Load reads settings from the given path, falling back to defaults when
// the file does not exist. A present-but-malformed file is an error.
func Load(path string) (Settings, error) {
	settings := Default()

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, err
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(&settings); err != nil {
		return settings, fmt.Errorf("parsing %s: %w", path, err)
	}
	return settings, nil
}
