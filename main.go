package main

import (
	"log"

	"climatematerials/internal/climate"
	"climatematerials/internal/config"
	"climatematerials/internal/graphics"
	"climatematerials/internal/render"
	"climatematerials/internal/runtimematerials"
	"climatematerials/internal/world"
)

func main() {
	// Load configuration
	cfg := config.MustLoadConfig("config.yaml")

	state, err := world.LoadState(cfg.GetWorldStateFile())
	if err != nil {
		log.Printf("Warning: Failed to load world state: %v", err)
		state = world.NewState(climate.Woodlands, world.Clock{Month: 5})
	}
	log.Printf("World: %s, %s (%s)", state.CurrentClimate(), state.Clock, state.CurrentSeason())

	store := climate.NewStore(cfg.GetAssetsDir(), nil)
	reader := graphics.NewArchiveReader(cfg.GetArchivesDir(), nil)
	importer := graphics.NewReplacementImporter(cfg.GetReplacementsDir(), nil)

	if len(cfg.Objects) == 0 {
		log.Printf("Warning: No objects configured")
		return
	}

	applied := 0
	for _, name := range cfg.Objects {
		target := render.NewMeshRenderer(name)
		component := runtimematerials.New(name, runtimematerials.Dependencies{
			Settings: store,
			World:    state,
			Reader:   reader,
			Importer: importer,
			Target:   target,
		})
		result, err := component.Start()
		if err != nil {
			log.Printf("%s: %v", name, err)
			continue
		}
		applied++
		log.Printf("%s: %s", name, result)
		for i, m := range target.Materials() {
			log.Printf("  [%d] %s", i, m.Name())
		}
	}
	log.Printf("Applied materials to %d of %d objects", applied, len(cfg.Objects))
}
