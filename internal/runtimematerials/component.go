// Package runtimematerials applies climate and season dependent materials to
// a render target once, when its owning object starts.
package runtimematerials

import (
	"errors"
	"fmt"
	"log"

	"climatematerials/internal/climate"
	"climatematerials/internal/graphics"
	"climatematerials/internal/world"
)

var (
	// ErrNoDefinitions means no material list applies after fallback.
	ErrNoDefinitions = errors.New("no material definitions for the current climate and season")
	// ErrNoMaterials means material lookup produced nothing to apply.
	ErrNoMaterials = errors.New("no valid materials for the current climate and season")
	// ErrNoTarget means the component has no render target to update.
	ErrNoTarget = errors.New("no render target")
	// ErrNoWorld means the component has no world state to query.
	ErrNoWorld = errors.New("no world state")
)

// SettingsLoader returns the material settings for an object.
type SettingsLoader interface {
	Load(objectName string) climate.ClimateMaterialSettings
}

// MaterialReader is the primary material lookup. It returns nil on a miss.
type MaterialReader interface {
	GetMaterial(archive, record, frame int) *graphics.Material
}

// MaterialImporter is the secondary lookup tried after a reader miss.
type MaterialImporter interface {
	TryImportMaterial(archive, record, frame int) (*graphics.Material, bool)
}

// RenderTarget receives the final material array.
type RenderTarget interface {
	SetMaterials(materials []*graphics.Material)
}

// Dependencies wires a component to its collaborators. Importer and Logger
// are optional.
type Dependencies struct {
	Settings SettingsLoader
	World    world.StateProvider
	Reader   MaterialReader
	Importer MaterialImporter
	Target   RenderTarget
	Logger   *log.Logger
}

// Result reports what a Start call resolved and applied.
type Result struct {
	Season     world.Season
	Resolution climate.Resolution
	Materials  []*graphics.Material
	Missing    []climate.MaterialDefinition
	Applied    bool
}

// Component owns the material settings of one object.
type Component struct {
	name     string
	settings climate.ClimateMaterialSettings
	deps     Dependencies
	logger   *log.Logger
}

// New creates the component for an object and loads its settings.
func New(objectName string, deps Dependencies) *Component {
	logger := deps.Logger
	if logger == nil {
		logger = log.Default()
	}
	c := &Component{name: objectName, deps: deps, logger: logger}
	c.logger.Printf("[CustomRuntimeMaterials] Initializing %s", objectName)
	if deps.Settings != nil {
		c.settings = deps.Settings.Load(objectName)
	}
	return c
}

// Name returns the owning object's name.
func (c *Component) Name() string {
	return c.name
}

// Settings returns the settings loaded for the object.
func (c *Component) Settings() climate.ClimateMaterialSettings {
	return c.settings
}

// Start reads the current climate and season, resolves the material list and
// applies it to the render target. On error the target is left untouched.
func (c *Component) Start() (Result, error) {
	if c.deps.World == nil {
		c.logger.Printf("[CustomRuntimeMaterials] Error: %s: %v", c.name, ErrNoWorld)
		return Result{}, ErrNoWorld
	}

	season := c.deps.World.CurrentSeason()
	res := climate.ResolveEntry(&c.settings, c.deps.World.CurrentClimate(), season == world.SeasonWinter)
	result := Result{Season: season, Resolution: res}
	if res.FellBack {
		c.logger.Printf("[CustomRuntimeMaterials] %s: no %s materials for %s, using %s", c.name, season, res.Requested, res.Used)
	}

	if res.Empty() {
		c.logger.Printf("[CustomRuntimeMaterials] Error: %s: %v (%s, %s)", c.name, ErrNoDefinitions, res.Requested, season)
		return result, ErrNoDefinitions
	}

	result.Materials, result.Missing = c.LoadMaterials(res.Definitions)
	if len(result.Materials) == 0 {
		c.logger.Printf("[CustomRuntimeMaterials] Error: %s: %v", c.name, ErrNoMaterials)
		return result, ErrNoMaterials
	}
	if c.deps.Target == nil {
		c.logger.Printf("[CustomRuntimeMaterials] Error: %s: %v", c.name, ErrNoTarget)
		return result, ErrNoTarget
	}

	c.deps.Target.SetMaterials(result.Materials)
	result.Applied = true
	c.logger.Printf("[CustomRuntimeMaterials] %s: applied %d materials (%d missing)", c.name, len(result.Materials), len(result.Missing))
	return result, nil
}

// LoadMaterials looks up each definition, trying the reader first and the
// importer second. A definition neither can load leaves a nil entry at its
// position and is reported in missing.
func (c *Component) LoadMaterials(defs []climate.MaterialDefinition) (materials []*graphics.Material, missing []climate.MaterialDefinition) {
	if len(defs) == 0 {
		return nil, nil
	}
	materials = make([]*graphics.Material, 0, len(defs))
	for _, def := range defs {
		m := c.lookup(def)
		if m == nil {
			c.logger.Printf("Warning: Could not load material for archive: %d, record: %d, frame: %d", def.Archive, def.Record, def.Frame)
			missing = append(missing, def)
		}
		materials = append(materials, m)
	}
	return materials, missing
}

func (c *Component) lookup(def climate.MaterialDefinition) *graphics.Material {
	if c.deps.Reader != nil {
		if m := c.deps.Reader.GetMaterial(def.Archive, def.Record, def.Frame); m != nil {
			return m
		}
	}
	if c.deps.Importer != nil {
		if m, ok := c.deps.Importer.TryImportMaterial(def.Archive, def.Record, def.Frame); ok && m != nil {
			return m
		}
	}
	return nil
}

func (r Result) String() string {
	status := "not applied"
	if r.Applied {
		status = "applied"
	}
	return fmt.Sprintf("%s/%s -> %s: %d materials, %d missing, %s",
		r.Resolution.Requested, r.Season, r.Resolution.Used, len(r.Materials), len(r.Missing), status)
}
