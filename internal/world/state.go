package world

import (
	"fmt"
	"os"

	"climatematerials/internal/climate"

	"gopkg.in/yaml.v3"
)

// StateProvider answers the world queries needed to pick seasonal materials.
type StateProvider interface {
	CurrentClimate() climate.Climate
	CurrentSeason() Season
}

// State is a fixed world position and date.
type State struct {
	Climate climate.Climate
	Clock   Clock
}

// stateFile is the on-disk shape of a world state document
type stateFile struct {
	Climate string `yaml:"climate"`
	Date    Clock  `yaml:"date"`
}

// NewState creates a world state at the given climate and date.
func NewState(c climate.Climate, clock Clock) *State {
	return &State{Climate: c, Clock: clock}
}

// LoadState reads a world state document from YAML.
func LoadState(filename string) (*State, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read world state file: %w", err)
	}

	var file stateFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse world state: %w", err)
	}

	c, err := climate.Parse(file.Climate)
	if err != nil {
		return nil, fmt.Errorf("invalid world state %s: %w", filename, err)
	}
	return NewState(c, file.Date), nil
}

func (s *State) CurrentClimate() climate.Climate {
	return s.Climate
}

func (s *State) CurrentSeason() Season {
	return s.Clock.Season()
}

// IsWinter reports whether the provider's current season is winter.
func IsWinter(p StateProvider) bool {
	return p.CurrentSeason() == SeasonWinter
}
