package climate

import "fmt"

// MaterialDefinition references one texture in the host texture archives.
type MaterialDefinition struct {
	Archive int `json:"archive" yaml:"archive"`
	Record  int `json:"record" yaml:"record"`
	Frame   int `json:"frame" yaml:"frame"`
}

func (d MaterialDefinition) String() string {
	return fmt.Sprintf("(%d,%d,%d)", d.Archive, d.Record, d.Frame)
}

// ClimateMaterials holds the two seasonal material lists for one climate.
// Either list may be nil.
type ClimateMaterials struct {
	DefaultMaterials []MaterialDefinition `json:"defaultMaterials" yaml:"defaultMaterials"`
	WinterMaterials  []MaterialDefinition `json:"winterMaterials" yaml:"winterMaterials"`
}

// Seasonal returns the winter list when isWinter is set, otherwise the
// default list.
func (m ClimateMaterials) Seasonal(isWinter bool) []MaterialDefinition {
	if isWinter {
		return m.WinterMaterials
	}
	return m.DefaultMaterials
}

// Empty reports whether both seasonal lists are empty.
func (m ClimateMaterials) Empty() bool {
	return len(m.DefaultMaterials) == 0 && len(m.WinterMaterials) == 0
}

// ClimateMaterialSettings is the per-object material table. The zero value
// has every climate empty.
type ClimateMaterialSettings struct {
	Ocean            ClimateMaterials `json:"ocean" yaml:"ocean"`
	Desert           ClimateMaterials `json:"desert" yaml:"desert"`
	Desert2          ClimateMaterials `json:"desert2" yaml:"desert2"`
	Mountain         ClimateMaterials `json:"mountain" yaml:"mountain"`
	Rainforest       ClimateMaterials `json:"rainforest" yaml:"rainforest"`
	Swamp            ClimateMaterials `json:"swamp" yaml:"swamp"`
	Subtropical      ClimateMaterials `json:"subtropical" yaml:"subtropical"`
	MountainWoods    ClimateMaterials `json:"mountainWoods" yaml:"mountainWoods"`
	Woodlands        ClimateMaterials `json:"woodlands" yaml:"woodlands"`
	HauntedWoodlands ClimateMaterials `json:"hauntedWoodlands" yaml:"hauntedWoodlands"`
}

// Entry returns the materials configured for c. Unrecognized climates map to
// the woodlands entry.
func (s *ClimateMaterialSettings) Entry(c Climate) ClimateMaterials {
	switch c {
	case Ocean:
		return s.Ocean
	case Desert:
		return s.Desert
	case Desert2:
		return s.Desert2
	case Mountain:
		return s.Mountain
	case Rainforest:
		return s.Rainforest
	case Swamp:
		return s.Swamp
	case Subtropical:
		return s.Subtropical
	case MountainWoods:
		return s.MountainWoods
	case HauntedWoodlands:
		return s.HauntedWoodlands
	default:
		return s.Woodlands
	}
}

// field returns the storage for c, or nil for an unrecognized climate.
func (s *ClimateMaterialSettings) field(c Climate) *ClimateMaterials {
	switch c {
	case Ocean:
		return &s.Ocean
	case Desert:
		return &s.Desert
	case Desert2:
		return &s.Desert2
	case Mountain:
		return &s.Mountain
	case Rainforest:
		return &s.Rainforest
	case Swamp:
		return &s.Swamp
	case Subtropical:
		return &s.Subtropical
	case MountainWoods:
		return &s.MountainWoods
	case Woodlands:
		return &s.Woodlands
	case HauntedWoodlands:
		return &s.HauntedWoodlands
	}
	return nil
}

// IsEmpty reports whether no climate has any material configured.
func (s *ClimateMaterialSettings) IsEmpty() bool {
	for _, c := range All {
		if !s.Entry(c).Empty() {
			return false
		}
	}
	return true
}
