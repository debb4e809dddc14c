package climate

// fallbackClimates maps a climate to the climate whose materials are used
// when its own seasonal list is empty. Woodlands has no entry.
var fallbackClimates = map[Climate]Climate{
	Ocean:            Woodlands,
	Desert:           Woodlands,
	Mountain:         Woodlands,
	Rainforest:       Woodlands,
	MountainWoods:    Woodlands,
	HauntedWoodlands: Woodlands,
	Desert2:          Desert,
	Swamp:            Rainforest,
	Subtropical:      Desert,
}

// Fallback returns the substitute climate for c and whether one exists.
func Fallback(c Climate) (Climate, bool) {
	fb, ok := fallbackClimates[c]
	return fb, ok
}

// Resolution describes how a material list was chosen.
type Resolution struct {
	Requested   Climate
	Used        Climate
	Winter      bool
	FellBack    bool
	Definitions []MaterialDefinition
}

// Empty reports whether no material definitions were resolved.
func (r Resolution) Empty() bool {
	return len(r.Definitions) == 0
}

// Resolve returns the material definitions for the climate and season.
// An empty result means nothing applies.
func Resolve(settings *ClimateMaterialSettings, c Climate, isWinter bool) []MaterialDefinition {
	return ResolveEntry(settings, c, isWinter).Definitions
}

// ResolveEntry is Resolve with the selection trace. The fallback table is
// consulted at most once.
func ResolveEntry(settings *ClimateMaterialSettings, c Climate, isWinter bool) Resolution {
	res := Resolution{Requested: c, Used: c, Winter: isWinter}
	if !c.Known() {
		res.Used = Woodlands
	}
	if settings == nil {
		return res
	}

	entry := settings.Entry(res.Used)
	if len(entry.Seasonal(isWinter)) == 0 {
		if fb, ok := Fallback(res.Used); ok {
			entry = settings.Entry(fb)
			res.Used = fb
			res.FellBack = true
		}
	}

	res.Definitions = entry.Seasonal(isWinter)
	return res
}
