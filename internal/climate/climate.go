package climate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Climate identifies a world map climate region. Values match the climate
// indices reported by the host world map.
type Climate int

const (
	Ocean            Climate = 223
	Desert           Climate = 224
	Desert2          Climate = 225
	Mountain         Climate = 226
	Rainforest       Climate = 227
	Swamp            Climate = 228
	Subtropical      Climate = 229
	MountainWoods    Climate = 230
	Woodlands        Climate = 231
	HauntedWoodlands Climate = 232
)

// All lists every known climate in index order.
var All = []Climate{
	Ocean,
	Desert,
	Desert2,
	Mountain,
	Rainforest,
	Swamp,
	Subtropical,
	MountainWoods,
	Woodlands,
	HauntedWoodlands,
}

// climateKeys holds the document key used for each climate in settings files
var climateKeys = map[Climate]string{
	Ocean:            "ocean",
	Desert:           "desert",
	Desert2:          "desert2",
	Mountain:         "mountain",
	Rainforest:       "rainforest",
	Swamp:            "swamp",
	Subtropical:      "subtropical",
	MountainWoods:    "mountainWoods",
	Woodlands:        "woodlands",
	HauntedWoodlands: "hauntedWoodlands",
}

// Key returns the settings document key for the climate, or "" when the
// climate is not one of the known values.
func (c Climate) Key() string {
	return climateKeys[c]
}

// Known reports whether c is one of the ten recognized climates.
func (c Climate) Known() bool {
	_, ok := climateKeys[c]
	return ok
}

func (c Climate) String() string {
	if key, ok := climateKeys[c]; ok {
		return key
	}
	return fmt.Sprintf("climate(%d)", int(c))
}

// Keys returns the settings document keys in index order.
func Keys() []string {
	keys := make([]string, 0, len(All))
	for _, c := range All {
		keys = append(keys, climateKeys[c])
	}
	return keys
}

// Parse resolves a climate from its document key (case-insensitive) or its
// numeric index.
func Parse(s string) (Climate, error) {
	name := strings.TrimSpace(s)
	for _, c := range All {
		if strings.EqualFold(climateKeys[c], name) {
			return c, nil
		}
	}
	var idx int
	if _, err := fmt.Sscanf(name, "%d", &idx); err == nil && Climate(idx).Known() {
		return Climate(idx), nil
	}
	if suggestion := SuggestKey(name); suggestion != "" {
		return 0, fmt.Errorf("unknown climate %q (did you mean %q?)", s, suggestion)
	}
	return 0, fmt.Errorf("unknown climate %q", s)
}

// SuggestKey returns the closest climate key to s, or "" when nothing is
// close enough to be a likely typo.
func SuggestKey(s string) string {
	token := strings.ToLower(strings.TrimSpace(s))
	if token == "" {
		return ""
	}
	type scored struct {
		key  string
		dist int
	}
	var candidates []scored
	for _, key := range Keys() {
		dist := levenshtein.ComputeDistance(token, strings.ToLower(key))
		if dist > suggestLimit(len(key)) {
			continue
		}
		candidates = append(candidates, scored{key: key, dist: dist})
	}
	if len(candidates) == 0 {
		return ""
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].dist == candidates[j].dist {
			return candidates[i].key < candidates[j].key
		}
		return candidates[i].dist < candidates[j].dist
	})
	return candidates[0].key
}

func suggestLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
