package climate

import (
	"reflect"
	"testing"
)

func defs(triples ...[3]int) []MaterialDefinition {
	out := make([]MaterialDefinition, 0, len(triples))
	for _, t := range triples {
		out = append(out, MaterialDefinition{Archive: t[0], Record: t[1], Frame: t[2]})
	}
	return out
}

func TestResolveAllClimatesTerminate(t *testing.T) {
	var empty ClimateMaterialSettings
	climates := append(append([]Climate{}, All...), Climate(0), Climate(999))
	for _, c := range climates {
		for _, winter := range []bool{false, true} {
			if got := Resolve(&empty, c, winter); len(got) != 0 {
				t.Errorf("Resolve(empty, %v, %v) = %v, want empty", c, winter, got)
			}
		}
	}
}

func TestResolvePrimaryList(t *testing.T) {
	settings := ClimateMaterialSettings{
		Swamp: ClimateMaterials{
			DefaultMaterials: defs([3]int{302, 1, 0}, [3]int{302, 2, 0}),
			WinterMaterials:  defs([3]int{303, 1, 0}),
		},
		Rainforest: ClimateMaterials{DefaultMaterials: defs([3]int{500, 0, 0})},
	}

	if got, want := Resolve(&settings, Swamp, false), defs([3]int{302, 1, 0}, [3]int{302, 2, 0}); !reflect.DeepEqual(got, want) {
		t.Errorf("default season: got %v, want %v", got, want)
	}
	if got, want := Resolve(&settings, Swamp, true), defs([3]int{303, 1, 0}); !reflect.DeepEqual(got, want) {
		t.Errorf("winter: got %v, want %v", got, want)
	}
}

func TestResolveFallbackTable(t *testing.T) {
	want := map[Climate]Climate{
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
	for c, fb := range want {
		got, ok := Fallback(c)
		if !ok || got != fb {
			t.Errorf("Fallback(%v) = %v, %v; want %v", c, got, ok, fb)
		}
	}
	if _, ok := Fallback(Woodlands); ok {
		t.Errorf("woodlands must not have a fallback")
	}
}

func TestResolveOceanMatchesWoodlands(t *testing.T) {
	settings := ClimateMaterialSettings{
		Woodlands: ClimateMaterials{DefaultMaterials: defs([3]int{10, 0, 0}, [3]int{10, 1, 0})},
	}
	ocean := Resolve(&settings, Ocean, false)
	woodlands := Resolve(&settings, Woodlands, false)
	if !reflect.DeepEqual(ocean, woodlands) {
		t.Errorf("ocean fallback %v != woodlands %v", ocean, woodlands)
	}
}

func TestResolveDesert2FallsBackToDesert(t *testing.T) {
	settings := ClimateMaterialSettings{
		Desert: ClimateMaterials{DefaultMaterials: defs([3]int{1, 2, 0})},
	}
	got := Resolve(&settings, Desert2, false)
	if want := defs([3]int{1, 2, 0}); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestResolveMountainFallsBackToWoodlands(t *testing.T) {
	settings := ClimateMaterialSettings{
		Woodlands: ClimateMaterials{DefaultMaterials: defs([3]int{10, 0, 0})},
	}
	res := ResolveEntry(&settings, Mountain, false)
	if want := defs([3]int{10, 0, 0}); !reflect.DeepEqual(res.Definitions, want) {
		t.Fatalf("got %v, want %v", res.Definitions, want)
	}
	if !res.FellBack || res.Used != Woodlands || res.Requested != Mountain {
		t.Errorf("unexpected trace %+v", res)
	}
}

func TestResolveFallbackIsSingleHop(t *testing.T) {
	// subtropical -> desert, and desert itself would fall back to woodlands
	settings := ClimateMaterialSettings{
		Woodlands: ClimateMaterials{DefaultMaterials: defs([3]int{10, 0, 0})},
	}
	if got := Resolve(&settings, Subtropical, false); len(got) != 0 {
		t.Errorf("expected empty result without a second hop, got %v", got)
	}
	// swamp -> rainforest, not further to woodlands
	if got := Resolve(&settings, Swamp, false); len(got) != 0 {
		t.Errorf("expected empty result for swamp, got %v", got)
	}
}

func TestResolveFallbackKeepsSeason(t *testing.T) {
	settings := ClimateMaterialSettings{
		Ocean:     ClimateMaterials{DefaultMaterials: defs([3]int{1, 0, 0})},
		Woodlands: ClimateMaterials{
			DefaultMaterials: defs([3]int{10, 0, 0}),
			WinterMaterials:  defs([3]int{11, 0, 0}),
		},
	}
	// ocean has a default list but no winter list, so winter falls back
	// to woodlands and picks its winter list
	if got, want := Resolve(&settings, Ocean, true), defs([3]int{11, 0, 0}); !reflect.DeepEqual(got, want) {
		t.Errorf("winter: got %v, want %v", got, want)
	}
	if got, want := Resolve(&settings, Ocean, false), defs([3]int{1, 0, 0}); !reflect.DeepEqual(got, want) {
		t.Errorf("default: got %v, want %v", got, want)
	}
}

func TestResolveFallbackSeasonEmpty(t *testing.T) {
	settings := ClimateMaterialSettings{
		Woodlands: ClimateMaterials{DefaultMaterials: defs([3]int{10, 0, 0})},
	}
	if got := Resolve(&settings, Ocean, true); len(got) != 0 {
		t.Errorf("woodlands has no winter list, got %v", got)
	}
}

func TestResolveUnknownClimateUsesWoodlands(t *testing.T) {
	settings := ClimateMaterialSettings{
		Woodlands: ClimateMaterials{WinterMaterials: defs([3]int{7, 7, 7})},
	}
	res := ResolveEntry(&settings, Climate(42), true)
	if res.Used != Woodlands || res.FellBack {
		t.Errorf("unexpected trace %+v", res)
	}
	if want := defs([3]int{7, 7, 7}); !reflect.DeepEqual(res.Definitions, want) {
		t.Errorf("got %v, want %v", res.Definitions, want)
	}
}

func TestResolveNilSettings(t *testing.T) {
	res := ResolveEntry(nil, Ocean, false)
	if !res.Empty() {
		t.Errorf("expected empty resolution, got %+v", res)
	}
}
