package main

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"climatematerials/internal/climate"
	"climatematerials/internal/config"
	"climatematerials/internal/graphics"
	"climatematerials/internal/render"
	"climatematerials/internal/runtimematerials"
	"climatematerials/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebitext "github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	summerMonth = 5
	winterMonth = 11
)

type objectView struct {
	Name      string
	Component *runtimematerials.Component
	Renderer  *render.MeshRenderer
	Result    runtimematerials.Result
	Err       error
}

type viewer struct {
	cfg          *config.Config
	objects      []*objectView
	objectIndex  int
	climateIndex int
	state        *world.State
	sidebarTab   int
	legendLines  []string
}

const (
	tabInfo = iota
	tabLegend
)

func main() {
	ensureRuntimeCWD()

	cfg := config.MustLoadConfig("config.yaml")

	state, err := world.LoadState(cfg.GetWorldStateFile())
	if err != nil {
		log.Printf("Warning: Failed to load world state: %v", err)
		state = world.NewState(climate.Woodlands, world.Clock{Month: summerMonth})
	}

	store := climate.NewStore(cfg.GetAssetsDir(), nil)
	reader := graphics.NewArchiveReader(cfg.GetArchivesDir(), nil)
	importer := graphics.NewReplacementImporter(cfg.GetReplacementsDir(), nil)

	v := &viewer{
		cfg:         cfg,
		state:       state,
		sidebarTab:  tabInfo,
		legendLines: buildLegendLines(),
	}
	for i, c := range climate.All {
		if c == state.CurrentClimate() {
			v.climateIndex = i
		}
	}
	for _, name := range objectNames(cfg, store) {
		r := render.NewMeshRenderer(name)
		v.objects = append(v.objects, &objectView{
			Name:     name,
			Renderer: r,
			Component: runtimematerials.New(name, runtimematerials.Dependencies{
				Settings: store,
				World:    state,
				Reader:   reader,
				Importer: importer,
				Target:   r,
			}),
		})
	}
	v.refresh()

	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.GetWindowTitle())
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}

// objectNames merges the configured objects with every settings document
// found in the store directory.
func objectNames(cfg *config.Config, store *climate.Store) []string {
	seen := make(map[string]bool)
	var names []string
	for _, name := range cfg.Objects {
		key := climate.ObjectKey(name)
		if !seen[key] {
			seen[key] = true
			names = append(names, name)
		}
	}

	entries, err := os.ReadDir(store.Dir())
	if err != nil {
		log.Printf("Warning: Failed to list %s: %v", store.Dir(), err)
		return names
	}
	var found []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".json" && ext != ".yaml" && ext != ".yml" {
			continue
		}
		key := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if !seen[key] {
			seen[key] = true
			found = append(found, key)
		}
	}
	sort.Strings(found)
	return append(names, found...)
}

// refresh re-runs the selected object's component against the current
// world state.
func (v *viewer) refresh() {
	if len(v.objects) == 0 {
		return
	}
	o := v.objects[v.objectIndex]
	o.Result, o.Err = o.Component.Start()
}

func (v *viewer) setWinter(winter bool) {
	if winter {
		v.state.Clock.Month = winterMonth
	} else {
		v.state.Clock.Month = summerMonth
	}
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if v.sidebarTab == tabInfo {
			v.sidebarTab = tabLegend
		} else {
			v.sidebarTab = tabInfo
		}
	}

	changed := false
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) || inpututil.IsKeyJustPressed(ebiten.KeyD) {
		if len(v.objects) > 0 {
			v.objectIndex = (v.objectIndex + 1) % len(v.objects)
			changed = true
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA) {
		if len(v.objects) > 0 {
			v.objectIndex--
			if v.objectIndex < 0 {
				v.objectIndex = len(v.objects) - 1
			}
			changed = true
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		v.climateIndex = (v.climateIndex + 1) % len(climate.All)
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		v.climateIndex--
		if v.climateIndex < 0 {
			v.climateIndex = len(climate.All) - 1
		}
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.setWinter(!world.IsWinter(v.state))
		changed = true
	}

	if changed {
		v.state.Climate = climate.All[v.climateIndex]
		v.refresh()
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{15, 15, 22, 255})

	if len(v.objects) == 0 {
		ebitenutil.DebugPrintAt(screen, "no objects configured and no settings documents found", 16, 16)
		return
	}

	screenW, screenH := screen.Bounds().Dx(), screen.Bounds().Dy()
	sidebarWidth := v.cfg.GetSidebarWidth()

	padding := 16
	panelW := screenW - sidebarWidth - padding*3
	panelH := screenH - padding*2
	sidebarX := padding + panelW + padding

	o := v.objects[v.objectIndex]
	v.drawMaterialPanel(screen, o, padding, padding, panelW, panelH)
	v.drawSidebar(screen, o, sidebarX, padding, sidebarWidth, panelH)
}

func (v *viewer) Layout(_, _ int) (int, int) {
	return v.cfg.GetScreenWidth(), v.cfg.GetScreenHeight()
}

func (v *viewer) drawMaterialPanel(screen *ebiten.Image, o *objectView, x, y, w, h int) {
	drawFilledRect(screen, x, y, w, h, color.RGBA{20, 20, 35, 255})
	drawRectBorder(screen, x, y, w, h, 2, color.RGBA{70, 70, 90, 255})

	face := basicfont.Face7x13
	title := fmt.Sprintf("%s  [%d/%d]", climate.ObjectKey(o.Name), v.objectIndex+1, len(v.objects))
	ebitext.Draw(screen, title, face, x+12, y+8+face.Ascent, color.RGBA{230, 230, 240, 255})
	ebitenutil.DebugPrintAt(screen, "Left/Right: object  Up/Down: climate  Space: season  Tab: legend  Esc: quit", x+12, y+26)

	row := y + 56
	if o.Err != nil {
		ebitext.Draw(screen, o.Err.Error(), face, x+12, row+face.Ascent, color.RGBA{230, 90, 90, 255})
		row += 24
	}

	swatch := v.cfg.GetSwatchSize()
	gap := v.cfg.GetSwatchGap()
	if perRow := (w - 24 + gap) / (swatch + gap); perRow > 0 && len(o.Renderer.Materials()) > perRow {
		swatch = (w-24)/len(o.Renderer.Materials()) - gap
		if swatch < 8 {
			swatch = 8
		}
	}
	o.Renderer.Draw(screen, x+12, row, swatch, gap)

	row += swatch + 8
	for i, m := range o.Renderer.Materials() {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("[%d] %s", i, m.Name()), x+12, row)
		row += 16
	}
	if o.Renderer.Assignments() == 0 {
		ebitenutil.DebugPrintAt(screen, "render target never assigned", x+12, row)
	}
}

func (v *viewer) drawSidebar(screen *ebiten.Image, o *objectView, x, y, w, h int) {
	drawFilledRect(screen, x, y, w, h, color.RGBA{18, 18, 26, 255})
	drawRectBorder(screen, x, y, w, h, 2, color.RGBA{70, 70, 90, 255})

	row := y + 12
	if v.sidebarTab == tabLegend {
		for _, line := range v.legendLines {
			ebitenutil.DebugPrintAt(screen, line, x+12, row)
			row += 14
		}
		return
	}

	res := o.Result.Resolution
	lines := []string{
		fmt.Sprintf("Date: %s", v.state.Clock),
		fmt.Sprintf("Season: %s", v.state.CurrentSeason()),
		fmt.Sprintf("Climate: %s", v.state.CurrentClimate()),
		fmt.Sprintf("Resolved from: %s", res.Used),
		fmt.Sprintf("Fallback used: %v", res.FellBack),
		fmt.Sprintf("Definitions: %d", len(res.Definitions)),
		fmt.Sprintf("Missing: %d", len(o.Result.Missing)),
		fmt.Sprintf("Applied: %v", o.Result.Applied),
	}
	for _, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, x+12, row)
		row += 16
	}

	row += 8
	settings := o.Component.Settings()
	ebitenutil.DebugPrintAt(screen, "Configured climates:", x+12, row)
	row += 16
	for _, c := range climate.All {
		entry := settings.Entry(c)
		marker := "  "
		if c == v.state.CurrentClimate() {
			marker = "> "
		}
		line := fmt.Sprintf("%s%-16s %d / %d", marker, c, len(entry.DefaultMaterials), len(entry.WinterMaterials))
		ebitenutil.DebugPrintAt(screen, line, x+12, row)
		row += 14
	}
}

func buildLegendLines() []string {
	lines := []string{"Fallback table:", ""}
	for _, c := range climate.All {
		if fb, ok := climate.Fallback(c); ok {
			lines = append(lines, fmt.Sprintf("%-16s -> %s", c, fb))
		} else {
			lines = append(lines, fmt.Sprintf("%-16s -> (none)", c))
		}
	}
	lines = append(lines, "", "Counts are default / winter", "definitions per climate.")
	return lines
}

func drawFilledRect(screen *ebiten.Image, x, y, w, h int, clr color.RGBA) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func drawRectBorder(screen *ebiten.Image, x, y, w, h, thickness int, clr color.RGBA) {
	if thickness <= 0 {
		return
	}
	drawFilledRect(screen, x, y, w, thickness, clr)
	drawFilledRect(screen, x, y+h-thickness, w, thickness, clr)
	drawFilledRect(screen, x, y, thickness, h, clr)
	drawFilledRect(screen, x+w-thickness, y, thickness, h, clr)
}

func ensureRuntimeCWD() {
	if _, err := os.Stat("config.yaml"); err == nil {
		return
	}
	exe, err := os.Executable()
	if err != nil {
		return
	}
	execDir := filepath.Dir(exe)
	_ = os.Chdir(execDir)
}
