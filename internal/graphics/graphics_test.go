package graphics

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/bmp"
)

func writeTexture(t *testing.T, path string, w, h int, encode func(*os.File, image.Image) error) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{uint8(x * 10), uint8(y * 10), 200, 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func encodePNG(f *os.File, img image.Image) error { return png.Encode(f, img) }
func encodeBMP(f *os.File, img image.Image) error { return bmp.Encode(f, img) }

func TestArchiveDirName(t *testing.T) {
	if got := ArchiveDirName(10); got != "TEXTURE.010" {
		t.Errorf("ArchiveDirName(10) = %q", got)
	}
	if got := ArchiveDirName(302); got != "TEXTURE.302" {
		t.Errorf("ArchiveDirName(302) = %q", got)
	}
}

func TestArchiveReaderGetMaterial(t *testing.T) {
	dir := t.TempDir()
	writeTexture(t, filepath.Join(dir, "TEXTURE.010", "3-1.png"), 8, 4, encodePNG)

	reader := NewArchiveReader(dir, log.New(&bytes.Buffer{}, "", 0))
	m := reader.GetMaterial(10, 3, 1)
	if m == nil {
		t.Fatalf("expected material for (10,3,1)")
	}
	if m.Key != (TextureKey{Archive: 10, Record: 3, Frame: 1}) {
		t.Errorf("unexpected key %+v", m.Key)
	}
	if b := m.Image.Bounds(); b.Dx() != 8 || b.Dy() != 4 {
		t.Errorf("unexpected bounds %v", b)
	}
	if again := reader.GetMaterial(10, 3, 1); again != m {
		t.Errorf("expected cached material on second lookup")
	}
	if reader.Cached() != 1 {
		t.Errorf("Cached() = %d, want 1", reader.Cached())
	}
}

func TestArchiveReaderBMPAndUnpaddedDir(t *testing.T) {
	dir := t.TempDir()
	writeTexture(t, filepath.Join(dir, "TEXTURE.302", "0-0.bmp"), 4, 4, encodeBMP)
	writeTexture(t, filepath.Join(dir, "TEXTURE.7", "1-0.png"), 2, 2, encodePNG)

	reader := NewArchiveReader(dir, log.New(&bytes.Buffer{}, "", 0))
	if m := reader.GetMaterial(302, 0, 0); m == nil || !strings.HasSuffix(m.Source, ".bmp") {
		t.Errorf("expected bmp material, got %+v", m)
	}
	if m := reader.GetMaterial(7, 1, 0); m == nil {
		t.Errorf("expected material from unpadded archive dir")
	}
}

func TestArchiveReaderMiss(t *testing.T) {
	dir := t.TempDir()
	reader := NewArchiveReader(dir, log.New(&bytes.Buffer{}, "", 0))
	if m := reader.GetMaterial(1, 2, 3); m != nil {
		t.Fatalf("expected nil for missing texture, got %+v", m)
	}

	// a file added after a miss is not picked up: misses are cached
	writeTexture(t, filepath.Join(dir, "TEXTURE.001", "2-3.png"), 2, 2, encodePNG)
	if m := reader.GetMaterial(1, 2, 3); m != nil {
		t.Errorf("expected cached miss")
	}
}

func TestArchiveReaderCorruptTexture(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "TEXTURE.004", "0-0.png")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("not an image"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	var logs bytes.Buffer
	reader := NewArchiveReader(dir, log.New(&logs, "", 0))
	if m := reader.GetMaterial(4, 0, 0); m != nil {
		t.Errorf("expected nil for corrupt texture")
	}
	if !strings.Contains(logs.String(), "failed to decode") {
		t.Errorf("expected decode warning, got %q", logs.String())
	}
}

func TestReplacementImporter(t *testing.T) {
	dir := t.TempDir()
	writeTexture(t, filepath.Join(dir, "10_3-1.png"), 4, 4, encodePNG)

	importer := NewReplacementImporter(dir, log.New(&bytes.Buffer{}, "", 0))
	m, ok := importer.TryImportMaterial(10, 3, 1)
	if !ok || m == nil {
		t.Fatalf("expected imported material")
	}
	if m.Name() != "TEXTURE.10_3-1" {
		t.Errorf("Name() = %q", m.Name())
	}
	if _, ok := importer.TryImportMaterial(10, 3, 2); ok {
		t.Errorf("expected miss for absent replacement")
	}

	empty := NewReplacementImporter("", nil)
	if _, ok := empty.TryImportMaterial(10, 3, 1); ok {
		t.Errorf("importer without a directory must not import")
	}
}

func TestPlaceholderCached(t *testing.T) {
	a := Placeholder(16)
	b := Placeholder(16)
	if a != b {
		t.Errorf("expected cached placeholder")
	}
	if w, h := a.Bounds().Dx(), a.Bounds().Dy(); w != 16 || h != 16 {
		t.Errorf("unexpected size %dx%d", w, h)
	}
	if small := Placeholder(0); small.Bounds().Dx() != 2 {
		t.Errorf("expected minimum placeholder size")
	}
	var missing *Material
	if missing.Name() != "<missing>" {
		t.Errorf("nil material name = %q", missing.Name())
	}
}
