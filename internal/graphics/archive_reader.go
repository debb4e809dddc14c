package graphics

import (
	"fmt"
	"log"
	"path/filepath"
	"strconv"
)

// ArchiveReader loads materials from unpacked texture archives laid out as
// <dir>/TEXTURE.<archive>/<record>-<frame>.<ext>.
type ArchiveReader struct {
	dir       string
	materials map[TextureKey]*Material
	misses    map[TextureKey]bool // Remember failed lookups to avoid repeated file checks
	logger    *log.Logger
}

// NewArchiveReader creates a reader over the given archives directory.
func NewArchiveReader(dir string, logger *log.Logger) *ArchiveReader {
	if logger == nil {
		logger = log.Default()
	}
	return &ArchiveReader{
		dir:       dir,
		materials: make(map[TextureKey]*Material),
		misses:    make(map[TextureKey]bool),
		logger:    logger,
	}
}

// ArchiveDirName returns the folder name of a texture archive, for example
// TEXTURE.010.
func ArchiveDirName(archive int) string {
	return fmt.Sprintf("TEXTURE.%03d", archive)
}

func (r *ArchiveReader) candidates(key TextureKey) []string {
	file := strconv.Itoa(key.Record) + "-" + strconv.Itoa(key.Frame)
	return []string{
		filepath.Join(r.dir, ArchiveDirName(key.Archive), file),
		filepath.Join(r.dir, "TEXTURE."+strconv.Itoa(key.Archive), file),
	}
}

// GetMaterial returns the material for the texture, or nil when the archive
// does not contain it.
func (r *ArchiveReader) GetMaterial(archive, record, frame int) *Material {
	key := TextureKey{Archive: archive, Record: record, Frame: frame}
	if m, ok := r.materials[key]; ok {
		return m
	}
	if r.misses[key] {
		return nil
	}

	m, err := loadMaterial(key, r.candidates(key))
	if err != nil {
		r.logger.Printf("[MaterialReader] Warning: %v", err)
	}
	if m == nil {
		r.misses[key] = true
		return nil
	}
	r.materials[key] = m
	return m
}

// Cached returns the number of materials currently held by the reader.
func (r *ArchiveReader) Cached() int {
	return len(r.materials)
}
