package graphics

import (
	"log"
	"path/filepath"
)

// ReplacementImporter loads loose replacement textures named
// <archive>_<record>-<frame>.<ext> from a single directory.
type ReplacementImporter struct {
	dir    string
	logger *log.Logger
}

func NewReplacementImporter(dir string, logger *log.Logger) *ReplacementImporter {
	if logger == nil {
		logger = log.Default()
	}
	return &ReplacementImporter{dir: dir, logger: logger}
}

// TryImportMaterial imports the replacement texture for the key if one
// exists.
func (i *ReplacementImporter) TryImportMaterial(archive, record, frame int) (*Material, bool) {
	if i.dir == "" {
		return nil, false
	}
	key := TextureKey{Archive: archive, Record: record, Frame: frame}
	m, err := loadMaterial(key, []string{filepath.Join(i.dir, key.String())})
	if err != nil {
		i.logger.Printf("[TextureReplacement] Warning: %v", err)
	}
	if m == nil {
		return nil, false
	}
	return m, true
}
