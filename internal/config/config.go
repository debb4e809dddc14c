package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration values
type Config struct {
	Assets  AssetsConfig  `yaml:"assets"`
	World   WorldConfig   `yaml:"world"`
	Objects []string      `yaml:"objects"`
	Display DisplayConfig `yaml:"display"`
	Viewer  ViewerConfig  `yaml:"viewer"`
}

type AssetsConfig struct {
	BaseDir         string `yaml:"base_dir"`
	ArchivesDir     string `yaml:"archives_dir"`
	ReplacementsDir string `yaml:"replacements_dir"`
}

type WorldConfig struct {
	StateFile string `yaml:"state_file"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
}

type ViewerConfig struct {
	SwatchSize   int `yaml:"swatch_size"`
	SwatchGap    int `yaml:"swatch_gap"`
	SidebarWidth int `yaml:"sidebar_width"`
}

// LoadConfig loads the configuration from a YAML file
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}

	return &config, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

// Helper functions for easy access to commonly used values. Zero values fall
// back to the defaults below.

func (c *Config) GetAssetsDir() string {
	if c.Assets.BaseDir == "" {
		return "assets"
	}
	return c.Assets.BaseDir
}

func (c *Config) GetArchivesDir() string {
	if c.Assets.ArchivesDir == "" {
		return filepath.Join(c.GetAssetsDir(), "arena2")
	}
	return c.Assets.ArchivesDir
}

// GetReplacementsDir returns the loose replacement texture directory. An
// explicit "-" disables replacement imports.
func (c *Config) GetReplacementsDir() string {
	switch c.Assets.ReplacementsDir {
	case "":
		return filepath.Join(c.GetAssetsDir(), "Textures")
	case "-":
		return ""
	}
	return c.Assets.ReplacementsDir
}

func (c *Config) GetWorldStateFile() string {
	if c.World.StateFile == "" {
		return filepath.Join(c.GetAssetsDir(), "world.yaml")
	}
	return c.World.StateFile
}

func (c *Config) GetScreenWidth() int {
	if c.Display.ScreenWidth <= 0 {
		return 1200
	}
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	if c.Display.ScreenHeight <= 0 {
		return 800
	}
	return c.Display.ScreenHeight
}

func (c *Config) GetWindowTitle() string {
	if c.Display.WindowTitle == "" {
		return "Climate Materials Viewer"
	}
	return c.Display.WindowTitle
}

func (c *Config) GetSwatchSize() int {
	if c.Viewer.SwatchSize <= 0 {
		return 96
	}
	return c.Viewer.SwatchSize
}

func (c *Config) GetSwatchGap() int {
	if c.Viewer.SwatchGap < 0 {
		return 0
	}
	if c.Viewer.SwatchGap == 0 {
		return 8
	}
	return c.Viewer.SwatchGap
}

func (c *Config) GetSidebarWidth() int {
	if c.Viewer.SidebarWidth <= 0 {
		return 300
	}
	return c.Viewer.SidebarWidth
}
