// Package configfunc loads editor settings from an optional YAML file.
// Missing or malformed files degrade to defaults; configuration can never
// stop the program from starting.
package configfunc

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the tunable editor settings.
type Config struct {
	Language             string `yaml:"language"`
	DBPath               string `yaml:"db_path"`
	RenderDebounceMs     int    `yaml:"render_debounce_ms"`
	CheckpointDebounceMs int    `yaml:"checkpoint_debounce_ms"`
	MaxCheckpoints       int    `yaml:"max_checkpoints"`
	CompilerScript       string `yaml:"compiler_script"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		Language:             "en",
		DBPath:               "gopoltui.db",
		RenderDebounceMs:     400,
		CheckpointDebounceMs: 400,
		MaxCheckpoints:       50,
		CompilerScript:       "compiler.lua",
	}
}

// Load reads path and merges it over the defaults. Any read or parse error
// is logged and the defaults are returned.
func Load(path string) Config {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		log.Println("config: ignoring malformed", path, err)
		return cfg
	}
	if fileCfg.Language != "" {
		cfg.Language = fileCfg.Language
	}
	if fileCfg.DBPath != "" {
		cfg.DBPath = fileCfg.DBPath
	}
	if fileCfg.RenderDebounceMs > 0 {
		cfg.RenderDebounceMs = fileCfg.RenderDebounceMs
	}
	if fileCfg.CheckpointDebounceMs > 0 {
		cfg.CheckpointDebounceMs = fileCfg.CheckpointDebounceMs
	}
	if fileCfg.MaxCheckpoints > 0 {
		cfg.MaxCheckpoints = fileCfg.MaxCheckpoints
	}
	if fileCfg.CompilerScript != "" {
		cfg.CompilerScript = fileCfg.CompilerScript
	}
	return cfg
}

// RenderDebounce returns the re-render quiet period.
func (c Config) RenderDebounce() time.Duration {
	return time.Duration(c.RenderDebounceMs) * time.Millisecond
}

// CheckpointDebounce returns the checkpoint quiet period.
func (c Config) CheckpointDebounce() time.Duration {
	return time.Duration(c.CheckpointDebounceMs) * time.Millisecond
}
