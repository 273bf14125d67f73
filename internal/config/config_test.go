package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultThreshold, cfg.Threshold)
	assert.Equal(t, DefaultTimeLimitSeconds, cfg.TimeLimitSeconds)
	assert.Greater(t, cfg.WorkerCount, uint32(0))
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")

	assert.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))

	assert.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	assert.NoError(t, os.WriteFile(path, []byte(`{"threshold": 120, "workerCount": 4}`), 0644))

	cfg, err := Load(path)

	assert.NoError(t, err)
	assert.Equal(t, uint32(120), cfg.Threshold)
	assert.Equal(t, uint32(4), cfg.WorkerCount)
	assert.Equal(t, DefaultTimeLimitSeconds, cfg.TimeLimitSeconds)
}
