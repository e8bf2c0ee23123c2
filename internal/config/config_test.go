package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/hanoi/internal/config"
	"github.com/aretw0/hanoi/pkg/domain"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 5, cfg.DiskCount)
	assert.Equal(t, 500*time.Millisecond, cfg.StepDelay())

	from, aux, to, err := cfg.Pegs()
	require.NoError(t, err)
	assert.Equal(t, domain.PegA, from)
	assert.Equal(t, domain.PegB, aux)
	assert.Equal(t, domain.PegC, to)
}

func TestValidate_Ranges(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"disk count too low", func(c *config.Config) { c.DiskCount = config.MinDiskCount - 1 }},
		{"disk count too high", func(c *config.Config) { c.DiskCount = config.MaxDiskCount + 1 }},
		{"delay too low", func(c *config.Config) { c.StepDelayMs = config.MinStepDelayMs - 1 }},
		{"delay too high", func(c *config.Config) { c.StepDelayMs = config.MaxStepDelayMs + 1 }},
		{"unknown peg", func(c *config.Config) { c.Source = "D" }},
		{"duplicate peg roles", func(c *config.Config) { c.Target = "A" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), domain.ErrInvalidConfiguration)
		})
	}
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hanoi.yaml")
	require.NoError(t, os.WriteFile(path, []byte("disk_count: 4\nstep_delay_ms: 250\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.DiskCount)
	assert.Equal(t, 250, cfg.StepDelayMs)
	// Unset fields keep their defaults.
	assert.Equal(t, "A", cfg.Source)
}

func TestLoad_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hanoi.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"disk_count":6,"source":"c","target":"a"}`), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.DiskCount)

	from, _, to, err := cfg.Pegs()
	require.NoError(t, err)
	assert.Equal(t, domain.PegC, from)
	assert.Equal(t, domain.PegA, to)
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_InvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hanoi.yaml")
	require.NoError(t, os.WriteFile(path, []byte("disk_count: 99\n"), 0o644))

	_, err := config.Load(path)
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hanoi.yaml")
	require.NoError(t, os.WriteFile(path, []byte("disk_count: [unclosed"), 0o644))

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestFromMap(t *testing.T) {
	cfg, err := config.FromMap(map[string]any{
		"disk_count":    3,
		"step_delay_ms": 100,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.DiskCount)
	assert.Equal(t, 100, cfg.StepDelayMs)
}

func TestFromMap_UnknownKey(t *testing.T) {
	_, err := config.FromMap(map[string]any{"disks": 3})
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
}

func TestFromMap_OutOfRange(t *testing.T) {
	_, err := config.FromMap(map[string]any{"disk_count": 1})
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
}
