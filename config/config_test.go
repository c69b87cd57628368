package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cwbudde/algo-srim/stopping"
	"github.com/cwbudde/algo-srim/stopping/table"
	"github.com/sgostarter/i/l"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	ttl, err := cfg.TTL()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Minute, ttl)
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := Parse([]byte(`
tables: /srv/srim
header_lines: 2
energy_scale: 1
range_scale: 10000
low_energy_floor: 0.01
cache_ttl: 90s
`))
	require.NoError(t, err)

	assert.Equal(t, "/srv/srim", cfg.Tables)
	assert.Equal(t, 2, cfg.HeaderLines)
	assert.Equal(t, 1.0, cfg.EnergyScale)
	assert.Equal(t, 1e4, cfg.RangeScale)
	assert.Equal(t, 0.01, cfg.LowEnergyFloor)

	ttl, err := cfg.TTL()
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, ttl)

	readCfg := table.ApplyReadOptions(cfg.ReadOptions()...)
	assert.Equal(t, table.ReadConfig{HeaderLines: 2, EnergyScale: 1}, readCfg)

	modelCfg := stopping.ApplyOptions(cfg.ModelOptions(l.NewNopLoggerWrapper())...)
	assert.Equal(t, 1e4, modelCfg.RangeScale)
	assert.Equal(t, 0.01, modelCfg.LowEnergyFloor)

	opts, err := cfg.CatalogOptions(nil)
	require.NoError(t, err)
	assert.Len(t, opts, 3)
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{
		"tables: ''",
		"header_lines: -1",
		"energy_scale: 0",
		"range_scale: -5",
		"low_energy_floor: -0.1",
		"cache_ttl: soon",
		"cache_ttl: -5m",
		"tables: [unclosed",
	} {
		_, err := Parse([]byte(in))
		assert.ErrorIs(t, err, ErrInvalidConfig, in)
	}
}

func TestParse_EmptyTTLDisablesExpiry(t *testing.T) {
	cfg, err := Parse([]byte("cache_ttl: ''"))
	require.NoError(t, err)

	ttl, err := cfg.TTL()
	require.NoError(t, err)
	assert.Zero(t, ttl)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "srim.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tables: here\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "here", cfg.Tables)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
