package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, ".", cfg.Output.Dir)
	assert.Equal(t, 6.0, cfg.Chart.WidthInches)
	assert.Equal(t, 4.5, cfg.Chart.HeightInches)
	assert.Equal(t, 300, cfg.Chart.DPI)
	assert.False(t, cfg.Input.LegacyDropNegative)
}

func TestLoadFromEnvironment(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("PORT", "9090")
	t.Setenv("NC_OUTPUT_DIR", "/tmp/nc-out")
	t.Setenv("NC_CHART_DPI", "150")
	t.Setenv("NC_LEGACY_INPUT", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "/tmp/nc-out", cfg.Output.Dir)
	assert.Equal(t, 150, cfg.Chart.DPI)
	assert.True(t, cfg.Input.LegacyDropNegative)
}
