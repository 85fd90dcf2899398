package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/usharplibs/engine/buffers"
	"github.com/usharplibs/engine/config"
)

func TestParseKeepsDefaults(t *testing.T) {

	cfg, err := config.Parse([]byte(`
[window]
title = "Demo"
width = 800

[render]
wireframe = true
model_usage = "stream_draw"
`))
	require.NoError(t, err)

	assert.Equal(t, "Demo", cfg.Window.Title)
	assert.Equal(t, int32(800), cfg.Window.Width)
	assert.Equal(t, int32(720), cfg.Window.Height)
	assert.True(t, cfg.Window.VSync)
	assert.True(t, cfg.Render.Wireframe)
	assert.True(t, cfg.Render.DepthTest)

	usage, err := cfg.Render.Usage()
	require.NoError(t, err)
	assert.Equal(t, buffers.BufUsage_Stream_Draw, usage)
}

func TestParseErrors(t *testing.T) {

	_, err := config.Parse([]byte(`[window`))
	assert.Error(t, err)

	_, err = config.Parse([]byte("[window]\nwidth = -1\n"))
	assert.ErrorContains(t, err, "window size")

	_, err = config.Parse([]byte("[render]\nmodel_usage = \"whenever\"\n"))
	assert.ErrorContains(t, err, "unknown buffer usage")
}

func TestLoad(t *testing.T) {

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	path := filepath.Join(t.TempDir(), "client.toml")
	require.NoError(t, os.WriteFile(path, []byte("[window]\nvsync = false\n"), 0o644))

	cfg, err = config.Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.Window.VSync)
}
