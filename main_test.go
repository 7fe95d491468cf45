package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gregjohnson2017/xenogl/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (*config.Config, error) {
	t.Helper()
	var got *config.Config
	cmd := newRootCommand(func(cfg *config.Config) error {
		got = cfg
		return nil
	})
	cmd.SetArgs(args)
	cmd.SetOut(os.Stderr)
	err := cmd.Execute()
	return got, err
}

func TestRootCommandDefaults(t *testing.T) {
	cfg, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, config.New(), cfg)
}

func TestRootCommandFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xenogl.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[window]
title = "scene"

[log]
level = "warn"
`), 0o644))

	cfg, err := execute(t, "--config", path, "--log-level", "debug", "--watch")
	require.NoError(t, err)
	assert.Equal(t, "scene", cfg.Window.Title)
	assert.Equal(t, "debug", cfg.Log.Level, "flags override the file")
	assert.True(t, cfg.Shaders.Watch)

	cfg, err = execute(t, "-c", path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.False(t, cfg.Shaders.Watch)
}

func TestRootCommandErrors(t *testing.T) {
	_, err := execute(t, "--log-level", "loud")
	assert.Error(t, err)

	_, err = execute(t, "--config", filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = execute(t, "extra")
	assert.Error(t, err)
}
