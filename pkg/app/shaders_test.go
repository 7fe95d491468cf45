package app_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gregjohnson2017/xenogl/pkg/app"
	"github.com/gregjohnson2017/xenogl/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadShaders(t *testing.T) {
	vs, fs, err := app.LoadShaders(config.Shaders{})
	require.NoError(t, err)
	assert.Equal(t, app.VertexShaderSource, vs)
	assert.Equal(t, app.FragmentShaderSource, fs)

	path := filepath.Join(t.TempDir(), "custom.frag")
	require.NoError(t, os.WriteFile(path, []byte("#version 330\n"), 0o644))
	vs, fs, err = app.LoadShaders(config.Shaders{Fragment: path})
	require.NoError(t, err)
	assert.Equal(t, app.VertexShaderSource, vs)
	assert.Equal(t, "#version 330\n", fs)

	_, _, err = app.LoadShaders(config.Shaders{Vertex: filepath.Join(t.TempDir(), "missing.vert")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
