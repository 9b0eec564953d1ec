package psychro

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_DefaultConfig(t *testing.T) {
	conf := DefaultConfig()
	assert.NoError(t, conf.Validate())
	assert.InDelta(t, 1e-5, conf.Tolerance(), 1e-20)
	assert.Equal(t, 50.0, conf.InitialGuess)
}

// 記載のない項目は既定値のまま
func Test_LoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "psychro.yaml")
	require.NoError(t, os.WriteFile(path, []byte("precision: 7\nmax_iterations: 300\n"), 0644))

	conf, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 7, conf.Precision)
	assert.Equal(t, 300, conf.MaxIterations)
	assert.Equal(t, 50.0, conf.InitialGuess)
}

func Test_LoadConfig_Invalid(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("precision: 0\n"), 0644))
	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "precision")

	path = filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("precision: [\n"), 0644))
	_, err = LoadConfig(path)
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func Test_NewResolver_InvalidConfig(t *testing.T) {
	_, err := NewResolver(Config{Precision: 5, InitialGuess: 50, MaxIterations: 0})
	assert.Error(t, err)

	r, err := NewResolver(DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), r.Config())
}
