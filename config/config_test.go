package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tangybbq/dlb-lumatone/config"
)

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	require.NotEmpty(t, cfg.Jobs)
	for _, job := range cfg.Jobs {
		require.NotEmpty(t, job.Name)
		require.NotEmpty(t, job.Tuning)
		require.NotEmpty(t, job.Layout)
		require.NotEmpty(t, job.Fill.Mode)
	}
	require.NotNil(t, cfg.FindJob("wicki-hayden-12"))
	require.Nil(t, cfg.FindJob("no-such-job"))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "jobs.json")

	cfg := config.DefaultConfig()
	cfg.OutDir = "out"
	require.NoError(t, cfg.Save(path))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg.OutDir, loaded.OutDir)
	require.Equal(t, cfg.Jobs, loaded.Jobs)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := config.Load(filepath.Join(dir, "missing.json"))
	require.Error(t, err)

	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, (&config.Config{}).Save(empty))
	_, err = config.Load(empty)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no jobs")
}
