package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gatsp/config"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, config.Default().Validate())
}

func TestLoad_YAMLAndTOMLAgree(t *testing.T) {
	y, err := config.Load(filepath.Join("testdata", "run.yaml"))
	require.NoError(t, err)
	tm, err := config.Load(filepath.Join("testdata", "run.toml"))
	require.NoError(t, err)
	require.Equal(t, y, tm)

	require.Equal(t, 30, y.Cities)
	require.Equal(t, 120, y.Population)
	require.Equal(t, 0.2, y.MutationFraction)
	require.Equal(t, uint64(7), y.Seed)
	require.True(t, y.Polish)
	require.Equal(t, "debug", y.Log.Level)
	require.Equal(t, "curve.png", y.Output.Convergence)
	// Keys absent from the file keep their defaults.
	require.Equal(t, config.Default().ReportEvery, y.ReportEvery)
	require.Equal(t, config.Default().MapSeed, y.MapSeed)
	require.NoError(t, y.Validate())
}

func TestLoad_UnknownKey(t *testing.T) {
	_, err := config.Load(filepath.Join("testdata", "unknown.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "unknown.toml")
	require.NoError(t, os.WriteFile(path, []byte("citys = 3\n"), 0o600))
	_, err = config.Load(path)
	require.Error(t, err)
}

func TestLoad_UnknownFormat(t *testing.T) {
	_, err := config.Load("run.json")
	require.ErrorIs(t, err, config.ErrUnknownFormat)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"one city", func(c *config.Config) { c.Cities = 1 }},
		{"zero width", func(c *config.Config) { c.Width = 0 }},
		{"negative height", func(c *config.Config) { c.Height = -5 }},
		{"sub-unit integer grid", func(c *config.Config) { c.Width = 0.5 }},
		{"empty population", func(c *config.Config) { c.Population = 0 }},
		{"negative generations", func(c *config.Config) { c.Generations = -1 }},
		{"negative mutation", func(c *config.Config) { c.MutationFraction = -0.1 }},
		{"zero save rate", func(c *config.Config) { c.SaveRate = 0 }},
		{"save rate above one", func(c *config.Config) { c.SaveRate = 1.5 }},
		{"no trials", func(c *config.Config) { c.Trials = 0 }},
		{"negative report", func(c *config.Config) { c.ReportEvery = -2 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := config.Default()
			tc.mutate(&c)
			require.ErrorIs(t, c.Validate(), config.ErrInvalid)
		})
	}
}
