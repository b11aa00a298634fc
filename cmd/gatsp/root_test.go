package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gatsp/config"
)

type RootCmdSuite struct {
	suite.Suite
	dir string
}

func (s *RootCmdSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *RootCmdSuite) execute(args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

// TestRunWithFlags runs a tiny instance end to end and renders every plot.
func (s *RootCmdSuite) TestRunWithFlags() {
	initial := filepath.Join(s.dir, "initial.png")
	final := filepath.Join(s.dir, "final.svg")
	curve := filepath.Join(s.dir, "curve.png")

	out, err := s.execute(
		"--cities", "8", "--population", "20", "--generations", "10", "--trials", "2",
		"--log-level", "error", "--polish",
		"--initial-tour", initial, "--final-tour", final, "--convergence", curve,
	)
	s.Require().NoError(err, out)
	s.Require().Contains(out, "8 cities, 20 tours, 10 generations × 2 trials")
	s.Require().Contains(out, "best ")
	s.Require().Contains(out, "tour [")

	for _, p := range []string{initial, final, curve} {
		info, err := os.Stat(p)
		s.Require().NoError(err)
		s.Require().Greater(info.Size(), int64(0))
	}
}

// TestFlagsOverrideConfigFile: explicit flags win over file values.
func (s *RootCmdSuite) TestFlagsOverrideConfigFile() {
	path := filepath.Join(s.dir, "run.yaml")
	s.Require().NoError(os.WriteFile(path, []byte("cities: 9\npopulation: 12\ngenerations: 3\nlog:\n  level: error\n"), 0o600))

	out, err := s.execute("--config", path, "--population", "15")
	s.Require().NoError(err, out)
	s.Require().Contains(out, "9 cities, 15 tours, 3 generations × 1 trials")
}

func (s *RootCmdSuite) TestInvalidConfigFails() {
	_, err := s.execute("--cities", "1", "--log-level", "error")
	s.Require().ErrorIs(err, config.ErrInvalid)

	_, err = s.execute("--cities", "5", "--log-level", "loud")
	s.Require().Error(err)
}

func TestRootCmdSuite(t *testing.T) {
	suite.Run(t, new(RootCmdSuite))
}

func TestResolveConfig_NoFile(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--cities", "12"}))
	cfg := config.Default()
	cfg.Cities = 12
	got, err := resolveConfig("", cfg, cmd.Flags())
	require.NoError(t, err)
	require.Equal(t, 12, got.Cities)
	require.Equal(t, config.Default().Population, got.Population)
}
