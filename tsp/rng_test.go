package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gatsp/tsp"
)

func draws(r tsp.Rand, k int) []int {
	out := make([]int, k)
	for i := range out {
		out[i] = r.Intn(1 << 30)
	}
	return out
}

func TestNewRand_ZeroSeedPolicy(t *testing.T) {
	require.Equal(t, draws(tsp.NewRand(0), 16), draws(tsp.NewRand(1), 16), "seed 0 maps to the default seed")
	require.NotEqual(t, draws(tsp.NewRand(1), 16), draws(tsp.NewRand(2), 16))
}

func TestDeriveRand_Streams(t *testing.T) {
	require.Equal(t, draws(tsp.DeriveRand(5, 3), 16), draws(tsp.DeriveRand(5, 3), 16))
	require.NotEqual(t, draws(tsp.DeriveRand(5, 3), 16), draws(tsp.DeriveRand(5, 4), 16))
	require.NotEqual(t, draws(tsp.DeriveRand(5, 3), 16), draws(tsp.DeriveRand(6, 3), 16))
}
