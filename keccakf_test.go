package keccak

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPermuteZeroState(t *testing.T) {
	// keccak-f[1600] of the all-zero state, first lanes and last lane.
	var state [25]uint64
	Permute(&state, Rounds)
	want := map[int]uint64{
		0:  0xf1258f7940e1dde7,
		1:  0x84d5ccf933c0478a,
		2:  0xd598261ea65aa9ee,
		24: 0xeaf1ff7b5ceca249,
	}
	for i, w := range want {
		require.Equal(t, w, state[i], "lane %d", i)
	}

	Permute(&state, Rounds)
	require.Equal(t, uint64(0x2d5c954df96ecb3c), state[0], "second permutation lane 0")
}

func TestPermuteZeroRounds(t *testing.T) {
	state := [25]uint64{1, 2, 3}
	Permute(&state, 0)
	require.Equal(t, [25]uint64{1, 2, 3}, state)
}

func TestPermuteRoundsCompose(t *testing.T) {
	// A single round on the zero state only injects the first round constant.
	var state [25]uint64
	Permute(&state, 1)
	require.Equal(t, [25]uint64{roundConstants[0]}, state)
}

func BenchmarkPermute(b *testing.B) {
	var state [25]uint64
	b.SetBytes(StateSize)
	for i := 0; i < b.N; i++ {
		Permute(&state, Rounds)
	}
}
