package keccak

import "math/bits"

// roundConstants are the iota constants, one per round.
var roundConstants = [Rounds]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rotations[i] is the rho rotation applied to the lane moved into piLanes[i].
var rotations = [24]int{
	1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 2, 14,
	27, 41, 56, 8, 25, 43, 62, 18, 39, 61, 20, 44,
}

// piLanes is the pi step as a walk over lanes starting from lane 1.
var piLanes = [24]int{
	10, 7, 11, 17, 18, 3, 5, 16, 8, 21, 24, 4,
	15, 23, 19, 13, 12, 2, 20, 14, 22, 9, 6, 1,
}

// Permute applies the first rounds rounds of keccak-f[1600] to the state in
// place. The hash functions in this package always use Rounds.
func Permute(state *[25]uint64, rounds int) {
	if rounds < 0 || rounds > Rounds {
		abort("Bad keccak round count", "rounds", rounds)
	}

	var bc [5]uint64
	for round := 0; round < rounds; round++ {
		// Theta
		for i := 0; i < 5; i++ {
			bc[i] = state[i] ^ state[i+5] ^ state[i+10] ^ state[i+15] ^ state[i+20]
		}
		for i := 0; i < 5; i++ {
			t := bc[(i+4)%5] ^ bits.RotateLeft64(bc[(i+1)%5], 1)
			for j := 0; j < 25; j += 5 {
				state[j+i] ^= t
			}
		}

		// Rho Pi
		t := state[1]
		for i, j := range piLanes {
			next := state[j]
			state[j] = bits.RotateLeft64(t, rotations[i])
			t = next
		}

		// Chi
		for j := 0; j < 25; j += 5 {
			bc[0], bc[1], bc[2], bc[3], bc[4] = state[j], state[j+1], state[j+2], state[j+3], state[j+4]
			for i := 0; i < 5; i++ {
				state[j+i] ^= ^bc[(i+1)%5] & bc[(i+2)%5]
			}
		}

		// Iota
		state[0] ^= roundConstants[round]
	}
}
