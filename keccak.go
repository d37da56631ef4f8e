// Package keccak provides the original Keccak sponge (padding byte 0x01, not
// SHA-3's 0x06) with the digest sizes used by Monero.
//
// The digest size selects the rate: 200 - 2*size bytes, or the fixed 136 byte
// data area when the whole 200 byte state is requested. Sizes other than
// multiples of 8 in [32, 96] and 200 are programming errors: they are logged
// at critical level and terminate the process. No input content can make a
// hash fail.
package keccak

const (
	// Rounds is the number of keccak-f[1600] rounds applied per block.
	Rounds = 24

	// HashSize is the size of a Keccak-256 digest in bytes.
	HashSize = 32

	// StateSize is the width of the permutation state in bytes.
	StateSize = 200

	// dataArea is the rate used when the full state is squeezed.
	dataArea = 136

	// bufSize is the size of the working buffer the final block is padded in.
	bufSize = 144
)

// Sum computes the Keccak digest of data with the given size in bytes.
func Sum(data []byte, size int) []byte {
	rate := rateFor(size)
	out := make([]byte, size)
	sum(out, data, rate)
	return out
}

// Sum256 computes the Keccak-256 hash of data. Zero heap allocations.
func Sum256(data []byte) [HashSize]byte {
	var out [HashSize]byte
	sum(out[:], data, rateFor(HashSize))
	return out
}

// Sum512 computes the Keccak-512 hash of data.
func Sum512(data []byte) [64]byte {
	var out [64]byte
	sum(out[:], data, rateFor(64))
	return out
}

// Sum1600 absorbs data at the 136 byte rate and returns the whole state.
func Sum1600(data []byte) [StateSize]byte {
	var out [StateSize]byte
	sum(out[:], data, rateFor(StateSize))
	return out
}

func sum(out, data []byte, rate int) {
	var state [25]uint64

	// Absorb full blocks.
	for len(data) >= rate {
		xorIn(&state, data[:rate])
		Permute(&state, Rounds)
		data = data[rate:]
	}

	// Absorb remaining bytes + padding.
	pad(&state, data, rate)
	squeeze(out, &state)
}

// rateFor returns the sponge rate for a digest of size bytes.
func rateFor(size int) int {
	if size <= 0 || (size > 100 && size != StateSize) {
		abort("Bad keccak digest size", "size", size)
	}
	rate := StateSize - 2*size
	if size == StateSize {
		rate = dataArea
	}
	// The padded final block needs the marker byte and the end bit inside buf.
	if rate == 0 || rate+1 >= bufSize || size%8 != 0 {
		abort("Bad keccak digest size", "size", size, "rate", rate)
	}
	return rate
}

// pad absorbs the final, partial block with Keccak multi-rate padding.
func pad(state *[25]uint64, tail []byte, rate int) {
	if len(tail)+1 >= bufSize || len(tail) >= rate || rate == 0 || rate+1 >= bufSize {
		abort("Bad keccak final block", "tail", len(tail), "rate", rate)
	}

	var buf [bufSize]byte
	copy(buf[:], tail)
	// Keccak uses domain separator 0x01 (NOT SHA-3's 0x06).
	buf[len(tail)] = 0x01
	// pad10*1 end bit.
	buf[rate-1] |= 0x80

	xorIn(state, buf[:rate])
	Permute(state, Rounds)
}

// xorIn XORs data into the leading lanes of state. len(data) is a multiple of 8.
func xorIn(state *[25]uint64, data []byte) {
	n := len(data) >> 3
	for i := 0; i < n; i++ {
		state[i] ^= le64(data[8*i:])
	}
}

// squeeze writes the first len(out) bytes of state, lane by lane.
func squeeze(out []byte, state *[25]uint64) {
	for i := 0; i < len(out)>>3; i++ {
		putLE64(out[8*i:], state[i])
	}
}

// le64 reads a little-endian uint64 from at least 8 bytes.
func le64(b []byte) uint64 {
	_ = b[7]
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}

// putLE64 writes v little-endian into at least 8 bytes.
func putLE64(b []byte, v uint64) {
	_ = b[7]
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	b[4] = byte(v >> 32)
	b[5] = byte(v >> 40)
	b[6] = byte(v >> 48)
	b[7] = byte(v >> 56)
}
