package keccak

import "hash"

var _ hash.Hash = (*Hasher)(nil)

// Hasher is a streaming Keccak hasher. Designed for stack allocation: the zero
// value is a ready Keccak-256 hasher.
type Hasher struct {
	state    [25]uint64
	buf      [bufSize]byte
	absorbed int
	rate     int
	size     int
}

// New returns a hasher producing size byte digests.
func New(size int) *Hasher {
	return &Hasher{rate: rateFor(size), size: size}
}

// New256 returns a Keccak-256 hasher.
func New256() *Hasher {
	return New(HashSize)
}

func (h *Hasher) init() {
	if h.rate == 0 {
		h.size, h.rate = HashSize, rateFor(HashSize)
	}
}

// Reset resets the hasher to its initial state, keeping the digest size.
func (h *Hasher) Reset() {
	h.state = [25]uint64{}
	h.absorbed = 0
}

// Size returns the digest size in bytes.
func (h *Hasher) Size() int {
	h.init()
	return h.size
}

// BlockSize returns the sponge rate in bytes.
func (h *Hasher) BlockSize() int {
	h.init()
	return h.rate
}

// Write absorbs p into the hasher. It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	h.init()
	n := len(p)
	if h.absorbed > 0 {
		x := copy(h.buf[h.absorbed:h.rate], p)
		h.absorbed += x
		p = p[x:]
		if h.absorbed == h.rate {
			xorIn(&h.state, h.buf[:h.rate])
			Permute(&h.state, Rounds)
			h.absorbed = 0
		}
	}

	for len(p) >= h.rate {
		xorIn(&h.state, p[:h.rate])
		Permute(&h.state, Rounds)
		p = p[h.rate:]
	}

	if len(p) > 0 {
		h.absorbed = copy(h.buf[:], p)
	}
	return n, nil
}

// Sum appends the digest to b. Does not modify the hasher state.
func (h *Hasher) Sum(b []byte) []byte {
	h.init()
	state := h.state
	pad(&state, h.buf[:h.absorbed], h.rate)

	var out [StateSize]byte
	squeeze(out[:h.size], &state)
	return append(b, out[:h.size]...)
}

// Sum256 finalizes a Keccak-256 hasher and returns its digest.
// Does not modify the hasher state.
func (h *Hasher) Sum256() [HashSize]byte {
	if h.Size() != HashSize {
		abort("Bad keccak digest size", "size", h.size, "want", HashSize)
	}
	state := h.state
	pad(&state, h.buf[:h.absorbed], h.rate)

	var out [HashSize]byte
	squeeze(out[:], &state)
	return out
}
