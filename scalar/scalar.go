// Package scalar derives ed25519 scalars from Keccak transcripts the way
// Monero does: a 32 byte Keccak-256 digest reduced modulo the group order
//
//	l = 2^252 + 27742317777372353535851937790883648493
//
// These values are used as ring signature challenges, blinding factors and
// key image scalars, so the reduction must match sc_reduce32 bit for bit.
package scalar

import (
	"os"

	"filippo.io/edwards25519"
	"github.com/ethereum/go-ethereum/log"

	keccak "github.com/Giulio2002/xmr_hash"
)

var logger = log.NewLogger(log.NewTerminalHandler(os.Stderr, false)).With("pkg", "scalar")

// Size is the length of an encoded scalar.
const Size = 32

// Scalar is a little-endian integer in [0, l).
type Scalar [Size]byte

// Bytes returns a copy of the encoding.
func (s Scalar) Bytes() []byte {
	b := s
	return b[:]
}

// Edwards returns s as an edwards25519 scalar. Values that were not produced
// by this package are reduced first.
func (s Scalar) Edwards() *edwards25519.Scalar {
	var wide [64]byte
	copy(wide[:], s[:])
	e, err := edwards25519.NewScalar().SetUniformBytes(wide[:])
	if err != nil {
		logger.Crit("Scalar conversion failed", "err", err)
	}
	return e
}

// HashToScalar returns Keccak-256(parts[0] || parts[1] || ...) mod l.
func HashToScalar(parts ...[]byte) Scalar {
	if len(parts) == 1 {
		return Reduce32(keccak.Sum256(parts[0]))
	}
	var h keccak.Hasher
	for _, p := range parts {
		h.Write(p)
	}
	return Reduce32(h.Sum256())
}

// HashToScalarWide returns Keccak-512(parts[0] || parts[1] || ...) mod l.
// The 64 byte digest removes the bias of reducing a 256-bit value.
func HashToScalarWide(parts ...[]byte) Scalar {
	h := keccak.New(64)
	for _, p := range parts {
		h.Write(p)
	}
	e, err := edwards25519.NewScalar().SetUniformBytes(h.Sum(nil))
	if err != nil {
		logger.Crit("Wide scalar reduction failed", "err", err)
	}
	var out Scalar
	copy(out[:], e.Bytes())
	return out
}
