// Package point hashes byte strings to ed25519 points in the prime order
// subgroup, compatible with Monero's hash_to_p3 (H_p).
//
// The digest is Keccak-256 of the input, mapped to the curve with
// ge_fromfe_frombytes_vartime and multiplied by the cofactor 8. The result is
// used for key images, transcript bound generators and one-time keys.
package point

import (
	"encoding/hex"
	"os"

	"filippo.io/edwards25519"
	"github.com/ethereum/go-ethereum/log"

	keccak "github.com/Giulio2002/xmr_hash"
)

var logger = log.NewLogger(log.NewTerminalHandler(os.Stderr, false)).With("pkg", "point")

// HashToPoint returns 8 * map(Keccak-256(data)).
func HashToPoint(data []byte) *edwards25519.Point {
	digest := keccak.Sum256(data)
	return fromDigest(&digest)
}

func fromDigest(digest *[32]byte) *edwards25519.Point {
	p, err := mapToCurve(digest).extended()
	if err != nil {
		logger.Crit("Hash to point left the curve", "digest", hex.EncodeToString(digest[:]), "err", err)
	}
	return p.MultByCofactor(p)
}
