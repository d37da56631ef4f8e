package point_test

import (
	"fmt"

	"filippo.io/edwards25519"

	keccak "github.com/Giulio2002/xmr_hash"
	"github.com/Giulio2002/xmr_hash/point"
	"github.com/Giulio2002/xmr_hash/scalar"
)

func ExampleHashToPoint() {
	seed := keccak.Sum256([]byte("Monero Generator T"))
	T := point.HashToPoint(seed[:])
	fmt.Printf("%x\n", T.Bytes())
	// Output: 966fc66b82cd56cf85eaec801c42845f5f408878d1561e00d3d7ded2794d094f
}

func ExampleHashToPoint_keyImage() {
	// A key image is x * H_p(P) for the one-time key P = x*G.
	x := scalar.HashToScalar([]byte("one-time secret")).Edwards()
	P := new(edwards25519.Point).ScalarBaseMult(x)
	I := new(edwards25519.Point).ScalarMult(x, point.HashToPoint(P.Bytes()))
	fmt.Println(len(I.Bytes()))
	// Output: 32
}
