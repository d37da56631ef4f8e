package scalar

import (
	"bytes"
	"testing"

	"filippo.io/edwards25519"
	"github.com/stretchr/testify/require"

	keccak "github.com/Giulio2002/xmr_hash"
)

func TestHashToScalarKnownAnswers(t *testing.T) {
	tests := []struct {
		name  string
		parts [][]byte
		want  string
	}{
		{"empty", [][]byte{{}}, "4a078e76cd41a3d3b534b83dc6f2ea2de500b653ca82273b7bfad8045d85a400"},
		{"nil", nil, "4a078e76cd41a3d3b534b83dc6f2ea2de500b653ca82273b7bfad8045d85a400"},
		{"abc", [][]byte{[]byte("abc")}, "9ab38d0681b95fef6d619d1cace05a14c0d1e6e33a64a036ec44f58fa12d6c05"},
		{"agg prefix", [][]byte{[]byte("CLSAG_agg_0"), make([]byte, 32)}, "738742d6c0f85a55527134937a54c162d9c5bff52ca3009507881d65f9d61106"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, Scalar(hex32(t, tt.want)), HashToScalar(tt.parts...))
		})
	}
}

func TestHashToScalarIsReducedKeccak(t *testing.T) {
	for _, data := range [][]byte{nil, []byte("abc"), bytes.Repeat([]byte{0xa5}, 300)} {
		require.Equal(t, Reduce32(keccak.Sum256(data)), HashToScalar(data))
	}
}

func TestHashToScalarParts(t *testing.T) {
	a := []byte("CLSAG_round")
	b := bytes.Repeat([]byte{7}, 200)
	c := []byte("msg")
	joined := append(append(append([]byte{}, a...), b...), c...)

	require.Equal(t, HashToScalar(joined), HashToScalar(a, b, c))
	require.Equal(t, HashToScalar(joined), HashToScalar(joined[:1], joined[1:]))
	require.NotEqual(t, HashToScalar(a, b), HashToScalar(b, a))
}

func TestHashToScalarWide(t *testing.T) {
	require.Equal(t,
		Scalar(hex32(t, "4822c7be51ae185b94d699a85bae94ea1c9435980a1358d8dd07ab54c805840d")),
		HashToScalarWide([]byte("abc")))
	require.Equal(t, HashToScalarWide([]byte("abc")), HashToScalarWide([]byte("a"), []byte("bc")))

	digest := keccak.Sum512([]byte("wide"))
	e, err := edwards25519.NewScalar().SetUniformBytes(digest[:])
	require.NoError(t, err)
	require.Equal(t, e.Bytes(), HashToScalarWide([]byte("wide")).Bytes())
}

func TestScalarEdwards(t *testing.T) {
	s := HashToScalar([]byte("abc"))
	require.Equal(t, s.Bytes(), s.Edwards().Bytes())

	// Values built by hand are reduced on conversion.
	var big Scalar
	for i := range big {
		big[i] = 0xff
	}
	require.Equal(t, Reduce32(big).Bytes(), big.Edwards().Bytes())
}

func TestScalarBytesIsCopy(t *testing.T) {
	s := Scalar{1, 2, 3}
	b := s.Bytes()
	b[0] = 9
	require.Equal(t, byte(1), s[0])
}

func BenchmarkHashToScalar(b *testing.B) {
	data := make([]byte, 32)
	for i := 0; i < b.N; i++ {
		HashToScalar(data)
	}
}
