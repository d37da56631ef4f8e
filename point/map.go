package point

import (
	"filippo.io/edwards25519"
	"filippo.io/edwards25519/field"
)

// Constants of the Montgomery form y^2 = x^3 + A x^2 + x, A = 486662.
var (
	feZero     = new(field.Element).Zero()
	feOne      = new(field.Element).One()
	feNineteen = new(field.Element).Mult32(feOne, 19)

	feA       = new(field.Element).Mult32(feOne, 486662)
	feMinusA  = new(field.Element).Negate(feA)
	feMinusA2 = new(field.Element).Negate(new(field.Element).Square(feA))
	feSqrtM1  = mustSqrt(new(field.Element).Negate(feOne))

	// A(A+2)
	feAA2 = new(field.Element).Multiply(feA, new(field.Element).Add(feA, new(field.Element).Mult32(feOne, 2)))

	// sqrt(-2A(A+2)), sqrt(2A(A+2)), sqrt(-sqrt(-1)A(A+2)), sqrt(sqrt(-1)A(A+2))
	fffb1 = mustSqrt(new(field.Element).Negate(new(field.Element).Mult32(feAA2, 2)))
	fffb2 = mustSqrt(new(field.Element).Mult32(feAA2, 2))
	fffb3 = mustSqrt(new(field.Element).Negate(new(field.Element).Multiply(feSqrtM1, feAA2)))
	fffb4 = mustSqrt(new(field.Element).Multiply(feSqrtM1, feAA2))
)

func mustSqrt(a *field.Element) *field.Element {
	r, wasSquare := new(field.Element).SqrtRatio(a, feOne)
	if wasSquare != 1 {
		panic("point: map constant is not a square")
	}
	return r
}

// projective is a point as (X:Y:Z) with x = X/Z, y = Y/Z. It only exists
// between the map and the conversion to an edwards25519.Point.
type projective struct {
	X, Y, Z field.Element
}

// extended converts p to extended coordinates (XZ:YZ:Z^2:XY).
func (p *projective) extended() (*edwards25519.Point, error) {
	var X, Y, Z, T field.Element
	X.Multiply(&p.X, &p.Z)
	Y.Multiply(&p.Y, &p.Z)
	Z.Square(&p.Z)
	T.Multiply(&p.X, &p.Y)
	return new(edwards25519.Point).SetExtendedCoordinates(&X, &Y, &Z, &T)
}

// decodeWide interprets all 256 bits of s as a field element. Unlike
// SetBytes, bit 255 is kept and contributes 2^255 = 19 mod p.
func decodeWide(s *[32]byte) *field.Element {
	b := *s
	top := b[31] >> 7
	b[31] &= 0x7f
	u, err := new(field.Element).SetBytes(b[:])
	if err != nil {
		panic("point: " + err.Error()) // 32 bytes is always a valid length
	}
	if top == 1 {
		u.Add(u, feNineteen)
	}
	return u
}

// divPowM1 returns (u/v)^((p+3)/8), computed as u v^3 (u v^7)^((p-5)/8).
// Its square is +-u/v when u/v is a square, otherwise +-sqrt(-1) u/v.
func divPowM1(u, v *field.Element) *field.Element {
	v3 := new(field.Element).Square(v)
	v3.Multiply(v3, v)
	r := new(field.Element).Square(v3)
	r.Multiply(r, v)
	r.Multiply(r, u)
	r.Pow22523(r)
	r.Multiply(r, v3)
	return r.Multiply(r, u)
}

// mapToCurve is Monero's ge_fromfe_frombytes_vartime: an Elligator 2 style
// map from 32 bytes to a curve point that is not necessarily in the prime
// order subgroup. It runs in variable time; its input is public.
func mapToCurve(s *[32]byte) *projective {
	u := decodeWide(s)

	v := new(field.Element).Square(u)
	v.Add(v, v) // 2u^2
	w := new(field.Element).Add(v, feOne)
	x := new(field.Element).Square(w)
	y := new(field.Element).Multiply(feMinusA2, v)
	x.Add(x, y) // w^2 - 2A^2u^2

	r := divPowM1(w, x)
	y.Square(r)
	x.Multiply(y, x)
	z := new(field.Element).Set(feMinusA)

	var sign int
	switch {
	case y.Subtract(w, x).Equal(feZero) == 1:
		// r = u sqrt(2A(A+2) w/x), z = -2Au^2
		r.Multiply(r, fffb2)
		r.Multiply(r, u)
		z.Multiply(z, v)
	case y.Add(w, x).Equal(feZero) == 1:
		r.Multiply(r, fffb1)
		r.Multiply(r, u)
		z.Multiply(z, v)
	default:
		// w/x is not a square: r = sqrt(A(A+2) w/x), z = -A
		x.Multiply(x, feSqrtM1)
		if y.Subtract(w, x).Equal(feZero) == 1 {
			r.Multiply(r, fffb4)
		} else {
			r.Multiply(r, fffb3)
		}
		sign = 1
	}
	if r.IsNegative() != sign {
		r.Negate(r)
	}

	p := new(projective)
	p.Z.Add(z, w)
	p.Y.Subtract(z, w)
	p.X.Multiply(r, &p.Z)
	return p
}
