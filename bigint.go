package decimal

import "math/big"

// Bint (Big INTeger) is the coefficient backend for precision > 19,
// backed by math/big. It is a plain immutable value: every method
// allocates a fresh big.Int for its result and never writes through x
// or y, so it satisfies the coefficient[C] contract the same way Fint
// and Wint do; see DESIGN.md for the allocation tradeoff against a
// pooled, mutate-in-place design.
type Bint struct{ v big.Int }

// bintPow10 is a cache of powers of ten, reused across Bint values instead
// of being recomputed by big.Int.Exp on every shift.
var bintPow10 = func() [128]Bint {
	var pows [128]Bint
	pows[0] = Bint{*big.NewInt(1)}
	ten := big.NewInt(10)
	for i := 1; i < len(pows); i++ {
		var z big.Int
		z.Mul(&pows[i-1].v, ten)
		pows[i] = Bint{z}
	}
	return pows
}()

func bintPow(shift int) big.Int {
	if shift < len(bintPow10) {
		return bintPow10[shift].v
	}
	var z big.Int
	z.Exp(big.NewInt(10), big.NewInt(int64(shift)), nil)
	return z
}

func (x Bint) isZero() bool { return x.v.Sign() == 0 }

func (x Bint) prec() int {
	if x.cmp(bintPow10[len(bintPow10)-1]) > 0 {
		return len(x.v.String())
	}
	left, right := 0, len(bintPow10)
	for left < right {
		mid := (left + right) / 2
		if x.cmp(bintPow10[mid]) < 0 {
			right = mid
		} else {
			left = mid + 1
		}
	}
	return left
}

func (x Bint) hasPrec(prec int) bool {
	switch {
	case prec < 1:
		return true
	case prec > len(bintPow10):
		return len(x.v.String()) >= prec
	default:
		return x.cmp(bintPow10[prec-1]) >= 0
	}
}

func (x Bint) cmp(y Bint) int { return x.v.Cmp(&y.v) }

func (x Bint) add(y Bint) (Bint, bool) {
	var z big.Int
	z.Add(&x.v, &y.v)
	return Bint{z}, true
}

func (x Bint) sub(y Bint) (Bint, bool) {
	if x.cmp(y) < 0 {
		return Bint{}, false
	}
	var z big.Int
	z.Sub(&x.v, &y.v)
	return Bint{z}, true
}

func (x Bint) mul(y Bint) (Bint, bool) {
	var z big.Int
	z.Mul(&x.v, &y.v)
	return Bint{z}, true
}

func (x Bint) quoRem(y Bint) (q, r Bint, ok bool) {
	if y.isZero() {
		return Bint{}, Bint{}, false
	}
	var qq, rr big.Int
	qq.QuoRem(&x.v, &y.v, &rr)
	return Bint{qq}, Bint{rr}, true
}

func (x Bint) lsh(shift int) (Bint, bool) {
	if shift <= 0 {
		return x, true
	}
	p := bintPow(shift)
	return x.mul(Bint{p})
}

func (x Bint) fsa(shift int, digit byte) (Bint, bool) {
	z, _ := x.lsh(shift)
	return z.add(Bint{*big.NewInt(int64(digitValue(digit)))})
}

func (x Bint) rshDown(shift int) (Bint, bool) {
	switch {
	case x.isZero():
		return Bint{}, false
	case shift <= 0:
		return x, false
	}
	y := bintPow(shift)
	q, r, _ := x.quoRem(Bint{y})
	return q, !r.isZero()
}

func (x Bint) rshUp(shift int) (Bint, bool) {
	switch {
	case x.isZero():
		return Bint{}, false
	case shift <= 0:
		return x, false
	}
	y := bintPow(shift)
	q, r, _ := x.quoRem(Bint{y})
	inexact := !r.isZero()
	if inexact {
		q, _ = q.add(Bint{*big.NewInt(1)})
	}
	return q, inexact
}

func (x Bint) rshHalfUp(shift int) (Bint, bool) {
	switch {
	case x.isZero():
		return Bint{}, false
	case shift <= 0:
		return x, false
	}
	y := bintPow(shift)
	q, r, _ := x.quoRem(Bint{y})
	inexact := !r.isZero()
	var doubled big.Int
	doubled.Lsh(&r.v, 1)
	if doubled.CmpAbs(&y) >= 0 {
		q, _ = q.add(Bint{*big.NewInt(1)})
	}
	return q, inexact
}

// rshHalfEven (Right Shift) computes x / 10^shift, rounding ties to even.
func (x Bint) rshHalfEven(shift int) (Bint, bool) {
	switch {
	case x.isZero():
		return Bint{}, false
	case shift <= 0:
		return x, false
	}
	y := bintPow(shift)
	q, r, _ := x.quoRem(Bint{y})
	inexact := !r.isZero()
	var doubled big.Int
	doubled.Lsh(&r.v, 1)
	switch doubled.CmpAbs(&y) {
	case -1:
		// below half, keep q
	case 0:
		if q.v.Bit(0) != 0 {
			q, _ = q.add(Bint{*big.NewInt(1)})
		}
	default:
		q, _ = q.add(Bint{*big.NewInt(1)})
	}
	return q, inexact
}

func (x Bint) setUint64(v uint64) Bint {
	var z big.Int
	z.SetUint64(v)
	return Bint{z}
}

func (x Bint) uint64() (uint64, bool) {
	if !x.v.IsUint64() {
		return 0, false
	}
	return x.v.Uint64(), true
}

func (x Bint) float64() float64 {
	f := new(big.Float).SetInt(&x.v)
	v, _ := f.Float64()
	return v
}

func (x Bint) string() string { return x.v.String() }
