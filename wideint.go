package decimal

import (
	"math/big"

	"lukechampine.com/uint128"
)

// Wint (Wide INTeger) is the coefficient backend for 9 < precision <= 19,
// a middle tier between the native uint64 backend and math/big. It is
// backed by a real third-party 128-bit unsigned integer type instead of
// a hand-rolled lo/hi pair.
type Wint uint128.Uint128

func (x Wint) u128() uint128.Uint128 { return uint128.Uint128(x) }

// wintPow10 is a cache of powers of ten up to 10^38, the largest power of
// ten that fits in 128 bits.
var wintPow10 = func() [39]Wint {
	var pows [39]Wint
	pows[0] = Wint(uint128.From64(1))
	for i := 1; i < len(pows); i++ {
		pows[i] = Wint(pows[i-1].u128().Mul64(10))
	}
	return pows
}()

func (x Wint) isZero() bool { return x.u128().IsZero() }

func (x Wint) prec() int {
	left, right := 0, len(wintPow10)
	for left < right {
		mid := (left + right) / 2
		if x.cmp(wintPow10[mid]) < 0 {
			right = mid
		} else {
			left = mid + 1
		}
	}
	return left
}

func (x Wint) hasPrec(prec int) bool {
	switch {
	case prec < 1:
		return true
	case prec > len(wintPow10):
		return false
	default:
		return x.cmp(wintPow10[prec-1]) >= 0
	}
}

func (x Wint) cmp(y Wint) int { return x.u128().Cmp(y.u128()) }

func (x Wint) add(y Wint) (Wint, bool) {
	z := x.u128().AddWrap(y.u128())
	if z.Cmp(x.u128()) < 0 {
		return Wint{}, false
	}
	return Wint(z), true
}

func (x Wint) sub(y Wint) (Wint, bool) {
	if x.cmp(y) < 0 {
		return Wint{}, false
	}
	return Wint(x.u128().Sub(y.u128())), true
}

func (x Wint) mul(y Wint) (Wint, bool) {
	if x.isZero() || y.isZero() {
		return Wint{}, true
	}
	z := x.u128().MulWrap(y.u128())
	q, _ := z.QuoRem(y.u128())
	if q.Cmp(x.u128()) != 0 {
		return Wint{}, false
	}
	return Wint(z), true
}

func (x Wint) quoRem(y Wint) (q, r Wint, ok bool) {
	if y.isZero() {
		return Wint{}, Wint{}, false
	}
	qq, rr := x.u128().QuoRem(y.u128())
	return Wint(qq), Wint(rr), true
}

func (x Wint) lsh(shift int) (Wint, bool) {
	switch {
	case shift <= 0:
		return x, true
	case shift >= len(wintPow10):
		return Wint{}, false
	}
	return x.mul(wintPow10[shift])
}

func (x Wint) fsa(shift int, digit byte) (Wint, bool) {
	z, ok := x.lsh(shift)
	if !ok {
		return Wint{}, false
	}
	return z.add(Wint(uint128.From64(uint64(digitValue(digit)))))
}

func (x Wint) rshDown(shift int) (Wint, bool) {
	switch {
	case x.isZero():
		return Wint{}, false
	case shift <= 0:
		return x, false
	case shift >= len(wintPow10):
		return Wint{}, true
	}
	q, r := x.u128().QuoRem(wintPow10[shift].u128())
	return Wint(q), !r.IsZero()
}

func (x Wint) rshUp(shift int) (Wint, bool) {
	switch {
	case x.isZero():
		return Wint{}, false
	case shift <= 0:
		return x, false
	case shift >= len(wintPow10):
		return Wint(uint128.From64(1)), true
	}
	q, r := x.u128().QuoRem(wintPow10[shift].u128())
	if !r.IsZero() {
		q = q.Add64(1)
	}
	return Wint(q), !r.IsZero()
}

func (x Wint) rshHalfUp(shift int) (Wint, bool) {
	switch {
	case x.isZero():
		return Wint{}, false
	case shift <= 0:
		return x, false
	case shift >= len(wintPow10):
		return Wint{}, true
	}
	y := wintPow10[shift].u128()
	q, r := x.u128().QuoRem(y)
	if r.Mul64(2).Cmp(y) >= 0 {
		q = q.Add64(1)
	}
	return Wint(q), !r.IsZero()
}

// rshHalfEven (Right Shift) computes x / 10^shift, rounding ties to even.
func (x Wint) rshHalfEven(shift int) (Wint, bool) {
	switch {
	case x.isZero():
		return Wint{}, false
	case shift <= 0:
		return x, false
	case shift >= len(wintPow10):
		return Wint{}, true
	}
	y := wintPow10[shift].u128()
	q, r := x.u128().QuoRem(y)
	half := y.Rsh(1)
	isOdd := q.Mod64(2) != 0
	if half.Cmp(r) < 0 || (half.Cmp(r) == 0 && isOdd) {
		q = q.Add64(1)
	}
	return Wint(q), !r.IsZero()
}

func (x Wint) setUint64(v uint64) Wint { return Wint(uint128.From64(v)) }

func (x Wint) uint64() (uint64, bool) {
	u := x.u128()
	if u.Hi != 0 {
		return 0, false
	}
	return u.Lo, true
}

func (x Wint) float64() float64 {
	f := new(big.Float).SetInt(x.u128().Big())
	v, _ := f.Float64()
	return v
}

func (x Wint) string() string { return x.u128().String() }
