package decimal

import "fmt"

// Pos returns a copy of d unchanged.
func (d Decimal[C]) Pos() Decimal[C] { return d }

// Neg returns a copy of d with its sign flipped, unless d is a zero or a
// NaN, which keep their sign.
func (d Decimal[C]) Neg() Decimal[C] {
	if d.isNaN || (!d.isInf && d.coef.isZero()) {
		return d
	}
	d.sign = 1 - d.sign
	return d
}

// Abs returns the absolute value of d, implemented as Neg when d is
// negative.
func (d Decimal[C]) Abs() Decimal[C] {
	if d.sign == 1 {
		return d.Neg()
	}
	return d
}

// Incr adds one to d in place and returns d (Go has no operator
// overloading for custom types, so this stands in for a prefix ++).
func (d *Decimal[C]) Incr() *Decimal[C] {
	one := FromUint64[C](1, d.Policy())
	*d = d.Add(one)
	return d
}

// Decr subtracts one from d in place and returns d, the prefix --
// counterpart to Incr.
func (d *Decimal[C]) Decr() *Decimal[C] {
	one := FromUint64[C](1, d.Policy())
	*d = d.Sub(one)
	return d
}

// Add returns d + e. A zero result is negative only when both operands
// are negative, or when their signs differ and the policy's rounding
// mode is Floor.
func (d Decimal[C]) Add(e Decimal[C]) Decimal[C] { return addSub(d, e, false) }

// Sub returns d - e, implemented as addition with e's sign flipped —
// Neg already leaves NaN untouched, so NaN propagation falls out for free.
func (d Decimal[C]) Sub(e Decimal[C]) Decimal[C] { return addSub(d, e, true) }

// AddAssign is Add's in-place assignment form.
func (d *Decimal[C]) AddAssign(e Decimal[C]) { *d = d.Add(e) }

// SubAssign is Sub's in-place assignment form.
func (d *Decimal[C]) SubAssign(e Decimal[C]) { *d = d.Sub(e) }

func addSub[C coefficient[C]](d, e Decimal[C], subtract bool) Decimal[C] {
	if subtract {
		e = e.Neg()
	}
	policy := d.Policy()
	switch {
	case d.isNaN:
		return nan[C](d.sign, policy, Flags{})
	case e.isNaN:
		return nan[C](e.sign, policy, Flags{})
	case d.isInf || e.isInf:
		return addInf(d, e, policy)
	default:
		return addFinite(d, e, policy)
	}
}

func addInf[C coefficient[C]](d, e Decimal[C], policy Policy) Decimal[C] {
	switch {
	case d.isInf && e.isInf:
		if d.sign == e.sign {
			return inf[C](d.sign, policy, Flags{})
		}
		return nan[C](0, policy, Flags{InvalidOperation: true})
	case d.isInf:
		return inf[C](d.sign, policy, Flags{})
	default:
		return inf[C](e.sign, policy, Flags{})
	}
}

func addFinite[C coefficient[C]](d, e Decimal[C], policy Policy) Decimal[C] {
	dcoef, ecoef := d.coef, e.coef
	dexp, eexp := d.exp, e.exp
	switch {
	case dexp > eexp:
		dcoef = alignShift(dcoef, int(dexp-eexp), policy)
		dexp = eexp
	case eexp > dexp:
		ecoef = alignShift(ecoef, int(eexp-dexp), policy)
		eexp = dexp
	}
	exp := dexp

	var coef C
	var neg bool
	switch {
	case d.sign == e.sign:
		var ok bool
		coef, ok = dcoef.add(ecoef)
		if !ok {
			panic(fmt.Sprintf("decimal: coefficient overflow adding %s and %s", d, e))
		}
		neg = d.sign == 1
	default:
		switch dcoef.cmp(ecoef) {
		case 0:
			coef = zeroCoef[C]()
			neg = d.sign == 1 && e.sign == 1
			if d.sign != e.sign && policy.RoundingMode() == Floor {
				neg = true
			}
		case 1:
			coef, _ = dcoef.sub(ecoef)
			neg = d.sign == 1
		default:
			coef, _ = ecoef.sub(dcoef)
			neg = e.sign == 1
		}
	}
	return finite(neg, coef, exp, policy, Flags{})
}

// alignShift multiplies coef by 10^shift, aborting with a panic when the
// backend can't hold the aligned value. Bint never overflows here; the
// fixed-width Fint and Wint tiers do once the aligned coefficient needs
// more digits than they hold (e.g. adding 1E+50 and 1 as Decimal[Fint]).
func alignShift[C coefficient[C]](coef C, shift int, policy Policy) C {
	z, ok := coef.lsh(shift)
	if !ok {
		panic(fmt.Sprintf("decimal: insufficient storage to align exponents (shift=%d digits)", shift))
	}
	return z
}

// Mul returns d * e.
func (d Decimal[C]) Mul(e Decimal[C]) Decimal[C] {
	policy := d.Policy()
	switch {
	case d.isNaN:
		return nan[C](d.sign, policy, Flags{})
	case e.isNaN:
		return nan[C](e.sign, policy, Flags{})
	}
	sign := d.sign ^ e.sign
	switch {
	case d.isInf && e.isInf:
		return inf[C](sign, policy, Flags{})
	case d.isInf:
		if e.IsZero() {
			return nan[C](0, policy, Flags{InvalidOperation: true})
		}
		return inf[C](sign, policy, Flags{})
	case e.isInf:
		if d.IsZero() {
			return nan[C](0, policy, Flags{InvalidOperation: true})
		}
		return inf[C](sign, policy, Flags{})
	}
	coef, ok := d.coef.mul(e.coef)
	if !ok {
		panic(fmt.Sprintf("decimal: coefficient overflow multiplying %s and %s", d, e))
	}
	exp := d.exp + e.exp
	return finite(sign == 1, coef, exp, policy, Flags{})
}

// MulAssign is Mul's in-place assignment form.
func (d *Decimal[C]) MulAssign(e Decimal[C]) { *d = d.Mul(e) }

// Quo returns d / e. The dividend's coefficient is scaled up so that the
// integer quotient has at least P+1 digits, one quotient-and-remainder
// division produces it, and the rounding engine then rounds it to P
// digits (see longDivide).
func (d Decimal[C]) Quo(e Decimal[C]) Decimal[C] {
	policy := d.Policy()
	switch {
	case d.isNaN:
		return nan[C](d.sign, policy, Flags{})
	case e.isNaN:
		return nan[C](e.sign, policy, Flags{})
	}
	sign := d.sign ^ e.sign
	switch {
	case d.isInf && e.isInf:
		return nan[C](0, policy, Flags{InvalidOperation: true})
	case d.IsZero() && e.IsZero():
		return nan[C](0, policy, Flags{DivisionByZero: true})
	case d.isInf:
		return inf[C](sign, policy, Flags{})
	case e.isInf:
		return finite(sign == 1, zeroCoef[C](), 0, policy, Flags{})
	case e.IsZero():
		return inf[C](sign, policy, Flags{DivisionByZero: true, InvalidOperation: true})
	case d.IsZero():
		return finite(sign == 1, zeroCoef[C](), d.exp-e.exp, policy, Flags{})
	}
	return longDivide(d, e, sign == 1, policy)
}

// QuoAssign is Quo's in-place assignment form.
func (d *Decimal[C]) QuoAssign(e Decimal[C]) { *d = d.Quo(e) }

// longDivide aligns the dividend's coefficient up far enough that the
// integer quotient carries at least one guard digit past the target
// precision, then lets finite's rounding engine trim that guard digit
// off using the policy's configured mode.
func longDivide[C coefficient[C]](d, e Decimal[C], neg bool, policy Policy) Decimal[C] {
	p := int(policy.Precision())
	dcoef, ecoef := d.coef, e.coef
	exp := d.exp - e.exp

	if shift := p + 1 + ecoef.prec() - dcoef.prec(); shift > 0 {
		z, ok := dcoef.lsh(shift)
		if !ok {
			panic(fmt.Sprintf("decimal: insufficient storage dividing %s by %s", d, e))
		}
		dcoef = z
		exp -= int32(shift)
	}

	q, r, ok := dcoef.quoRem(ecoef)
	if !ok {
		panic(fmt.Sprintf("decimal: division by zero dividing %s by %s", d, e))
	}
	var extra Flags
	if !r.isZero() {
		extra.Inexact = true
	}
	return finite(neg, q, exp, policy, extra)
}

// QuoRem returns the quotient truncated toward zero and the remainder
// such that d = q*e + r.
func (d Decimal[C]) QuoRem(e Decimal[C]) (q, r Decimal[C]) {
	q = d.Quo(e).Trunc()
	r = d.Sub(q.Mul(e))
	return q, r
}

// Trunc truncates d to an integer, rounding toward zero, without
// consulting the rounding engine or touching flags.
func (d Decimal[C]) Trunc() Decimal[C] {
	if d.isNaN || d.isInf || d.exp >= 0 {
		return d
	}
	coef, _ := d.coef.rshDown(int(-d.exp))
	d.coef = coef
	d.exp = 0
	return d
}

// Reduce strips trailing zeros from the coefficient, lowering precision
// without changing the represented value.
func (d Decimal[C]) Reduce() Decimal[C] {
	if d.isNaN || d.isInf || d.coef.isZero() {
		return d
	}
	for {
		q, r, ok := d.coef.quoRem(zeroCoef[C]().setUint64(10))
		if !ok || !r.isZero() {
			break
		}
		d.coef = q
		d.exp++
	}
	return d
}

// Compare implements a total order that, unlike the General Decimal
// Arithmetic model this package otherwise follows, also orders NaNs, so
// that sorting a slice of Decimal[C] terminates with a sensible result
// instead of propagating NaN through the comparison.
func (d Decimal[C]) Compare(e Decimal[C]) int {
	switch {
	case d.isInf && e.isInf:
		return cmpSign(d.sign, e.sign)
	case d.isInf:
		if d.sign == 1 {
			return -1
		}
		return 1
	case e.isInf:
		if e.sign == 1 {
			return 1
		}
		return -1
	case d.isNaN && e.isNaN:
		return cmpSign(d.sign, e.sign)
	case d.isNaN:
		if d.sign == 1 {
			return -1
		}
		return 1
	case e.isNaN:
		if e.sign == 1 {
			return 1
		}
		return -1
	}
	if d.IsZero() && e.IsZero() {
		return 0
	}
	dsign, esign := d.Sign(), e.Sign()
	if dsign != esign {
		if dsign < esign {
			return -1
		}
		return 1
	}
	// Same sign: compare magnitudes by aligning exponents and comparing
	// coefficients directly rather than by subtracting — subtraction would
	// run the difference back through the rounding engine and could mask a
	// real but below-precision difference as equal.
	dcoef, ecoef := d.coef, e.coef
	switch {
	case e.exp < d.exp:
		if z, ok := dcoef.lsh(int(d.exp - e.exp)); ok {
			dcoef = z
		}
	case d.exp < e.exp:
		if z, ok := ecoef.lsh(int(e.exp - d.exp)); ok {
			ecoef = z
		}
	}
	switch dcoef.cmp(ecoef) {
	case 0:
		return 0
	case 1:
		return dsign
	default:
		return -dsign
	}
}

// cmpSign orders by sign bit alone: 0 (non-negative) greater than 1
// (negative), used once signs are already known to differ, or for the
// same-sign-class tie-breaks among infinities/NaNs where equal signs
// compare equal.
func cmpSign(dsign, esign uint8) int {
	switch {
	case dsign == esign:
		return 0
	case dsign == 1:
		return -1
	default:
		return 1
	}
}

// Equal reports whether d and e compare equal under Compare.
func (d Decimal[C]) Equal(e Decimal[C]) bool { return d.Compare(e) == 0 }

// Max returns whichever of d, e sorts greater under Compare.
func (d Decimal[C]) Max(e Decimal[C]) Decimal[C] {
	if d.Compare(e) >= 0 {
		return d
	}
	return e
}

// Min returns whichever of d, e sorts smaller under Compare.
func (d Decimal[C]) Min(e Decimal[C]) Decimal[C] {
	if d.Compare(e) <= 0 {
		return d
	}
	return e
}

// CopySign returns d with e's sign, subject to the same "zero and NaN
// keep their sign" exception Neg honors.
func (d Decimal[C]) CopySign(e Decimal[C]) Decimal[C] {
	if d.sign == e.sign {
		return d
	}
	return d.Neg()
}
