package decimal

import "fmt"

// Decimal is an exact base-10 floating-point value: a signed coefficient
// of type C paired with a base-10 exponent, plus two non-finite states
// (NaN, Infinity) and a set of sticky condition flags.
//
// C fixes the coefficient-width tier at compile time: Decimal[Fint] for
// precision <= 9, Decimal[Wint] for 9 < precision <= 19, and
// Decimal[Bint] for precision > 19. A Decimal's Policy determines which
// precision it is actually rounded to within that tier. Pairing a Policy
// with the wrong tier (e.g. precision 30 with Decimal[Fint]) still
// compiles, but results are not rounded to fit the tier: once a
// coefficient outgrows the tier's native width, Parse returns a NaN with
// invalidOperation set and arithmetic panics with a coefficient overflow.
// Use the Decimal9/Decimal19/DecimalBig aliases below with the matching
// predefined policy to avoid that mismatch.
type Decimal[C coefficient[C]] struct {
	// Flags are the eight sticky condition flags from the most recent
	// operation that produced this value. They are public and
	// read-write; ResetFlags clears them.
	Flags Flags

	policy Policy
	sign   uint8
	isNaN  bool
	isInf  bool
	coef   C
	exp    int32
}

// Decimal9, Decimal19 and DecimalBig name the three coefficient tiers for
// callers that don't want to spell out the type parameter.
type (
	Decimal9   = Decimal[Fint]
	Decimal19  = Decimal[Wint]
	DecimalBig = Decimal[Bint]
)

// Policy returns the policy the value was produced under.
func (d Decimal[C]) Policy() Policy {
	if d.policy == nil {
		return Abort
	}
	return d.policy
}

// IsNaN reports whether d is NaN.
func (d Decimal[C]) IsNaN() bool { return d.isNaN }

// IsInf reports whether d is a signed Infinity.
func (d Decimal[C]) IsInf() bool { return d.isInf }

// IsZero reports whether d is a finite zero, of either sign.
func (d Decimal[C]) IsZero() bool { return !d.isNaN && !d.isInf && d.coef.isZero() }

// IsPos reports whether d is a finite value or Infinity strictly greater
// than zero.
func (d Decimal[C]) IsPos() bool { return d.sign == 0 && !d.isNaN && !d.IsZero() }

// IsNeg reports whether d is a finite value or Infinity strictly less
// than zero.
func (d Decimal[C]) IsNeg() bool { return d.sign == 1 && !d.isNaN && !d.IsZero() }

// SignBit returns the raw sign bit (0 for non-negative, 1 for negative),
// which, unlike Sign, distinguishes +0 from -0.
func (d Decimal[C]) SignBit() uint8 { return d.sign }

// Sign returns -1, 0 or +1: 0 for any zero regardless of its sign bit.
func (d Decimal[C]) Sign() int {
	switch {
	case d.isNaN:
		return 0
	case d.IsZero():
		return 0
	case d.sign == 1:
		return -1
	default:
		return 1
	}
}

// IsInt reports whether d is a finite value with no fractional digits.
func (d Decimal[C]) IsInt() bool {
	if d.isNaN || d.isInf {
		return false
	}
	if d.exp >= 0 {
		return true
	}
	_, inexact := d.coef.rshDown(int(-d.exp))
	return !inexact
}

// ResetFlags clears every flag on d in place.
func (d *Decimal[C]) ResetFlags() { d.Flags.Reset() }

// Snapshot returns the backend-independent description of d that policy
// hooks receive.
func (d Decimal[C]) Snapshot() Snapshot {
	return Snapshot{
		Sign:        d.sign,
		IsNaN:       d.isNaN,
		IsInf:       d.isInf,
		Coefficient: d.coef.string(),
		Exponent:    d.exp,
		Flags:       d.Flags,
	}
}

// Dup returns a copy of d. Decimal[C] is already an immutable value
// type, so Dup is a plain value copy.
func (d Decimal[C]) Dup() Decimal[C] { return d }

// IDup is Dup's immutable-copy counterpart; in Go both are the same
// value copy, since Decimal[C] carries no mutable shared state.
func (d Decimal[C]) IDup() Decimal[C] { return d }

func zeroCoef[C coefficient[C]]() C {
	var z C
	return z
}

// finite builds a finite Decimal[C], running the coefficient through the
// rounding engine and the policy's exponent bounds, and invoking any
// hooks the newly-set flags trigger. extra carries flags the caller
// already determined (e.g. inexact from a nonzero division remainder)
// before rounding is applied.
func finite[C coefficient[C]](neg bool, coef C, exp int32, policy Policy, extra Flags) Decimal[C] {
	flags := extra
	if !coef.isZero() {
		z, shift, rounded, inexact := round(coef, neg, policy.Precision(), policy.RoundingMode())
		coef = z
		exp += int32(shift)
		flags.Rounded = flags.Rounded || rounded
		flags.Inexact = flags.Inexact || inexact
	}
	// The sign of a zero coefficient survives untouched here: zero
	// carries a real sign bit, distinguishing +0 from -0.
	coef, exp = applyBounds(&flags, coef, neg, exp, policy)
	d := Decimal[C]{Flags: flags, policy: policy, sign: boolSign(neg), coef: coef, exp: exp}
	invokeHooks(policy, flags, d.Snapshot())
	return d
}

// applyBounds raises overflow/underflow/subnormal/clamped once the
// result's exponent falls outside the policy's configured bounds, and
// rescales coef by the same number of decimal places the exponent
// moves, so clamping the exponent never silently changes the
// represented value by orders of magnitude. Absent bounds (the default
// for all four predefined policies), it is a no-op.
func applyBounds[C coefficient[C]](flags *Flags, coef C, neg bool, exp int32, policy Policy) (C, int32) {
	minExp, maxExp, ok := policy.Bounds()
	if !ok {
		return coef, exp
	}
	switch {
	case exp > maxExp:
		flags.Overflow = true
		flags.Inexact = true
		flags.Rounded = true
		shift := int(exp - maxExp)
		z, ok := coef.lsh(shift)
		if !ok {
			panic(fmt.Sprintf("decimal: coefficient overflow clamping exponent %d to %d", exp, maxExp))
		}
		return z, maxExp
	case exp < minExp:
		flags.Underflow = true
		flags.Inexact = true
		flags.Rounded = true
		flags.Subnormal = true
		shift := int(minExp - exp)
		z, _ := roundShift(coef, neg, shift, policy.RoundingMode())
		return z, minExp
	}
	return coef, exp
}

func invokeHooks(policy Policy, flags Flags, snap Snapshot) {
	h := policy.Hooks()
	if flags.InvalidOperation && h.OnInvalidOperation != nil {
		h.OnInvalidOperation(snap)
	}
	if flags.DivisionByZero && h.OnDivisionByZero != nil {
		h.OnDivisionByZero(snap)
	}
	if flags.Overflow && h.OnOverflow != nil {
		h.OnOverflow(snap)
	}
	if flags.Underflow && h.OnUnderflow != nil {
		h.OnUnderflow(snap)
	}
	if flags.Subnormal && h.OnSubnormal != nil {
		h.OnSubnormal(snap)
	}
	if flags.Clamped && h.OnClamped != nil {
		h.OnClamped(snap)
	}
	// Inexact is reported before Rounded. A rounding that discards a
	// nonzero digit sets both; one that discards only zeros sets Rounded
	// alone.
	if flags.Inexact && h.OnInexact != nil {
		h.OnInexact(snap)
	}
	if flags.Rounded && h.OnRounded != nil {
		h.OnRounded(snap)
	}
}

func boolSign(neg bool) uint8 {
	if neg {
		return 1
	}
	return 0
}

// nan builds a NaN Decimal[C] with the given sign and flags.
func nan[C coefficient[C]](sign uint8, policy Policy, flags Flags) Decimal[C] {
	d := Decimal[C]{Flags: flags, policy: policy, sign: sign, isNaN: true}
	invokeHooks(policy, flags, d.Snapshot())
	return d
}

// inf builds a signed Infinity Decimal[C].
func inf[C coefficient[C]](sign uint8, policy Policy, flags Flags) Decimal[C] {
	d := Decimal[C]{Flags: flags, policy: policy, sign: sign, isInf: true}
	invokeHooks(policy, flags, d.Snapshot())
	return d
}

// NaN returns a NaN with the given sign bit under policy.
func NaN[C coefficient[C]](sign uint8, policy Policy) Decimal[C] {
	return nan[C](sign, policy, Flags{})
}

// Inf returns a signed Infinity under policy.
func Inf[C coefficient[C]](sign uint8, policy Policy) Decimal[C] {
	return inf[C](sign, policy, Flags{})
}

// Zero returns the finite value 0 under policy.
func Zero[C coefficient[C]](policy Policy) Decimal[C] {
	return finite[C](false, zeroCoef[C](), 0, policy, Flags{})
}

// FromUint64 constructs a finite decimal equal to v.
func FromUint64[C coefficient[C]](v uint64, policy Policy) Decimal[C] {
	var c C
	c = c.setUint64(v)
	return finite(false, c, 0, policy, Flags{})
}

// FromInt64 constructs a finite decimal equal to v.
func FromInt64[C coefficient[C]](v int64, policy Policy) Decimal[C] {
	neg := v < 0
	u := uint64(v)
	if neg {
		u = uint64(-v)
	}
	var c C
	c = c.setUint64(u)
	return finite(neg, c, 0, policy, Flags{})
}

const maxFloat64Finite = 1.7976931348623157e+308

// FromFloat64 constructs a decimal from a binary floating-point value.
// Infinity and NaN map to the corresponding Decimal states. Finite
// values are reconstructed digit by digit: the integer part seeds the
// coefficient, then while a fractional remainder remains, it's
// multiplied by 10 and the exponent decremented, rather than going
// through strconv — this is slower and loses precision past float64's
// ~17 significant digits, which is why text construction is the
// preferred path for anything that matters.
func FromFloat64[C coefficient[C]](v float64, policy Policy) Decimal[C] {
	switch {
	case v != v: // NaN
		return NaN[C](0, policy)
	case v > maxFloat64Finite || v < -maxFloat64Finite:
		return Inf[C](boolSign(v < 0), policy)
	}
	neg := v < 0
	if neg {
		v = -v
	}
	intPart := float64(int64(v))
	frac := v - intPart
	var c C
	c = c.setUint64(uint64(intPart))
	exp := int32(0)
	// At most 17 fractional digits are taken, whether or not the
	// remainder has reached zero by then.
	for i := 0; i < 17 && frac != 0; i++ {
		frac *= 10
		digit := uint64(frac)
		frac -= float64(digit)
		shifted, ok := c.lsh(1)
		if !ok {
			break
		}
		c, ok = shifted.add(zeroCoef[C]().setUint64(digit))
		if !ok {
			break
		}
		exp--
	}
	return finite(neg, c, exp, policy, Flags{})
}
