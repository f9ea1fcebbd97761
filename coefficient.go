package decimal

// coefficient is the contract the decimal kernel needs from an unsigned
// integer backend. Fint, Wint and Bint each implement it for one of the
// three coefficient-width tiers: Decimal[Fint], Decimal[Wint] and
// Decimal[Bint] pick a tier at compile time via the type parameter.
//
// Every method is value-returning: implementations never mutate the
// receiver or the argument, so a coefficient value can be shared freely.
type coefficient[C any] interface {
	isZero() bool

	// prec returns the number of decimal digits in the value. prec
	// treats 0 as having no digits.
	prec() int

	// hasPrec reports whether the value has at least the given number of
	// decimal digits, without materializing prec() when it isn't needed.
	hasPrec(prec int) bool

	cmp(y C) int

	add(y C) (z C, ok bool)
	// sub computes x - y. Only called when x >= y; the result is
	// undefined otherwise.
	sub(y C) (z C, ok bool)
	mul(y C) (z C, ok bool)

	// quoRem computes q = floor(x/y), r = x - y*q. ok is false only for
	// y == 0; the decimal kernel never calls quoRem with a zero divisor,
	// but backends still report it defensively.
	quoRem(y C) (q, r C, ok bool)

	// lsh computes x * 10^shift, reporting overflow for the fixed-width
	// backends. shift <= 0 is a no-op.
	lsh(shift int) (z C, ok bool)

	// fsa (Fused Shift and Add) computes x * 10^shift + digit, the inner
	// loop of decimal-text parsing.
	fsa(shift int, digit byte) (z C, ok bool)

	// rshDown, rshUp, rshHalfUp and rshHalfEven compute x / 10^shift,
	// rounding toward zero, away from zero, half-away-from-zero, and
	// half-to-even respectively, reporting whether any discarded digit
	// was nonzero.
	rshDown(shift int) (z C, inexact bool)
	rshUp(shift int) (z C, inexact bool)
	rshHalfUp(shift int) (z C, inexact bool)
	rshHalfEven(shift int) (z C, inexact bool)

	setUint64(v uint64) C
	uint64() (v uint64, ok bool)
	float64() float64
	string() string
}

// digitValue converts an ASCII decimal digit to its numeric value, shared
// by each backend's fsa implementation.
func digitValue(b byte) byte {
	return b - '0'
}
