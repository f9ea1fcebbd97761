package decimal

// RoundingMode selects how the rounding engine discards digits once a
// coefficient exceeds the configured precision.
type RoundingMode uint8

const (
	// HalfUp rounds to the nearest digit, ties away from zero. The
	// default for every predefined policy.
	HalfUp RoundingMode = iota
	// Down truncates toward zero.
	Down
	// Up rounds away from zero whenever any discarded digit is nonzero.
	Up
	// HalfEven rounds to the nearest digit, ties to the even digit.
	HalfEven
	// Ceiling rounds toward positive infinity.
	Ceiling
	// Floor rounds toward negative infinity.
	Floor
	// HalfDown rounds to the nearest digit, ties toward zero.
	//
	// TODO: not yet implemented; falls back to HalfUp.
	HalfDown
	// ZeroFiveUp rounds toward zero unless doing so would leave a final
	// digit other than 0 or 5, in which case it rounds away from zero.
	//
	// TODO: not yet implemented; falls back to HalfUp, for the same
	// reason as HalfDown.
	ZeroFiveUp
)

func (m RoundingMode) String() string {
	switch m {
	case HalfUp:
		return "HalfUp"
	case Down:
		return "Down"
	case Up:
		return "Up"
	case HalfEven:
		return "HalfEven"
	case Ceiling:
		return "Ceiling"
	case Floor:
		return "Floor"
	case HalfDown:
		return "HalfDown"
	case ZeroFiveUp:
		return "ZeroFiveUp"
	default:
		return "RoundingMode(?)"
	}
}

// roundShift computes coef / 10^shift under mode, reporting whether any
// discarded digit was nonzero. It's the mode-dispatch core shared by
// round (which additionally caps the result to a target precision) and
// applyBounds (which uses it to rescale a coefficient when an exponent
// is clamped to a policy's bounds).
//
// neg is the sign of the decimal the coefficient belongs to; only
// Ceiling and Floor consult it, since rounding toward positive or
// negative infinity depends on the sign, while Down/Up/HalfUp/HalfEven
// are symmetric in the unsigned coefficient.
func roundShift[C coefficient[C]](coef C, neg bool, shift int, mode RoundingMode) (z C, inexact bool) {
	switch mode {
	case Down:
		return coef.rshDown(shift)
	case Up:
		return coef.rshUp(shift)
	case HalfEven:
		return coef.rshHalfEven(shift)
	case Ceiling:
		if neg {
			return coef.rshDown(shift)
		}
		return coef.rshUp(shift)
	case Floor:
		if neg {
			return coef.rshUp(shift)
		}
		return coef.rshDown(shift)
	case HalfDown, ZeroFiveUp:
		// See the TODOs on the RoundingMode constants above.
		return coef.rshHalfUp(shift)
	default:
		return coef.rshHalfUp(shift)
	}
}

// round reduces coef to at most prec significant digits under mode,
// returning the possibly narrower coefficient, the number of digits
// discarded (added to the exponent by the caller), and whether rounding
// actually changed anything and whether any discarded digit was nonzero.
func round[C coefficient[C]](coef C, neg bool, prec uint32, mode RoundingMode) (z C, shift int, rounded, inexact bool) {
	d := coef.prec()
	p := int(prec)
	if d <= p {
		return coef, 0, false, false
	}
	shift = d - p
	z, inexact = roundShift(coef, neg, shift, mode)
	// Rounding away from zero on an all-nines coefficient (e.g. 999
	// rounding up at precision 3) carries into one extra digit: the
	// result becomes an exact power of ten with one more digit than
	// requested, e.g. 999 -> 1000. The extra trailing digit is always a
	// single exact zero, so one more exact rshDown restores prec digits
	// without introducing further inexactness.
	if z.hasPrec(p + 1) {
		z, _ = z.rshDown(1)
		shift++
	}
	return z, shift, true, inexact
}

