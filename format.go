package decimal

import "fmt"

// Append appends the minimal unadorned decimal text for d to dst and
// returns the extended slice, an allocation-free alternative to String
// for callers building up a larger buffer.
func (d Decimal[C]) Append(dst []byte) []byte {
	if d.sign == 1 {
		dst = append(dst, '-')
	}
	switch {
	case d.isNaN:
		return append(dst, "NaN"...)
	case d.isInf:
		return append(dst, "Infinity"...)
	}
	s := d.coef.string()
	e := int(d.exp)
	switch {
	case e == 0:
		return append(dst, s...)
	case e > 0:
		dst = append(dst, s...)
		for i := 0; i < e; i++ {
			dst = append(dst, '0')
		}
		return dst
	default:
		ae := -e
		if ae < len(s) {
			point := len(s) - ae
			dst = append(dst, s[:point]...)
			dst = append(dst, '.')
			dst = append(dst, s[point:]...)
			return dst
		}
		dst = append(dst, '0', '.')
		for i := 0; i < ae-len(s); i++ {
			dst = append(dst, '0')
		}
		return append(dst, s...)
	}
}

// String renders d using Append.
func (d Decimal[C]) String() string {
	return string(d.Append(nil))
}

// MarshalText implements encoding.TextMarshaler.
func (d Decimal[C]) MarshalText() ([]byte, error) {
	return d.Append(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It parses text under
// d's existing policy, or Abort if d is the zero value.
func (d *Decimal[C]) UnmarshalText(text []byte) error {
	*d = Parse[C](string(text), d.Policy())
	return nil
}

// GoString supports %#v.
func (d Decimal[C]) GoString() string {
	return fmt.Sprintf("decimal.Decimal[%T]{%s}", d.coef, d.String())
}

// Format implements fmt.Formatter: %s and %v print the plain decimal
// text, %q quotes it, and %f rounds to the requested number of
// fractional digits first (truncating toward zero, the way Trunc does,
// rather than consulting the value's policy).
func (d Decimal[C]) Format(state fmt.State, verb rune) {
	switch verb {
	case 'f', 'F':
		scale := -int(d.exp)
		if scale < 0 {
			scale = 0
		}
		if p, ok := state.Precision(); ok {
			scale = p
		}
		fmt.Fprint(state, string(roundToScale(d, scale).Append(nil)))
	case 'q':
		fmt.Fprintf(state, "%q", d.String())
	default:
		fmt.Fprint(state, d.String())
	}
}

// roundToScale truncates d to exactly `scale` fractional digits, padding
// with zeros if d has fewer, independent of d's policy — the fixed-width
// rendering %f needs, as opposed to Trunc's policy-free integer rounding.
func roundToScale[C coefficient[C]](d Decimal[C], scale int) Decimal[C] {
	if d.isNaN || d.isInf {
		return d
	}
	target := int32(-scale)
	switch {
	case d.exp == target:
		return d
	case d.exp > target:
		coef, ok := d.coef.lsh(int(d.exp - target))
		if !ok {
			return d
		}
		d.coef = coef
		d.exp = target
		return d
	default:
		coef, _ := d.coef.rshDown(int(target - d.exp))
		d.coef = coef
		d.exp = target
		return d
	}
}
