package decimal

import (
	"math"
	"strconv"
)

// Bool reports d as a boolean: true if d is non-finite (NaN or
// Infinity), or if its magnitude is at least 1; false otherwise.
func (d Decimal[C]) Bool() bool {
	if d.isNaN || d.isInf {
		return true
	}
	if d.exp >= 0 {
		return !d.coef.isZero()
	}
	q, _ := d.coef.rshDown(int(-d.exp))
	return !q.isZero()
}

// Float64 converts d to the nearest binary floating-point value.
// Infinities and NaN map to the corresponding math.Inf/NaN states. A
// coefficient of fewer than 18 digits is converted to float64 and
// multiplied by 10^exponent in floating point; a coefficient of 18 or
// more digits, in any tier, is converted instead through
// strconv.ParseFloat on the formatted decimal text.
func (d Decimal[C]) Float64() float64 {
	switch {
	case d.isNaN:
		if d.sign == 1 {
			return -math.NaN()
		}
		return math.NaN()
	case d.isInf:
		if d.sign == 1 {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	if d.coef.hasPrec(18) {
		v, _ := strconv.ParseFloat(d.String(), 64)
		return v
	}
	v := d.coef.float64() * pow10f(int(d.exp))
	if d.sign == 1 {
		v = -v
	}
	return v
}

func pow10f(e int) float64 {
	v := 1.0
	switch {
	case e > 0:
		for i := 0; i < e; i++ {
			v *= 10
		}
	case e < 0:
		for i := 0; i < -e; i++ {
			v /= 10
		}
	}
	return v
}
