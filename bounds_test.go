package decimal

import "testing"

func TestApplyBounds_OverflowRescalesCoefficientExactly(t *testing.T) {
	policy := WithBounds(NewPolicy(9, HalfUp), -3, 3)
	d := Parse[Fint]("1E+5", policy)
	if !d.Flags.Overflow {
		t.Fatalf("Parse(1E+5) under maxExponent=3: Overflow = false, want true")
	}
	if got := d.String(); got != "100000" {
		t.Errorf("Parse(1E+5) under maxExponent=3 = %s, want 100000 (clamping the exponent must not change the represented value)", got)
	}
}

func TestApplyBounds_UnderflowRescalesExactlyWhenNoDigitsLost(t *testing.T) {
	policy := WithBounds(NewPolicy(9, HalfUp), -3, 3)
	d := Parse[Fint]("0.00100", policy)
	if !d.Flags.Underflow || !d.Flags.Subnormal {
		t.Fatalf("Parse(0.00100) under minExponent=-3: Underflow=%v Subnormal=%v, want both true", d.Flags.Underflow, d.Flags.Subnormal)
	}
	if got := d.String(); got != "0.001" {
		t.Errorf("Parse(0.00100) under minExponent=-3 = %s, want 0.001 (rescale lost no digits, so the value must round-trip exactly)", got)
	}
}

func TestApplyBounds_UnderflowRoundsWhenDigitsAreLost(t *testing.T) {
	policy := WithBounds(NewPolicy(9, HalfUp), -3, 3)
	d := Parse[Fint]("1E-5", policy)
	if !d.Flags.Underflow || !d.Flags.Inexact {
		t.Fatalf("Parse(1E-5) under minExponent=-3: Underflow=%v Inexact=%v, want both true", d.Flags.Underflow, d.Flags.Inexact)
	}
	// 1E-5 rounded to the nearest multiple of 10^-3 under HalfUp is 0,
	// not a silently wrong nonzero value at the wrong magnitude.
	if !d.IsZero() {
		t.Errorf("Parse(1E-5) under minExponent=-3 = %s, want 0", d.String())
	}
}

func TestApplyBounds_NoBoundsIsNoOp(t *testing.T) {
	d := mustParse("1E+50")
	if d.Flags.Overflow || d.Flags.Underflow {
		t.Errorf("Parse with no configured bounds set Overflow/Underflow, want neither")
	}
}
