package decimal

import "testing"

func TestRound_Down(t *testing.T) {
	tests := []struct {
		coef Fint
		prec int
		want Fint
	}{
		{coef: 12345, prec: 3, want: 123},
		{coef: 9999, prec: 3, want: 999},
		{coef: 100, prec: 3, want: 100},
		{coef: 5, prec: 3, want: 5},
	}
	for _, tt := range tests {
		z, _, _, _ := round(tt.coef, false, uint32(tt.prec), Down)
		if z != tt.want {
			t.Errorf("round(%v, Down, %v) = %v, want %v", tt.coef, tt.prec, z, tt.want)
		}
	}
}

func TestRound_Up(t *testing.T) {
	z, _, rounded, inexact := round(Fint(12301), false, 3, Up)
	if z != 124 {
		t.Errorf("round(12301, Up, 3) = %v, want 124", z)
	}
	if !rounded || !inexact {
		t.Errorf("round(12301, Up, 3) rounded=%v inexact=%v, want both true", rounded, inexact)
	}
}

func TestRound_HalfUp(t *testing.T) {
	tests := []struct {
		coef Fint
		want Fint
	}{
		{125, 13}, // tie rounds away from zero
		{124, 12},
		{126, 13},
	}
	for _, tt := range tests {
		z, _, _, _ := round(tt.coef, false, 2, HalfUp)
		if z != tt.want {
			t.Errorf("round(%v, HalfUp, 2) = %v, want %v", tt.coef, z, tt.want)
		}
	}
}

func TestRound_HalfEven(t *testing.T) {
	tests := []struct {
		coef Fint
		want Fint
	}{
		{125, 12}, // tie rounds to even
		{135, 14},
		{124, 12},
		{126, 13},
	}
	for _, tt := range tests {
		z, _, _, _ := round(tt.coef, false, 2, HalfEven)
		if z != tt.want {
			t.Errorf("round(%v, HalfEven, 2) = %v, want %v", tt.coef, z, tt.want)
		}
	}
}

func TestRound_NoOpWithinPrecision(t *testing.T) {
	z, shift, rounded, inexact := round(Fint(42), false, 9, HalfUp)
	if z != 42 || shift != 0 || rounded || inexact {
		t.Errorf("round(42, HalfUp, 9) = (%v, %v, %v, %v), want (42, 0, false, false)", z, shift, rounded, inexact)
	}
}

func TestRound_CarryToExtraDigit(t *testing.T) {
	// 999 rounded to 2 digits under HalfUp carries to 100 and trims one
	// more digit, adding one to shift beyond the first trim.
	z, shift, rounded, _ := round(Fint(999), false, 2, HalfUp)
	if z != 10 || shift != 2 {
		t.Errorf("round(999, HalfUp, 2) = (%v, %v), want (10, 2)", z, shift)
	}
	if !rounded {
		t.Errorf("round(999, HalfUp, 2) rounded = false, want true")
	}
}

func TestRoundingMode_String(t *testing.T) {
	tests := []struct {
		mode RoundingMode
		want string
	}{
		{HalfUp, "HalfUp"},
		{Down, "Down"},
		{Up, "Up"},
		{HalfEven, "HalfEven"},
		{Ceiling, "Ceiling"},
		{Floor, "Floor"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("%v.String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}
