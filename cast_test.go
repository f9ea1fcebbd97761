package decimal

import (
	"math"
	"testing"
)

func TestBool(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"0", false},
		{"0.0001", false},
		{"0.5", false},
		{"1", true},
		{"-1", true},
		{"-0.9", false},
		{"1.5", true},
	}
	for _, tt := range tests {
		got := mustParse(tt.in).Bool()
		if got != tt.want {
			t.Errorf("Bool(%s) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if !NaN[Fint](0, NoOp).Bool() {
		t.Errorf("Bool(NaN) = false, want true")
	}
	if !Inf[Fint](0, NoOp).Bool() {
		t.Errorf("Bool(Infinity) = false, want true")
	}
}

func TestFloat64_Finite(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1", 1},
		{"0.5", 0.5},
		{"-2.25", -2.25},
		{"0", 0},
	}
	for _, tt := range tests {
		got := mustParse(tt.in).Float64()
		if got != tt.want {
			t.Errorf("Float64(%s) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFloat64_NaNAndInf(t *testing.T) {
	if v := NaN[Fint](0, NoOp).Float64(); !math.IsNaN(v) {
		t.Errorf("Float64(NaN) = %v, want NaN", v)
	}
	if v := Inf[Fint](0, NoOp).Float64(); v != math.Inf(1) {
		t.Errorf("Float64(Infinity) = %v, want +Inf", v)
	}
	if v := Inf[Fint](1, NoOp).Float64(); v != math.Inf(-1) {
		t.Errorf("Float64(-Infinity) = %v, want -Inf", v)
	}
}

func TestFloat64_BintRoutesThroughParseFloat(t *testing.T) {
	d := MustParse[Bint]("123456789012345678.5", HighPrecision)
	got := d.Float64()
	want := 123456789012345678.5
	if math.Abs(got-want) > want*1e-12 {
		t.Errorf("Float64(big) = %v, want approximately %v", got, want)
	}
}
