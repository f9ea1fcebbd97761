package decimal

import (
	"fmt"
	"testing"
)

func TestString(t *testing.T) {
	tests := []struct{ in, want string }{
		{"0", "0"},
		{"-0", "-0"},
		{"1.5", "1.5"},
		{"0.001", "0.001"},
		{"100", "100"},
		{"-3.14", "-3.14"},
	}
	for _, tt := range tests {
		got := mustParse(tt.in).String()
		if got != tt.want {
			t.Errorf("String(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
	if got := NaN[Fint](0, NoOp).String(); got != "NaN" {
		t.Errorf("String(NaN) = %s, want NaN", got)
	}
	if got := NaN[Fint](1, NoOp).String(); got != "-NaN" {
		t.Errorf("String(-NaN) = %s, want -NaN", got)
	}
	if got := Inf[Fint](0, NoOp).String(); got != "Infinity" {
		t.Errorf("String(Infinity) = %s, want Infinity", got)
	}
	if got := Inf[Fint](1, NoOp).String(); got != "-Infinity" {
		t.Errorf("String(-Infinity) = %s, want -Infinity", got)
	}
}

func TestAppend_NoScientificNotation(t *testing.T) {
	got := mustParse("100").String()
	if got != "100" {
		t.Errorf("String(100) = %s, want 100 (no scientific notation)", got)
	}
}

func TestMarshalUnmarshalText(t *testing.T) {
	d := mustParse("12.34")
	text, err := d.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	var e Decimal[Fint]
	if err := e.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if e.String() != "12.34" {
		t.Errorf("round trip = %s, want 12.34", e.String())
	}
}

func TestGoString(t *testing.T) {
	d := mustParse("5")
	got := d.GoString()
	want := "decimal.Decimal[decimal.Fint]{5}"
	if got != want {
		t.Errorf("GoString() = %s, want %s", got, want)
	}
}

func TestFormat_Verbs(t *testing.T) {
	d := mustParse("1.5")
	if got := fmt.Sprintf("%s", d); got != "1.5" {
		t.Errorf("%%s = %s, want 1.5", got)
	}
	if got := fmt.Sprintf("%v", d); got != "1.5" {
		t.Errorf("%%v = %s, want 1.5", got)
	}
	if got := fmt.Sprintf("%q", d); got != `"1.5"` {
		t.Errorf("%%q = %s, want \"1.5\"", got)
	}
}

func TestFormat_PrecisionVerb(t *testing.T) {
	tests := []struct {
		in   string
		verb string
		want string
	}{
		{"1.5", "%.2f", "1.50"},
		{"1", "%.3f", "1.000"},
		{"1.2345", "%.2f", "1.23"},
	}
	for _, tt := range tests {
		got := fmt.Sprintf(tt.verb, mustParse(tt.in))
		if got != tt.want {
			t.Errorf("Sprintf(%s, %s) = %s, want %s", tt.verb, tt.in, got, tt.want)
		}
	}
}
