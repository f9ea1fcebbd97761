package decimal

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// Flags are the eight sticky condition flags a Decimal carries. They are
// fields on the result value, not a process-wide context: combining
// flags across a computation is the caller's job via plain OR, see
// Flags.Merge.
type Flags struct {
	Clamped           bool
	DivisionByZero    bool
	Inexact           bool
	InvalidOperation  bool
	Overflow          bool
	Rounded           bool
	Subnormal         bool
	Underflow         bool
}

// Reset clears every flag, matching Decimal[C].ResetFlags.
func (f *Flags) Reset() { *f = Flags{} }

// Any reports whether any flag is set.
func (f Flags) Any() bool {
	return f.Clamped || f.DivisionByZero || f.Inexact || f.InvalidOperation ||
		f.Overflow || f.Rounded || f.Subnormal || f.Underflow
}

// Merge ORs g's flags into a copy of f, for callers that want cumulative
// flag tracking across a computation.
func (f Flags) Merge(g Flags) Flags {
	f.Clamped = f.Clamped || g.Clamped
	f.DivisionByZero = f.DivisionByZero || g.DivisionByZero
	f.Inexact = f.Inexact || g.Inexact
	f.InvalidOperation = f.InvalidOperation || g.InvalidOperation
	f.Overflow = f.Overflow || g.Overflow
	f.Rounded = f.Rounded || g.Rounded
	f.Subnormal = f.Subnormal || g.Subnormal
	f.Underflow = f.Underflow || g.Underflow
	return f
}

// Snapshot is the value a policy hook receives once a flag is set on a
// Decimal[C]. It's a plain, backend-independent description rather than
// the generic Decimal[C] itself, so Policy (and every Hooks field) stays
// a single, non-generic type shared by all three coefficient tiers.
type Snapshot struct {
	Sign        uint8
	IsNaN       bool
	IsInf       bool
	Coefficient string
	Exponent    int32
	Flags       Flags
}

func (s Snapshot) String() string {
	switch {
	case s.IsNaN:
		if s.Sign == 1 {
			return "-NaN"
		}
		return "NaN"
	case s.IsInf:
		if s.Sign == 1 {
			return "-Infinity"
		}
		return "Infinity"
	default:
		sign := ""
		if s.Sign == 1 {
			sign = "-"
		}
		return fmt.Sprintf("%s%sE%+d", sign, s.Coefficient, s.Exponent)
	}
}

// Hooks bundles the eight optional per-condition callbacks. A nil field
// means "absent": the caller pays only a nil check, not a call.
type Hooks struct {
	OnClamped          func(Snapshot)
	OnRounded          func(Snapshot)
	OnInexact          func(Snapshot)
	OnDivisionByZero   func(Snapshot)
	OnInvalidOperation func(Snapshot)
	OnOverflow         func(Snapshot)
	OnSubnormal        func(Snapshot)
	OnUnderflow        func(Snapshot)
}

// Policy bundles a Decimal's configuration: precision, rounding mode,
// optional exponent bounds, and the optional hooks above. Decimal[C]
// stores a Policy value directly rather than a type parameter, since the
// hooks need to close over arbitrary state (a logger, a counter, a
// channel) that a type parameter can't express; the three coefficient
// backends remain the compile-time axis, selected by which Decimal[C]
// alias a Policy is paired with.
type Policy interface {
	Precision() uint32
	RoundingMode() RoundingMode
	// Bounds returns the configured exponent bounds. ok is false when no
	// bounds are configured, in which case overflow/underflow/subnormal/
	// clamped are never observable.
	Bounds() (min, max int32, ok bool)
	Hooks() Hooks
}

// simplePolicy is the concrete Policy implementation backing the four
// predefined policies; it's also usable directly for ad hoc policies.
type simplePolicy struct {
	precision uint32
	mode      RoundingMode
	minExp    int32
	maxExp    int32
	hasBounds bool
	hooks     Hooks
}

func (p simplePolicy) Precision() uint32          { return p.precision }
func (p simplePolicy) RoundingMode() RoundingMode { return p.mode }
func (p simplePolicy) Bounds() (int32, int32, bool) {
	return p.minExp, p.maxExp, p.hasBounds
}
func (p simplePolicy) Hooks() Hooks { return p.hooks }

// NewPolicy builds a Policy with no exponent bounds and no hooks, the
// shape most ad hoc policies need.
func NewPolicy(precision uint32, mode RoundingMode) Policy {
	return simplePolicy{precision: precision, mode: mode}
}

// WithBounds returns a copy of p with exponent bounds configured.
func WithBounds(p Policy, min, max int32) Policy {
	sp := asSimplePolicy(p)
	sp.minExp, sp.maxExp, sp.hasBounds = min, max, true
	return sp
}

// WithHooks returns a copy of p with h installed as its hook set.
func WithHooks(p Policy, h Hooks) Policy {
	sp := asSimplePolicy(p)
	sp.hooks = h
	return sp
}

func asSimplePolicy(p Policy) simplePolicy {
	if sp, ok := p.(simplePolicy); ok {
		return sp
	}
	min, max, ok := p.Bounds()
	return simplePolicy{precision: p.Precision(), mode: p.RoundingMode(), minExp: min, maxExp: max, hasBounds: ok, hooks: p.Hooks()}
}

// abortLog is the logger the Abort policy's hooks report through before
// terminating. zerolog.Fatal() calls os.Exit(1) after writing the event,
// so process termination falls out of the logging call itself rather
// than a separate os.Exit.
var abortLog = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

func abortHook(condition string) func(Snapshot) {
	return func(s Snapshot) {
		abortLog.Fatal().Str("condition", condition).Stringer("value", s).Msg("decimal: exceptional condition")
	}
}

// exceptionalHooks installs build's hook on the four conditions that
// signal a result could not faithfully represent the exact mathematical
// answer at all (an undefined operation, a division by zero, or a value
// that fell outside the configured exponent bounds). Rounded/Inexact/
// Subnormal/Clamped are left nil: those fire on routine, expected
// arithmetic (e.g. any repeating-decimal division), and a policy that
// aborts the process or panics on every one of those would make ordinary
// division of "1" by "3" fatal.
func exceptionalHooks(build func(condition string) func(Snapshot)) Hooks {
	return Hooks{
		OnDivisionByZero:   build("divisionByZero"),
		OnInvalidOperation: build("invalidOperation"),
		OnOverflow:         build("overflow"),
		OnUnderflow:        build("underflow"),
	}
}

// Abort is the default policy: precision 9, HalfUp, and only the
// exceptional conditions above abort the process via a zerolog.Fatal
// event. Rounded/Inexact/Subnormal/Clamped are reported on the result's
// Flags only, the same as under NoOp.
var Abort Policy = simplePolicy{precision: 9, mode: HalfUp, hooks: exceptionalHooks(abortHook)}

// Throw mirrors Abort but raises a *FatalError via panic instead of
// terminating the process outright.
var Throw Policy = simplePolicy{precision: 9, mode: HalfUp, hooks: exceptionalHooks(throwHook)}

// HighPrecision raises precision to 64 digits (landing in the Bint tier)
// while keeping Abort's HalfUp-and-terminate behavior.
var HighPrecision Policy = simplePolicy{precision: 64, mode: HalfUp, hooks: exceptionalHooks(abortHook)}

// NoOp records every condition on the result's Flags and does nothing
// else: no hook is installed, so the flag check compiles down to a nil
// comparison on the call site.
var NoOp Policy = simplePolicy{precision: 9, mode: HalfUp}
