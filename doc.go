/*
Package decimal implements exact base-10 decimal numbers modeled on
the [General Decimal Arithmetic] specification. It is intended as a
drop-in replacement for binary floating-point in domains where decimal
fidelity matters: financial computation, tabular data interchange,
user-facing arithmetic.

# Representation

[Decimal] is generic over a coefficient backend C:

	Decimal[Fint]  // Decimal9:   precision <= 9
	Decimal[Wint]  // Decimal19:  9 < precision <= 19
	Decimal[Bint]  // DecimalBig: precision > 19

A Decimal value is a sign, a coefficient of type C, a base-10 exponent,
and two non-finite states, NaN and signed Infinity. The numeric value of
a finite Decimal is:

	(-1)^sign * coefficient * 10^exponent

Decimal supports signed zero: +0 and -0 are distinct representations of
the same numeric value, and which one an operation produces is part of
its documented behavior (see [Decimal.Add]).

# Coefficient tiers

The coefficient backend is selected at compile time by which type
parameter a Decimal is instantiated with, not at runtime. Fint wraps a
native uint64 for precision up to 9 digits. Wint wraps a 128-bit unsigned
integer (github.com/lukechampine/uint128) for precision up to 19 digits.
Bint wraps [math/big.Int] for arbitrary precision. Pair each tier with a
[Policy] whose Precision() does not exceed what the tier can hold — the
Decimal9/Decimal19/DecimalBig aliases plus the four predefined policies
(Abort, Throw, HighPrecision, NoOp) keep that pairing straightforward.

# Policy and flags

Every operation is carried out under a [Policy]: a target precision, a
rounding mode, optional exponent bounds, and an optional set of [Hooks]
invoked when a sticky condition flag is set. The flags themselves
([Flags]) are carried on the result value, not in a package-level or
goroutine-local context — combining flags across a sequence of
operations is the caller's job, via [Flags.Merge].

The predefined policies cover the two usual postures for an exceptional
condition: Abort logs the condition via zerolog and terminates the
process; Throw raises a [FatalError] via panic instead. NoOp records
flags on the result and invokes no hook, for callers that want to poll
Flags explicitly.

# Parsing and formatting

[Parse] decodes decimal literals following the grammar documented on
that function. Parse never returns an error: malformed input becomes a
positive NaN with invalidOperation set, since NaN is already a
first-class Decimal state here. [ParseStrict] wraps Parse for callers
that want a Go error instead. [Decimal.String] and [Decimal.Append]
render the inverse of Parse's grammar; [Decimal.Format] additionally
implements [fmt.Formatter] for %s, %q and %f.

# Arithmetic

+, -, *, / and their in-place Assign forms follow the General Decimal
Arithmetic algorithms for NaN propagation, infinity handling, and
sign-of-zero. [Decimal.Compare] departs from
that model deliberately: its ordering is total, so that sorting a slice
of Decimals always terminates, instead of treating NaN as incomparable.

[General Decimal Arithmetic]: https://speleotrove.com/decimal/decarith.html
*/
package decimal
