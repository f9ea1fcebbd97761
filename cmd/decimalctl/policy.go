package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/ledgerbase/decimal"
)

// roundingModes maps the config/flag spelling of a rounding mode to its
// decimal.RoundingMode value.
var roundingModes = map[string]decimal.RoundingMode{
	"Down":     decimal.Down,
	"Up":       decimal.Up,
	"HalfUp":   decimal.HalfUp,
	"HalfEven": decimal.HalfEven,
	"Ceiling":  decimal.Ceiling,
	"Floor":    decimal.Floor,
}

// loadPolicy builds a decimal.Policy from whatever viper resolved out of
// flags, the environment, and the config file, defaulting to precision 9
// and HalfUp. The policy has no hooks, so exceptional conditions are
// reported on the result's flags only. Unrecognized rounding mode names
// report an error rather than silently falling back to HalfUp.
func loadPolicy() (decimal.Policy, error) {
	precision := viper.GetUint32("precision")
	if precision == 0 {
		precision = 9
	}
	roundingName := viper.GetString("rounding")
	if roundingName == "" {
		roundingName = "HalfUp"
	}
	mode, ok := roundingModes[roundingName]
	if !ok {
		return nil, fmt.Errorf("unknown rounding mode %q", roundingName)
	}
	policy := decimal.NewPolicy(precision, mode)
	if viper.IsSet("minExponent") && viper.IsSet("maxExponent") {
		policy = decimal.WithBounds(policy, viper.GetInt32("minExponent"), viper.GetInt32("maxExponent"))
	}
	return policy, nil
}
