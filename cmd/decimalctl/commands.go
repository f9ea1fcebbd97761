package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerbase/decimal"
)

var cache *parseCache

func getCache() *parseCache {
	if cache == nil {
		c, err := newParseCache()
		if err != nil {
			panic(err)
		}
		cache = c
	}
	return cache
}

func parseArg(arg string, policy decimal.Policy) decimal.DecimalBig {
	return getCache().parse(arg, policy)
}

func printResult(d decimal.DecimalBig) {
	fmt.Println(d.String())
	if d.Flags.Any() {
		fmt.Printf("flags: %+v\n", d.Flags)
	}
}

var parseCmd = &cobra.Command{
	Use:   "parse <literal>",
	Short: "Parse a decimal literal and print its normalized form and flags",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		policy, err := loadPolicy()
		if err != nil {
			return err
		}
		printResult(parseArg(args[0], policy))
		return nil
	},
}

func binaryOpCmd(use, short string, op func(d, e decimal.DecimalBig) decimal.DecimalBig) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			policy, err := loadPolicy()
			if err != nil {
				return err
			}
			d := parseArg(args[0], policy)
			e := parseArg(args[1], policy)
			printResult(op(d, e))
			return nil
		},
	}
}

var addCmd = binaryOpCmd("add <x> <y>", "Add two decimals", decimal.DecimalBig.Add)
var subCmd = binaryOpCmd("sub <x> <y>", "Subtract two decimals", decimal.DecimalBig.Sub)
var mulCmd = binaryOpCmd("mul <x> <y>", "Multiply two decimals", decimal.DecimalBig.Mul)
var quoCmd = binaryOpCmd("quo <x> <y>", "Divide two decimals", decimal.DecimalBig.Quo)

var cmpCmd = &cobra.Command{
	Use:   "cmp <x> <y>",
	Short: "Compare two decimals: prints -1, 0 or 1",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		policy, err := loadPolicy()
		if err != nil {
			return err
		}
		d := parseArg(args[0], policy)
		e := parseArg(args[1], policy)
		fmt.Println(d.Compare(e))
		return nil
	},
}
