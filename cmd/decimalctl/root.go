package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configFile   string
	precisionArg uint32
	roundingArg  string
)

var rootCmd = &cobra.Command{
	Use:   "decimalctl",
	Short: "Parse, format and compute with exact base-10 decimals",
	Long: `decimalctl is a demo CLI around the decimal package: it parses
decimal literals, prints their sticky condition flags, and runs the four
arithmetic operations under a policy loaded from flags, environment
variables or a config file.`,
	Version: "0.1.0-dev",
}

// Execute runs rootCmd, whose child commands are added in init. Called
// once from main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "decimalctl: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: $HOME/.decimalctl.yaml)")
	rootCmd.PersistentFlags().Uint32Var(&precisionArg, "precision", 9, "coefficient precision in decimal digits")
	rootCmd.PersistentFlags().StringVar(&roundingArg, "rounding", "HalfUp", "rounding mode: Down, Up, HalfUp, HalfEven, Ceiling, Floor")

	viper.BindPFlag("precision", rootCmd.PersistentFlags().Lookup("precision"))
	viper.BindPFlag("rounding", rootCmd.PersistentFlags().Lookup("rounding"))

	rootCmd.AddCommand(parseCmd, addCmd, subCmd, mulCmd, quoCmd, cmpCmd)
}

// initConfig wires viper to read the file named by the config flag, or
// else .decimalctl.yaml/.json/.toml from $HOME or the current directory,
// falling back silently to flag defaults when none is found.
func initConfig() {
	v := viper.GetViper()
	v.SetEnvPrefix("DECIMALCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigName(".decimalctl")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "decimalctl: reading config: %v\n", err)
		}
	}
}
