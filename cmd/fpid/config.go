package main

import (
	"errors"
	"io"

	"github.com/FZambia/viper-lite"
	"github.com/spf13/pflag"
)

type Config struct {
	Quiet      bool `mapstructure:"quiet"`
	SingleShot bool `mapstructure:"single-shot"`
}

var errTarget = errors.New("expected exactly one program name or path")

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("fpid", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	fs.BoolP("quiet", "q", false, "suppress output, exit 0 if found")
	fs.BoolP("single-shot", "s", false, "exit after first match")

	return fs
}

func createConfigFromFlags(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	var conf Config
	if err := v.UnmarshalExact(&conf); err != nil {
		return nil, err
	}

	return &conf, nil
}

// parseArgs interprets everything after the program name. On success it
// returns the configuration and the target, untouched. A help request
// surfaces as pflag.ErrHelp; -h is left undefined on purpose so that pflag
// reports it the moment it is reached, before any later bad option, and a
// bad option reached first wins instead.
func parseArgs(args []string) (*Config, string, error) {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, "", err
	}

	if len(fs.Args()) != 1 {
		return nil, "", errTarget
	}

	conf, err := createConfigFromFlags(fs)
	if err != nil {
		return nil, "", err
	}

	return conf, fs.Args()[0], nil
}
