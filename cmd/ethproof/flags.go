package main

import (
	"flag"
	"fmt"
	"strconv"
)

// flagSet wraps flag.FlagSet to add support for uint64 flags, which the
// standard library's flag package has no constructor for.
type flagSet struct {
	*flag.FlagSet
}

func newCustomFlagSet(name string) *flagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	return &flagSet{FlagSet: fs}
}

func (fs *flagSet) Uint64Var(p *uint64, name string, value uint64, usage string) {
	fs.FlagSet.Var(&uint64Value{p: p}, name, usage)
	*p = value
}

type uint64Value struct {
	p *uint64
}

func (v *uint64Value) String() string {
	if v.p == nil {
		return "0"
	}
	return strconv.FormatUint(*v.p, 10)
}

func (v *uint64Value) Set(s string) error {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid uint64 value %q", s)
	}
	*v.p = n
	return nil
}

// config holds the resolved command-line configuration for one ethproof
// invocation.
type config struct {
	Mode    string
	Fixture string
	ChainID uint64
}

func (c config) Validate() error {
	switch c.Mode {
	case "account", "storage", "transaction", "receipt", "header":
	default:
		return fmt.Errorf("unknown -mode %q (want account, storage, transaction, receipt, or header)", c.Mode)
	}
	if c.Fixture == "" {
		return fmt.Errorf("-fixture is required")
	}
	return nil
}

// parseFlags parses args into a config, printing usage and returning
// (zero, true, code) if the caller should exit immediately (e.g. -h or a
// parse error).
func parseFlags(args []string) (config, bool, int) {
	fs := newCustomFlagSet("ethproof")
	var cfg config
	fs.StringVar(&cfg.Mode, "mode", "", "verifier to run: account, storage, transaction, receipt, header")
	fs.StringVar(&cfg.Fixture, "fixture", "", "path to a JSON fixture file")
	fs.Uint64Var(&cfg.ChainID, "chain", 1, "chain ID (header verification only; default mainnet)")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return config{}, true, 0
		}
		return config{}, true, 2
	}
	return cfg, false, 0
}
