package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jval/value"
)

func compare(cfg *CompareConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Compare.Parse(cc, args)
	if err != nil {
		cfg.Compare.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	a, b, err := twoDocs(cfg.MainConfig, cc, "compare", args)
	if err != nil {
		return err
	}
	c := value.Compare(a, b)
	if _, err := fmt.Fprintln(cc.Out, c); err != nil {
		return err
	}
	if c != 0 && cfg.Exit {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func twoDocs(cfg *MainConfig, cc *cli.Context, name string, args []string) (value.Value, value.Value, error) {
	if len(args) != 2 {
		return value.Value{}, value.Value{}, fmt.Errorf("%w: %s requires 2 args, got %v", cli.ErrUsage, name, args)
	}
	a, err := getObjFile(cfg, cc, args[0])
	if err != nil {
		return value.Value{}, value.Value{}, fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getObjFile(cfg, cc, args[1])
	if err != nil {
		return value.Value{}, value.Value{}, fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	return a, b, nil
}
