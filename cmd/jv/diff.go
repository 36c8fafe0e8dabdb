package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jval/libdiff"
	"github.com/signadot/jval/value"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	a, b, err := twoDocs(cfg.MainConfig, cc, "diff", args)
	if err != nil {
		return err
	}
	differs, err := diffInputs(cc.Out, a, b, cfg.Reverse)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffInputs(w io.Writer, a, b value.Value, reverse bool) (bool, error) {
	d := libdiff.Diff(a, b)
	if len(d) == 0 {
		return false, nil
	}
	if reverse {
		d = libdiff.Reverse(d)
	}
	for i := range d {
		if _, err := io.WriteString(w, d[i].String()+"\n"); err != nil {
			return false, fmt.Errorf("unable to write change: %w", err)
		}
	}
	return true, nil
}
