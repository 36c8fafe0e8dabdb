package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jval/encode"
	"github.com/signadot/jval/value"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	a, b, err := twoDocs(cfg.MainConfig, cc, "merge", args)
	if err != nil {
		return err
	}
	if err := mergeInto(&a, b, cfg.Update); err != nil {
		return err
	}
	if err := encode.Encode(a, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

func mergeInto(dst *value.Value, src value.Value, update bool) error {
	if update {
		if err := dst.MergeOrUpdate(src); err != nil {
			return fmt.Errorf("error merging: %w", err)
		}
		return nil
	}
	if err := dst.Merge(src); err != nil {
		return fmt.Errorf("error merging: %w", err)
	}
	return nil
}
