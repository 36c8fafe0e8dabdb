package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jval/encode"
	"github.com/signadot/jval/parse"
	"github.com/signadot/jval/value"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 3 {
		return fmt.Errorf("%w: set requires a document, a value and at least one path", cli.ErrUsage)
	}
	doc, err := getObjFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	x, err := parse.ParseString(args[1], cfg.parseOpts("")...)
	if err != nil {
		return fmt.Errorf("%w: error decoding value %q: %w", cli.ErrUsage, args[1], err)
	}
	if err := setPaths(&doc, x, args[2:]); err != nil {
		return err
	}
	if err := encode.Encode(doc, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

// setPaths stores a copy of x at each path.
func setPaths(doc *value.Value, x value.Value, paths []string) error {
	for _, arg := range paths {
		p, err := parsePath(arg)
		if err != nil {
			return err
		}
		c, err := x.Clone()
		if err != nil {
			return err
		}
		if err := doc.Put(p, c); err != nil {
			c.Release()
			return fmt.Errorf("error setting %s: %w", arg, err)
		}
	}
	return nil
}
