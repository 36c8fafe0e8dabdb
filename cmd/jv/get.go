package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jval/encode"
	"github.com/signadot/jval/value"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: get requires a document and at least one path", cli.ErrUsage)
	}
	doc, err := getObjFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	truthy, err := getPaths(cfg.MainConfig, cc.Out, &doc, args[1:])
	if err != nil {
		return err
	}
	if cfg.Truth && !truthy {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// getPaths encodes the value at each path and reports whether all of them
// were truthy.
func getPaths(cfg *MainConfig, w io.Writer, doc *value.Value, paths []string) (bool, error) {
	truthy := true
	opts := cfg.encOpts(w)
	for i, arg := range paths {
		p, err := parsePath(arg)
		if err != nil {
			return false, err
		}
		res, err := doc.Get(p)
		if err != nil {
			return false, fmt.Errorf("error getting %s: %w", arg, err)
		}
		truthy = truthy && value.Truth(*res)
		if i > 0 {
			if err := writeSep(w); err != nil {
				return false, err
			}
		}
		if err := encode.Encode(*res, w, opts...); err != nil {
			return false, fmt.Errorf("error encoding result: %w", err)
		}
	}
	return truthy, nil
}

// parsePath accepts "$.a[0]" paths, json pointers and bare "a[0]" paths.
func parsePath(arg string) (*value.Path, error) {
	var (
		p   *value.Path
		err error
	)
	switch {
	case arg == "" || strings.HasPrefix(arg, "/"):
		p, err = value.ParsePointer(arg)
	case arg[0] == '$':
		p, err = value.ParsePath(arg)
	case arg[0] == '[':
		p, err = value.ParsePath("$" + arg)
	default:
		p, err = value.ParsePath("$." + arg)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return p, nil
}
