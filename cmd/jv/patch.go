package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jval/encode"
	"github.com/signadot/jval/patch"
	"github.com/signadot/jval/value"
)

func patchCmd(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a document and a patch", cli.ErrUsage)
	}
	doc, err := getObjFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	p, err := getish(cfg.MainConfig, cfg.String, cfg.File, cc, args[1])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	res, err := applyPatch(doc, p, cfg.Merge)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", args[0], err)
	}
	if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

func applyPatch(doc, p value.Value, mergePatch bool) (value.Value, error) {
	if mergePatch {
		return patch.MergePatch(doc, p)
	}
	return patch.JSONPatch(doc, p)
}
