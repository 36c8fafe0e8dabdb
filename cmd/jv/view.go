package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jval/encode"
	"github.com/signadot/jval/parse"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, file := range args {
		in, err := readInput(cc, file)
		if err != nil {
			return fmt.Errorf("could not read %q: %w", file, err)
		}
		if i > 0 {
			if err := writeSep(cc.Out); err != nil {
				return err
			}
		}
		if err := viewDocs(cfg.MainConfig, cc.Out, in, file); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}

func viewDocs(cfg *MainConfig, w io.Writer, in []byte, path string) error {
	docs := splitDocs(in)
	opts := cfg.encOpts(w)
	for i, doc := range docs {
		v, err := parse.Parse(doc, cfg.parseOpts(path)...)
		if err != nil {
			return fmt.Errorf("error decoding document %d: %w", i, err)
		}
		if i > 0 {
			if err := writeSep(w); err != nil {
				return fmt.Errorf("error writing document %d: %w", i, err)
			}
		}
		if err := encode.Encode(v, w, opts...); err != nil {
			return fmt.Errorf("error encoding result %d: %w", i, err)
		}
	}
	return nil
}
