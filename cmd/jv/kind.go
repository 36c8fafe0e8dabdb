package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jval/value"
)

func kind(cfg *KindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Kind.Parse(cc, args)
	if err != nil {
		cfg.Kind.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, file := range args {
		v, err := getObjFile(cfg.MainConfig, cc, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if i > 0 {
			if err := writeSep(cc.Out); err != nil {
				return err
			}
		}
		if err := writeKinds(cc.Out, v, cfg.Tags); err != nil {
			return err
		}
	}
	return nil
}

// writeKinds prints one line per node: its label, storage kind and
// optionally its tag, indented by depth.
func writeKinds(w io.Writer, v value.Value, tags bool) error {
	return writeKind(w, "$", v, 0, tags)
}

func writeKind(w io.Writer, label string, v value.Value, depth int, tags bool) error {
	line := strings.Repeat("  ", depth) + label + ": " + v.Kind().String()
	if tags && v.Tag() != value.NoTag {
		line += " " + v.Tag().String()
	}
	if _, err := io.WriteString(w, line+"\n"); err != nil {
		return err
	}
	switch v.Kind() {
	case value.ArrayKind:
		for i, e := range v.Elements() {
			if err := writeKind(w, fmt.Sprintf("[%d]", i), *e, depth+1, tags); err != nil {
				return err
			}
		}
	case value.ObjectKind:
		for k, m := range v.Members() {
			if err := writeKind(w, k, *m, depth+1, tags); err != nil {
				return err
			}
		}
	}
	return nil
}
