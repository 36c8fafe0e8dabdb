package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jval/parse"
	"github.com/signadot/jval/value"
)

func readInput(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func getObjFile(cfg *MainConfig, cc *cli.Context, path string) (value.Value, error) {
	d, err := readInput(cc, path)
	if err != nil {
		return value.Value{}, err
	}
	return parse.Parse(d, cfg.parseOpts(path)...)
}

// getish reads arg as inline text (-s, the default) or as a file (-f).
func getish(cfg *MainConfig, s, f bool, cc *cli.Context, arg string) (value.Value, error) {
	if s && f {
		return value.Value{}, fmt.Errorf("%w: only one of -s, -f may be specified", cli.ErrUsage)
	}
	if f {
		return getObjFile(cfg, cc, arg)
	}
	return parse.ParseString(arg, cfg.parseOpts("")...)
}

// splitDocs splits a yaml stream on document separators.
func splitDocs(in []byte) [][]byte {
	return bytes.Split(in, []byte("\n---\n"))
}

func writeSep(w io.Writer) error {
	_, err := w.Write([]byte("---\n"))
	return err
}
