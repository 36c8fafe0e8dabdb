package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/jval/encode"
	"github.com/signadot/jval/format"
	"github.com/signadot/jval/parse"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	Ordered bool `cli:"name=ordered desc='keep object members in input order'"`
	Indent  int  `cli:"name=indent desc='indentation width, 0 for compact json'"`
	Gops    bool `cli:"name=gops desc='start a gops diagnostics agent'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// inFormat picks the input format: -I wins, then the file suffix.
func (cfg *MainConfig) inFormat(path string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if f, ok := format.FromPath(path); ok {
		return f
	}
	return format.JSONFormat
}

func (cfg *MainConfig) parseOpts(path string) []parse.ParseOption {
	return []parse.ParseOption{
		parse.ParseFormat(cfg.inFormat(path)),
		parse.ParseOrdered(cfg.Ordered),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var fmat format.Format
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmat),
		encode.EncodeIndent(cfg.Indent),
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name == "color" && opt.Value != nil {
				return res
			}
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type KindConfig struct {
	*MainConfig
	Tags bool `cli:"name=tags desc='show semantic tags'"`
	Kind *cli.Command
}

type CompareConfig struct {
	*MainConfig
	Exit    bool `cli:"name=x desc='exit 1 when the documents are not equal'"`
	Compare *cli.Command
}

type MergeConfig struct {
	*MainConfig
	Update bool `cli:"name=u desc='overwrite existing members'"`
	Merge  *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Diff    *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge  bool `cli:"name=m desc='apply an RFC 7386 merge patch'"`
	String bool `cli:"name=s desc='patch arg as string'"`
	File   bool `cli:"name=f desc='patch arg as file'"`
	Patch  *cli.Command
}

type GetConfig struct {
	*MainConfig
	Truth bool `cli:"name=t desc='exit 1 unless every result is truthy'"`
	Get   *cli.Command
}

type SetConfig struct {
	*MainConfig
	Set *cli.Command
}
