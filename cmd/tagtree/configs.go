package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/tagtree/format"
	"github.com/signadot/tagtree/ir"
	"github.com/signadot/tagtree/jsonio"
	"github.com/signadot/tagtree/yamlio"
)

type MainConfig struct {
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

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

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// inFormat selects the input format: explicit flags first, then the
// file extension, defaulting to JSON.
func (cfg *MainConfig) inFormat(file string) format.Format {
	switch {
	case cfg.J:
		return format.JSONFormat
	case cfg.Y:
		return format.YAMLFormat
	}
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if f, err := format.FromPath(file); err == nil {
		return f
	}
	return format.JSONFormat
}

func (cfg *MainConfig) outFormat() format.Format {
	switch {
	case cfg.J:
		return format.JSONFormat
	case cfg.Y:
		return format.YAMLFormat
	}
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return format.JSONFormat
}

func decodeFile(cfg *MainConfig, file string) (*ir.Node, error) {
	var (
		r   io.Reader
		err error
	)
	if file == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", file, err)
	}
	var node *ir.Node
	switch cfg.inFormat(file) {
	case format.YAMLFormat:
		node, err = yamlio.Decode(data)
	default:
		node, err = jsonio.Decode(data)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", file, err)
	}
	return node, nil
}

func encodeTo(w io.Writer, node *ir.Node, f format.Format) error {
	var (
		data []byte
		err  error
	)
	switch f {
	case format.YAMLFormat:
		data, err = yamlio.Encode(node)
	default:
		data, err = jsonio.Encode(node)
		data = append(data, '\n')
	}
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func inputArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
