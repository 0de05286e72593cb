package main

import (
	"github.com/scott-cotton/cli"

	"github.com/signadot/tagtree/format"
)

type ConvertConfig struct {
	*MainConfig
	Convert *cli.Command
}

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	files := inputArgs(args)
	outFmt := cfg.outFormat()
	for i, file := range files {
		node, err := decodeFile(cfg.MainConfig, file)
		if err != nil {
			return err
		}
		if i > 0 && outFmt == format.YAMLFormat {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		if err := encodeTo(cc.Out, node, outFmt); err != nil {
			return err
		}
	}
	return nil
}
