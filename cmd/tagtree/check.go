package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/tagtree/codec"
	"github.com/signadot/tagtree/codecs"
	"github.com/signadot/tagtree/tagmap"
)

type CheckConfig struct {
	*MainConfig
	Check *cli.Command
}

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	reg := codec.MustRegistry(codecs.All()...)
	tr := tagmap.New(reg)
	problems := 0
	for _, file := range inputArgs(args) {
		node, err := decodeFile(cfg.MainConfig, file)
		if err != nil {
			return err
		}
		for _, ref := range tr.Scan(node) {
			path := ref.Path
			if path == "" {
				path = "."
			}
			switch {
			case ref.Malformed:
				problems++
				fmt.Fprintf(cc.Out, "%s: %s: malformed %s tag\n", file, path, ref.Kind)
			case ref.Kind == tagmap.TagEscaped:
				// escapes reference no codec
			default:
				if _, ok := reg.ByName(ref.Name); !ok {
					problems++
					fmt.Fprintf(cc.Out, "%s: %s: unknown codec %q\n", file, path, ref.Name)
				}
			}
		}
		if problems != 0 {
			continue
		}
		// the scan is syntactic; a decode also exercises codec bodies
		if _, err := tr.FromIR(node); err != nil {
			problems++
			fmt.Fprintf(cc.Out, "%s: %v\n", file, err)
		}
	}
	if problems != 0 {
		return fmt.Errorf("%d problem(s) found", problems)
	}
	return nil
}
