package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/tagtree/codec"
	"github.com/signadot/tagtree/codecs"
	"github.com/signadot/tagtree/tagmap"
)

type TagsConfig struct {
	*MainConfig
	Tags *cli.Command
}

func tags(cfg *TagsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tags.Parse(cc, args)
	if err != nil {
		return err
	}
	tr := tagmap.New(codec.MustRegistry(codecs.All()...))
	paint := painter(cc)
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
			name := ref.Name
			if ref.Malformed {
				name = "<malformed>"
			}
			fmt.Fprintf(cc.Out, "%s\t%s\t%s\n",
				path, paint(ref)(ref.Kind.String()), name)
		}
	}
	return nil
}

// painter colorizes tag kinds when writing to a terminal.
func painter(cc *cli.Context) func(tagmap.TagRef) func(...any) string {
	plain := fmt.Sprint
	f, ok := cc.Out.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		return func(tagmap.TagRef) func(...any) string { return plain }
	}
	var (
		scalar    = color.New(color.FgCyan).SprintFunc()
		compound  = color.New(color.FgGreen).SprintFunc()
		escaped   = color.New(color.FgYellow).SprintFunc()
		malformed = color.New(color.FgRed).SprintFunc()
	)
	return func(ref tagmap.TagRef) func(...any) string {
		if ref.Malformed {
			return malformed
		}
		switch ref.Kind {
		case tagmap.TagScalar:
			return scalar
		case tagmap.TagCompound:
			return compound
		case tagmap.TagEscaped:
			return escaped
		}
		return plain
	}
}
