package main

import (
	"fmt"

	"github.com/signadot/cram/eval"
	"github.com/signadot/cram/format"

	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires an expression", cli.ErrUsage)
	}
	expression := args[0]
	if expression == "" {
		return fmt.Errorf("%w: invalid query \"\"", cli.ErrUsage)
	}
	files := fileArgs(args[1:])
	for i, file := range files {
		doc, _, err := getDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		res, err := eval.Query(doc, expression)
		if err != nil {
			return fmt.Errorf("error querying %s with %q: %w", file, expression, err)
		}
		if err := writeDoc(cfg.MainConfig, cc.Out, res, cfg.outFormat(format.JSONFormat)); err != nil {
			return err
		}
		if i < len(files)-1 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
	}
	return nil
}
