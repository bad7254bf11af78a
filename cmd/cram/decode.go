package main

import (
	"fmt"

	"github.com/signadot/cram/format"

	"github.com/scott-cotton/cli"
)

func decodeCmd(cfg *DecodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Decode.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: decode takes at most one file, got %v", cli.ErrUsage, args)
	}
	path := fileArgs(args)[0]
	d, err := readFile(cc, path)
	if err != nil {
		return err
	}
	if f := cfg.inFormat(path, d); !f.IsCram() {
		return fmt.Errorf("%s is %s, not cram", path, f)
	}
	v, err := decodeDoc(cfg.MainConfig, d, format.CramFormat)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", path, err)
	}
	if v, err = v.GetPath(cfg.Path); err != nil {
		return err
	}
	outFmt := format.JSONFormat
	if cfg.OutFormat != nil {
		outFmt = *cfg.OutFormat
	} else if cfg.Y {
		outFmt = format.YAMLFormat
	}
	return writeDoc(cfg.MainConfig, cc.Out, v, outFmt)
}
