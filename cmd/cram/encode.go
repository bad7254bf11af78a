package main

import (
	"fmt"

	"github.com/signadot/cram/cram"
	"github.com/signadot/cram/format"

	"github.com/scott-cotton/cli"
)

func encodeCmd(cfg *EncodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Encode.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: encode takes at most one file, got %v", cli.ErrUsage, args)
	}
	path := fileArgs(args)[0]
	v, inFmt, err := getDoc(cfg.MainConfig, cc, path)
	if err != nil {
		return err
	}
	outFmt := format.CramFormat
	if cfg.OutFormat != nil {
		outFmt = *cfg.OutFormat
	}
	if !outFmt.IsCram() {
		return writeDoc(cfg.MainConfig, cc.Out, v, outFmt)
	}
	d, err := cram.Encode(v, cfg.cramOpts()...)
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", path, err)
	}
	if cfg.Stats {
		info, err := cram.Inspect(d)
		if err != nil {
			return err
		}
		theLog.Info("encoded", "file", path, "from", inFmt,
			"strings", len(info.Strings), "schemas", len(info.Schemas),
			"graph", info.GraphSize, "size", len(d))
	}
	if isTerminal(cc.Out) {
		theLog.Warn("writing binary output to a terminal", "format", outFmt)
	}
	_, err = cc.Out.Write(d)
	return err
}
