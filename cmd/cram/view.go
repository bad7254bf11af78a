package main

import (
	"fmt"
	"io"

	"github.com/signadot/cram/encode"
	"github.com/signadot/cram/format"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	files := fileArgs(args)
	for i, file := range files {
		if err := viewFile(cfg, cc, cc.Out, file); err != nil {
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

func viewFile(cfg *ViewConfig, cc *cli.Context, w io.Writer, file string) error {
	v, _, err := getDoc(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	if v, err = v.GetPath(cfg.Path); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	f := format.JSONFormat
	if cfg.OutFormat != nil && !cfg.OutFormat.IsBinary() {
		f = *cfg.OutFormat
	} else if cfg.Y {
		f = format.YAMLFormat
	}
	opts := append(cfg.encOpts(w, f), encode.EncodeLenient(true))
	if err := encode.Encode(v, w, opts...); err != nil {
		return fmt.Errorf("error encoding %s: %w", file, err)
	}
	return nil
}
