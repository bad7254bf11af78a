package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/signadot/cram/encode"
	"github.com/signadot/cram/format"
	"github.com/signadot/cram/libdiff"
	"github.com/signadot/cram/value"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	if cfg.Patch && cfg.Lines {
		return fmt.Errorf("%w: only one of -p, -l may be specified", cli.ErrUsage)
	}
	a, _, err := getDoc(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	b, _, err := getDoc(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	differs, err := diffDocs(cfg, cc.Out, a, b)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffDocs(cfg *DiffConfig, w io.Writer, a, b *value.Value) (bool, error) {
	colorize := cfg.colorize(w)
	if cfg.Lines {
		ta, err := renderText(a)
		if err != nil {
			return false, err
		}
		tb, err := renderText(b)
		if err != nil {
			return false, err
		}
		lines := libdiff.Lines(ta, tb)
		if !libdiff.Changed(lines) {
			return false, nil
		}
		for _, ln := range lines {
			if _, err := fmt.Fprintln(w, paint(colorize, ln.Op, ln.String())); err != nil {
				return false, err
			}
		}
		return true, nil
	}
	changes := libdiff.Diff(a, b)
	if len(changes) == 0 {
		return false, nil
	}
	if cfg.Patch {
		d, err := libdiff.Patch(changes)
		if err != nil {
			return false, err
		}
		_, err = w.Write(append(d, '\n'))
		return true, err
	}
	for _, c := range changes {
		op := libdiff.LineEqual
		switch c.Op {
		case libdiff.OpAdd:
			op = libdiff.LineInsert
		case libdiff.OpRemove:
			op = libdiff.LineDelete
		}
		if _, err := fmt.Fprintln(w, paint(colorize, op, c.String())); err != nil {
			return false, err
		}
	}
	return true, nil
}

func renderText(v *value.Value) (string, error) {
	buf := bytes.NewBuffer(nil)
	err := encode.Encode(v, buf, encode.EncodeFormat(format.JSONFormat), encode.EncodeLenient(true))
	return buf.String(), err
}

func paint(on bool, op libdiff.LineOp, s string) string {
	if !on {
		return s
	}
	switch op {
	case libdiff.LineInsert:
		return color.GreenString("%s", s)
	case libdiff.LineDelete:
		return color.RedString("%s", s)
	}
	return s
}
