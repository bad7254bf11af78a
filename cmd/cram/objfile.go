package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/cram/cram"
	"github.com/signadot/cram/encode"
	"github.com/signadot/cram/format"
	"github.com/signadot/cram/value"

	"github.com/scott-cotton/cli"
)

func readFile(cc *cli.Context, path string) ([]byte, error) {
	var (
		r io.Reader
	)
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// getDoc reads and decodes the document at path ("-" for stdin), returning
// it with the format it was read in.
func getDoc(cfg *MainConfig, cc *cli.Context, path string) (*value.Value, format.Format, error) {
	d, err := readFile(cc, path)
	if err != nil {
		return nil, 0, err
	}
	f := cfg.inFormat(path, d)
	v, err := decodeDoc(cfg, d, f)
	if err != nil {
		return nil, 0, fmt.Errorf("error decoding %s as %s: %w", path, f, err)
	}
	return v, f, nil
}

func decodeDoc(cfg *MainConfig, d []byte, f format.Format) (*value.Value, error) {
	switch f {
	case format.CramFormat:
		return cram.Decode(d, cfg.cramOpts()...)
	case format.JSONFormat:
		return value.FromJSON(d)
	case format.YAMLFormat:
		return value.FromYAML(d)
	}
	return nil, fmt.Errorf("%w: %s", format.ErrBadFormat, f)
}

func writeDoc(cfg *MainConfig, w io.Writer, v *value.Value, f format.Format) error {
	if f.IsBinary() && isTerminal(w) {
		theLog.Warn("writing binary output to a terminal", "format", f)
	}
	return encode.Encode(v, w, cfg.encOpts(w, f)...)
}

// fileArgs returns args, or stdin if there are none.
func fileArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
