package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/signadot/cram/cram"
	"github.com/signadot/cram/format"
	"github.com/signadot/cram/libdiff"
	"github.com/signadot/cram/value"

	"github.com/scott-cotton/cli"
)

func verify(cfg *VerifyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Verify.Parse(cc, args)
	if err != nil {
		return err
	}
	failed := 0
	for _, file := range fileArgs(args) {
		d, err := readFile(cc, file)
		if err != nil {
			return err
		}
		f := cfg.inFormat(file, d)
		v, err := decodeDoc(cfg.MainConfig, d, f)
		if err != nil {
			theLog.Error("decode failed", "file", file, "format", f, "error", err)
			failed++
			continue
		}
		ok, err := verifyDoc(cc.Out, cfg.cramOpts(), v, d, f)
		if err != nil {
			theLog.Error("round trip failed", "file", file, "error", err)
			failed++
			continue
		}
		if !ok {
			failed++
			continue
		}
		theLog.Info("ok", "file", file, "format", f)
	}
	if failed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// verifyDoc checks that v survives encoding and decoding. A cram input d
// must also be reproduced byte for byte. Differences are written to w.
func verifyDoc(w io.Writer, opts []cram.Option, v *value.Value, d []byte, f format.Format) (bool, error) {
	enc, err := cram.Encode(v, opts...)
	if err != nil {
		return false, err
	}
	back, err := cram.Decode(enc, opts...)
	if err != nil {
		return false, err
	}
	ok := true
	for _, c := range libdiff.Diff(v, back) {
		ok = false
		if _, err := fmt.Fprintln(w, c); err != nil {
			return false, err
		}
	}
	if f.IsCram() && !bytes.Equal(d, enc) {
		ok = false
		if _, err := fmt.Fprintf(w, "re-encoding changed the document: %d bytes -> %d bytes\n", len(d), len(enc)); err != nil {
			return false, err
		}
	}
	return ok, nil
}
