package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/signadot/cram/cram"
	"github.com/signadot/cram/encode"
	"github.com/signadot/cram/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output JSON in compact format'"`
	Lenient bool `cli:"name=lenient desc='write NaN, Infinity and undefined in JSON output'"`

	C bool `cli:"name=c aliases=cram desc='do i/o in cram'"`
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	MaxDepth int `cli:"name=maxDepth desc='maximum nesting depth of cram documents, 0 for the default (unbounded on encode, 10000 on decode)'"`
	MaxSize  int `cli:"name=maxSize desc='maximum size in bytes of encoded cram documents'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) flagFormat() (format.Format, bool) {
	switch {
	case cfg.C:
		return format.CramFormat, true
	case cfg.J:
		return format.JSONFormat, true
	case cfg.Y:
		return format.YAMLFormat, true
	}
	return 0, false
}

// inFormat returns the format of the document d read from path: -I, then
// -c/-j/-y, then detection.
func (cfg *MainConfig) inFormat(path string, d []byte) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if f, ok := cfg.flagFormat(); ok {
		return f
	}
	return detectFormat(path, d)
}

// detectFormat recognizes cram by its magic bytes, then tries the file
// extension, then falls back to JSON if d is valid JSON and YAML otherwise.
func detectFormat(path string, d []byte) format.Format {
	if cram.IsCram(d) {
		return format.CramFormat
	}
	if f, ok := format.FromPath(path); ok {
		return f
	}
	if json.Valid(d) {
		return format.JSONFormat
	}
	return format.YAMLFormat
}

func (cfg *MainConfig) outFormat(def format.Format) format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	if f, ok := cfg.flagFormat(); ok {
		return f
	}
	return def
}

func (cfg *MainConfig) cramOpts() []cram.Option {
	return []cram.Option{
		cram.WithMaxDepth(cfg.MaxDepth),
		cram.WithMaxSize(cfg.MaxSize),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer, f format.Format) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(f),
		encode.EncodeWire(cfg.WireOut),
		encode.EncodeLenient(cfg.Lenient),
		encode.EncodeCramOptions(cfg.cramOpts()...),
	}
	if cfg.colorize(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// colorize reports whether output to w should be colored: -color if given,
// otherwise whether w is a terminal.
func (cfg *MainConfig) colorize(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.Main == nil {
		return isTerminal(w)
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return false
	}
	return isTerminal(w)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type EncodeConfig struct {
	*MainConfig
	Stats bool `cli:"name=s desc='log table sizes'"`

	Encode *cli.Command
}

type DecodeConfig struct {
	*MainConfig
	Path string `cli:"name=p desc='decode only the value at this JSON pointer'"`

	Decode *cli.Command
}

type ViewConfig struct {
	*MainConfig
	Path string `cli:"name=p desc='show only the value at this JSON pointer'"`

	View *cli.Command
}

type StatConfig struct {
	*MainConfig
	Tables bool `cli:"name=t desc='include the string and schema tables'"`

	Stat *cli.Command
}

type VerifyConfig struct {
	*MainConfig

	Verify *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Patch bool `cli:"name=p desc='output a JSON patch'"`
	Lines bool `cli:"name=l desc='diff the documents rendered as JSON text line by line'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool   `cli:"name=m aliases=merge desc='patch is a JSON merge patch'"`
	Op    string `cli:"name=op desc='patch op to apply (see -tags)'"`
	Tags  bool   `cli:"name=tags desc='show available patch ops'"`

	Patch *cli.Command
}

type QueryConfig struct {
	*MainConfig

	Query *cli.Command
}
