package main

import (
	"fmt"

	"github.com/signadot/cram/cram"
	"github.com/signadot/cram/format"
	"github.com/signadot/cram/value"

	"github.com/scott-cotton/cli"
)

func stat(cfg *StatConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Stat.Parse(cc, args)
	if err != nil {
		return err
	}
	files := fileArgs(args)
	res := make([]*value.Value, 0, len(files))
	for _, file := range files {
		d, err := readFile(cc, file)
		if err != nil {
			return err
		}
		f := cfg.inFormat(file, d)
		v, err := decodeDoc(cfg.MainConfig, d, f)
		if err != nil {
			return fmt.Errorf("error decoding %s as %s: %w", file, f, err)
		}
		if !f.IsCram() {
			if d, err = cram.Encode(v, cfg.cramOpts()...); err != nil {
				return fmt.Errorf("error encoding %s: %w", file, err)
			}
		}
		st, err := statDoc(v, d, cfg.Tables)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		st.Fields = append([]string{"file"}, st.Fields...)
		st.Values = append([]*value.Value{value.FromString(file)}, st.Values...)
		res = append(res, st)
	}
	out := res[0]
	if len(res) > 1 {
		out = value.FromSlice(res)
	}
	return writeDoc(cfg.MainConfig, cc.Out, out, cfg.outFormat(format.JSONFormat))
}

// statDoc describes the cram document d holding v.
func statDoc(v *value.Value, d []byte, tables bool) (*value.Value, error) {
	info, err := cram.Inspect(d)
	if err != nil {
		return nil, err
	}
	counts := map[value.Type]int64{}
	nodes := int64(0)
	v.Walk(func(x *value.Value) error {
		nodes++
		if x == nil {
			counts[value.NullType]++
			return nil
		}
		counts[x.Type]++
		return nil
	})
	types := &value.Value{Type: value.MappingType}
	for _, t := range value.Types() {
		if counts[t] == 0 {
			continue
		}
		types.Fields = append(types.Fields, t.String())
		types.Values = append(types.Values, value.FromInt(counts[t]))
	}
	stringBytes := 0
	for _, s := range info.Strings {
		stringBytes += len(s)
	}
	res := value.Mapping(
		"version", value.FromInt(int64(info.Version)),
		"size", value.FromInt(int64(len(d))),
		"strings", value.FromInt(int64(len(info.Strings))),
		"stringBytes", value.FromInt(int64(stringBytes)),
		"schemas", value.FromInt(int64(len(info.Schemas))),
		"graphOffset", value.FromInt(int64(info.GraphOffset)),
		"graphSize", value.FromInt(int64(info.GraphSize)),
		"values", value.FromInt(nodes),
		"types", types,
	)
	if j, err := value.ToJSON(v); err == nil {
		res.Fields = append(res.Fields, "jsonSize")
		res.Values = append(res.Values, value.FromInt(int64(len(j))))
	}
	if tables {
		strs := make([]*value.Value, len(info.Strings))
		for i, s := range info.Strings {
			strs[i] = value.FromString(s)
		}
		schemas := make([]*value.Value, len(info.Schemas))
		for i, keys := range info.Schemas {
			ks := make([]*value.Value, len(keys))
			for j, k := range keys {
				ks[j] = value.FromString(k)
			}
			schemas[i] = value.FromSlice(ks)
		}
		res.Fields = append(res.Fields, "stringTable", "schemaTable")
		res.Values = append(res.Values, value.FromSlice(strs), value.FromSlice(schemas))
	}
	return res, nil
}
