package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: cram/c, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: cram/c, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "cram").
		WithSynopsis("cram [opts] command [opts]").
		WithDescription("cram converts between JSON, YAML and the compact cram binary format.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return cramMain(cfg, cc, args)
		}).
		WithSubs(
			EncodeCommand(cfg),
			DecodeCommand(cfg),
			ViewCommand(cfg),
			StatCommand(cfg),
			VerifyCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			QueryCommand(cfg))
}

func EncodeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EncodeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Encode, "encode").
		WithAliases("e", "enc").
		WithSynopsis("encode [opts] [file]").
		WithDescription("encode a JSON or YAML document as cram").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return encodeCmd(cfg, cc, args)
		})
}

func DecodeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DecodeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Decode, "decode").
		WithAliases("d", "dec").
		WithSynopsis("decode [opts] [file]").
		WithDescription("decode a cram document to JSON (default) or YAML").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return decodeCmd(cfg, cc, args)
		})
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [files]").
		WithDescription("view documents of any format as text, in color on a terminal").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func StatCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &StatConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Stat, "stat").
		WithAliases("s").
		WithSynopsis("stat [opts] [files]").
		WithDescription("show the tables and sizes of cram documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return stat(cfg, cc, args)
		})
}

func VerifyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &VerifyConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Verify, "verify").
		WithSynopsis("verify [files]").
		WithDescription("check that documents survive a cram round trip").
		WithRun(func(cc *cli.Context, args []string) error {
			return verify(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("di").
		WithOpts(opts...).
		WithSynopsis("diff [opts] a b").
		WithDescription("diff two documents of any format; exits 1 if they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [opts] <patchfile> <file>").
		WithDescription("apply a JSON patch or merge patch to a document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Query, "query").
		WithAliases("q").
		WithSynopsis("query <expr> [files]").
		WithDescription("evaluate an expr-lang expression with each document bound to doc").
		WithRun(func(cc *cli.Context, args []string) error {
			return query(cfg, cc, args)
		})
}
