package main

import (
	"fmt"

	"github.com/signadot/cram/mergeop"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Tags {
		fmt.Fprintf(cc.Out, "available patch ops:\n")
		for _, s := range mergeop.Names() {
			fmt.Fprintf(cc.Out, "\t- %s\n", s)
		}
		return nil
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a patch document, and a file to which to apply it", cli.ErrUsage)
	}
	opName, err := cfg.opName()
	if err != nil {
		return err
	}
	p, _, err := getDoc(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	target, f, err := getDoc(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	res, err := mergeop.Apply(opName, target, p)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", args[1], err)
	}
	if err := writeDoc(cfg.MainConfig, cc.Out, res, cfg.outFormat(f)); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

func (cfg *PatchConfig) opName() (string, error) {
	switch {
	case cfg.Merge && cfg.Op != "":
		return "", fmt.Errorf("%w: only one of -m, -op may be specified", cli.ErrUsage)
	case cfg.Merge:
		return mergeop.MergePatch().String(), nil
	case cfg.Op != "":
		if _, err := mergeop.Lookup(cfg.Op); err != nil {
			return "", fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		return cfg.Op, nil
	}
	return mergeop.JSONPatch().String(), nil
}
