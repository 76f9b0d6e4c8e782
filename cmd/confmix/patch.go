package main

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"

	"github.com/confmix/confmix"
	"github.com/confmix/confmix/format"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires a patch file and a target file", cli.ErrUsage)
	}
	patchJSON, err := asJSON(cfg.MainConfig, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	docJSON, err := asJSON(cfg.MainConfig, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	merged, err := jsonpatch.MergePatch(docJSON, patchJSON)
	if err != nil {
		return fmt.Errorf("error applying patch: %w", err)
	}
	data, err := confmix.Load(string(merged), format.JSONFormat)
	if err != nil {
		return err
	}
	return writeDoc(cfg.MainConfig, cc.Out, data)
}

// asJSON loads a file in any supported format and re-serializes it as JSON,
// the representation merge patches operate on.
func asJSON(cfg *MainConfig, file string) ([]byte, error) {
	data, err := confmix.LoadFile(file, cfg.inFormat())
	if err != nil {
		return nil, err
	}
	text, err := confmix.Dump(data, format.JSONFormat)
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}
