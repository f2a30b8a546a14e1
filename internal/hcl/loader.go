// Package hcl loads program files written in HCL and translates them into
// the format-agnostic program model.
package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/oplinkgo/internal/ctxlog"
	"github.com/vk/oplinkgo/internal/fsutil"
	"github.com/vk/oplinkgo/internal/program"
	"github.com/vk/oplinkgo/internal/schema"
)

// Loader is the HCL-specific implementation of the app's program loader.
type Loader struct{}

// NewLoader creates a new HCL program loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file reachable from the given paths (files or
// directories) and assembles the calls, in file order, into a single
// program.
func (l *Loader) Load(ctx context.Context, paths ...string) (*program.Program, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	prog := program.New()
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root schema.ProgramConfig
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, block := range root.Calls {
			call, err := l.translateCall(ctx, block)
			if err != nil {
				return nil, fmt.Errorf("in %s: %w", file, err)
			}
			if err := prog.Add(call); err != nil {
				return nil, fmt.Errorf("in %s: %w", file, err)
			}
		}
	}

	logger.Debug("HCL loading complete.", "calls", prog.Len())
	return prog, nil
}

// findAllHCLFiles expands each path into the .hcl files beneath it. A path
// naming a single file is taken as-is.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("cannot access program path %s: %w", path, err)
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	return files, nil
}
