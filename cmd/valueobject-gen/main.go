// valueobject-gen generates boilerplate for value object wrapper types:
// single-field structs whose values are only constructed through a
// validating function.
//
// Usage:
//
//	//valueobject:error_type=ValidationError load_fn=NewEmail
//	type Email struct { value string }
//
//	valueobject-gen [flags] [package patterns]
//
// For every annotated type it writes a <type>_valueobject.go file next to
// the declaration with, depending on the configuration, JSON marshaling
// methods, a String method, a <Type>From conversion function and a
// Parse<Type> function. Each declaration is processed independently: one
// bad declaration is reported and the rest still generate.
//
// Flags:
//
//	-type     Restrict generation to the named type
//	-config   Path to a valueobject.yaml with defaults and per-type options
//	-output   Output directory (default: next to each declaration)
//	-dry-run  Print generated files to stdout instead of writing them
//	-v        Dump decoded descriptors (debugging)
package main

import (
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/davecgh/go-spew/spew"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/packages"

	"valueobject-generator/internal/analyze"
	"valueobject-generator/internal/config"
	"valueobject-generator/internal/diagnostic"
	"valueobject-generator/internal/engine"
	"valueobject-generator/internal/render"
)

type options struct {
	typeName   string
	configPath string
	outputDir  string
	dryRun     bool
	verbose    bool
}

func main() {
	var opts options
	flag.StringVar(&opts.typeName, "type", "", "Restrict generation to the named type")
	flag.StringVar(&opts.configPath, "config", "", "Path to a valueobject.yaml configuration file")
	flag.StringVar(&opts.outputDir, "output", "", "Output directory (default: next to each declaration)")
	flag.BoolVar(&opts.dryRun, "dry-run", false, "Print generated files to stdout instead of writing them")
	flag.BoolVar(&opts.verbose, "v", false, "Dump decoded descriptors")
	flag.Parse()

	patterns := flag.Args()
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	diags, err := run(opts, patterns)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	diags.Fprint(os.Stderr)
	if diags.HasErrors() {
		os.Exit(1)
	}
}

func run(opts options, patterns []string) (*diagnostic.List, error) {
	cfgFile, err := loadConfigFile(opts.configPath)
	if err != nil {
		return nil, err
	}

	pkgs, err := analyze.Load(patterns...)
	if err != nil {
		return nil, err
	}

	// Declarations are independent of each other, so packages can generate
	// concurrently; only the diagnostic list is shared.
	var (
		mu    sync.Mutex
		diags diagnostic.List
		g     errgroup.Group
	)
	for _, pkg := range pkgs {
		g.Go(func() error {
			list := processPackage(pkg, cfgFile, opts)
			mu.Lock()
			diags.Merge(list)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &diags, nil
}

func loadConfigFile(path string) (*config.File, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	if _, err := os.Stat(config.DefaultFileName); err == nil {
		return config.LoadFile(config.DefaultFileName)
	}
	return nil, nil
}

func processPackage(pkg *packages.Package, cfgFile *config.File, opts options) *diagnostic.List {
	list := &diagnostic.List{}
	for _, target := range analyze.FindTargets(pkg, opts.typeName) {
		if opts.verbose {
			spew.Fdump(os.Stderr, target.Desc)
		}
		if err := processTarget(target, cfgFile, opts); err != nil {
			list.AddError(target.Pos, target.Desc.Name, err)
		}
	}
	return list
}

func processTarget(target *analyze.Target, cfgFile *config.File, opts options) error {
	if target.DirectiveErr != nil {
		return target.DirectiveErr
	}

	merged := cfgFile.For(target.Desc.Name).Merge(target.Directive)
	if err := merged.Validate(); err != nil {
		return err
	}

	units, err := engine.Generate(target.Desc, target.EngineOptions(merged))
	if err != nil {
		return err
	}

	file, err := render.Render(target.PkgName, target.Desc.Name, units)
	if err != nil {
		return err
	}

	if opts.dryRun {
		_, err := os.Stdout.Write(file.Content)
		return err
	}

	dir := target.Dir
	if opts.outputDir != "" {
		dir = opts.outputDir
	}
	return render.WriteFile(file, dir)
}
