package main

import (
	"fmt"
	"go/types"
	"sort"

	"golang.org/x/tools/go/packages"
)

// NameCmd resolves display names for specific named types.
type NameCmd struct {
	Package string   `arg:"" help:"Package pattern, as accepted by go list (e.g. ./... or a full import path)."`
	Types   []string `arg:"" help:"Named types to resolve."`
}

func (c *NameCmd) Run() error {
	pkgs, err := loadPackages(c.Package)
	if err != nil {
		return err
	}

	for _, typeName := range c.Types {
		obj := lookupType(pkgs, typeName)
		if obj == nil {
			return fmt.Errorf("type %s not found in %s", typeName, c.Package)
		}
		fmt.Printf("%s\t%s\n", typeName, spellType(obj.Type()))
	}
	return nil
}

// ListCmd lists every exported named type in the matched packages.
type ListCmd struct {
	Package string `arg:"" help:"Package pattern, as accepted by go list."`
}

func (c *ListCmd) Run() error {
	pkgs, err := loadPackages(c.Package)
	if err != nil {
		return err
	}

	for _, pkg := range pkgs {
		scope := pkg.Types.Scope()
		names := scope.Names()
		sort.Strings(names)
		for _, name := range names {
			obj, ok := scope.Lookup(name).(*types.TypeName)
			if !ok || !obj.Exported() {
				continue
			}
			fmt.Printf("%s\t%s\n", pkg.PkgPath+"."+name, spellType(obj.Type()))
		}
	}
	return nil
}

// loadPackages type-checks the packages matching pattern.
func loadPackages(pattern string) ([]*packages.Package, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes,
	}
	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return nil, fmt.Errorf("package %s has errors: %v", pkg.PkgPath, pkg.Errors)
		}
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages match %s", pattern)
	}
	return pkgs, nil
}

// lookupType finds a named type by name across the loaded packages.
func lookupType(pkgs []*packages.Package, name string) *types.TypeName {
	for _, pkg := range pkgs {
		if obj, ok := pkg.Types.Scope().Lookup(name).(*types.TypeName); ok {
			return obj
		}
	}
	return nil
}
