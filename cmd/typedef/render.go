package main

import (
	"go/types"
	"strings"
)

// spellType renders a go/types type the way the library's runtime
// demangler spells it in the default build: package base names as
// qualifiers and "any" for the empty interface.
func spellType(t types.Type) string {
	s := types.TypeString(t, func(p *types.Package) string {
		return p.Name()
	})
	return strings.ReplaceAll(s, "interface{}", "any")
}
