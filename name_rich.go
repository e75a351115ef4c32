//go:build !typedef_rawnames

package typedef

import (
	"reflect"

	"github.com/nercury/typedef/internal/demangle"
)

// resolveName renders t close to Go source syntax, recursing through
// composite types: "int64", "[]string", "map[string][]int64",
// "Pair[int64, string]".
func resolveName(t reflect.Type) string {
	return demangle.Type(t)
}
