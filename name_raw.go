//go:build typedef_rawnames

package typedef

import (
	"reflect"

	"github.com/nercury/typedef/internal/demangle"
)

// resolveName returns the raw, fully qualified runtime spelling of t.
// Stable within one build and unique enough to correlate diagnostics,
// but not meant to be readable and not stable across toolchain
// versions. The exact format is unspecified; do not parse it.
func resolveName(t reflect.Type) string {
	return demangle.Key(t)
}
