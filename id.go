package typedef

import (
	"reflect"

	"github.com/nercury/typedef/internal/demangle"
)

// ID is an opaque token uniquely identifying a concrete type within one
// run of the program. IDs are comparable with == and usable directly as
// map keys; equality holds iff the underlying types are identical.
type ID struct {
	t reflect.Type
}

// Equal reports whether both tokens identify the same type.
func (id ID) Equal(other ID) bool {
	return id == other
}

// Compare totally orders identity tokens. Ordering is lexicographic
// over the canonical type key, with the runtime's type descriptor
// address as a tiebreak so distinct types never compare equal. Stable
// within one run only.
func (id ID) Compare(other ID) int {
	if id == other {
		return 0
	}
	// Zero-value IDs identify no type; they sort before everything.
	if id.t == nil {
		return -1
	}
	if other.t == nil {
		return 1
	}
	a, b := demangle.Key(id.t), demangle.Key(other.t)
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	pa := reflect.ValueOf(id.t).Pointer()
	pb := reflect.ValueOf(other.t).Pointer()
	if pa < pb {
		return -1
	}
	return 1
}
