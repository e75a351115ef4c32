// Package typedef identifies and compares types at runtime, and prints
// their names.
//
// A TypeDef bundles a type's opaque identity with a resolved display
// name. Identity is the only basis for "same type" decisions; the name
// exists for diagnostics. If you never need a readable name, a bare
// reflect.Type (or a map keyed on one) is enough — TypeDef is the
// wrapper for when you want both.
//
// To get a name of a type:
//
//	typedef.NameOf[int64]() // "int64"
//
// A TypeDef can also serve as a type identifier and name container:
//
//	td := typedef.Of[int64]()
//	typedef.Is[int64](td) // true
//	td.Name()             // "int64"
//
// More common usage is inside a generic function:
//
//	func describe[T any](value T) string {
//		return fmt.Sprintf("the value of %v type is %v", typedef.Of[T](), value)
//	}
//
// How names are spelled depends on the build. By default a recursive
// demangler renders types close to Go source syntax. Building with the
// typedef_rawnames tag switches every name to the raw, fully qualified
// runtime spelling instead: still stable within one build, but not meant
// for human eyes and not stable across toolchain versions. The active
// mode is fixed at compile time; the API exposes no runtime toggle.
package typedef

import (
	"fmt"
	"log/slog"
	"reflect"
)

// TypeDef identifies a concrete type and carries its display name.
//
// Values are immutable and freely shareable across goroutines. Two
// TypeDefs constructed from the same type are interchangeable.
type TypeDef struct {
	id   ID
	name string
}

// Of returns the TypeDef for type T.
func Of[T any]() TypeDef {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return TypeDef{
		id:   ID{t},
		name: resolveName(t),
	}
}

// NameOf returns the display name for type T without constructing a
// full TypeDef. Equivalent to Of[T]().Name().
func NameOf[T any]() string {
	return resolveName(reflect.TypeOf((*T)(nil)).Elem())
}

// IDOf returns the identity token for type T directly.
func IDOf[T any]() ID {
	return ID{reflect.TypeOf((*T)(nil)).Elem()}
}

// Is reports whether d identifies type T. This is the check to run
// before any type-specific handling of a value described by d.
//
// It is a package function rather than a method because Go methods
// cannot take type parameters.
func Is[T any](d TypeDef) bool {
	return d.id == IDOf[T]()
}

// ID returns the identity token.
func (d TypeDef) ID() ID {
	return d.id
}

// Name returns the display name. Its spelling depends on the build mode
// (see the package documentation); treat it as diagnostic text only,
// never as a type-equality key.
func (d TypeDef) Name() string {
	return d.name
}

// Equal reports whether d and other identify the same type. Names play
// no part in the comparison.
func (d TypeDef) Equal(other TypeDef) bool {
	return d.id == other.id
}

// Compare totally orders TypeDefs. It returns a negative number, zero,
// or a positive number as d sorts before, equal to, or after other.
// The order is deterministic within one run of the program and
// consistent with Equal; it is not meaningful across runs.
func (d TypeDef) Compare(other TypeDef) int {
	return d.id.Compare(other.id)
}

// Format implements fmt.Formatter. The plain verbs render the display
// name; %+v and %#v render a decorated form that still contains it.
func (d TypeDef) Format(f fmt.State, verb rune) {
	switch {
	case verb == 'v' && (f.Flag('+') || f.Flag('#')):
		fmt.Fprintf(f, "TypeDef{name: %q}", d.name)
	case verb == 'q':
		fmt.Fprintf(f, "%q", d.name)
	default:
		fmt.Fprint(f, d.name)
	}
}

// String returns the display name.
func (d TypeDef) String() string {
	return d.name
}

// LogValue implements slog.LogValuer, so a TypeDef logs as its display
// name rather than as a struct.
func (d TypeDef) LogValue() slog.Value {
	return slog.StringValue(d.name)
}
