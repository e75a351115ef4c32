// Package demangle renders reflect types as strings. It produces two
// spellings: a readable, source-like form for display (Type) and a
// fully qualified canonical form used as a sort key and as the raw-name
// fallback (Key).
package demangle

import (
	"fmt"
	"path"
	"reflect"
	"strings"
)

// Type renders t close to Go source syntax, recursing through composite
// types. Named types are spelled with their package's base name, as
// they would appear in source: "int64", "bytes.Buffer", "[]string",
// "map[string][]int64", "Pair[int64, string]".
func Type(t reflect.Type) string {
	if name := t.Name(); name != "" {
		name = shortenTypeArgs(name)
		if pkg := t.PkgPath(); pkg != "" {
			return path.Base(pkg) + "." + name
		}
		return name
	}

	switch t.Kind() {
	case reflect.Pointer:
		return "*" + Type(t.Elem())
	case reflect.Slice:
		return "[]" + Type(t.Elem())
	case reflect.Array:
		return fmt.Sprintf("[%d]%s", t.Len(), Type(t.Elem()))
	case reflect.Map:
		return "map[" + Type(t.Key()) + "]" + Type(t.Elem())
	case reflect.Chan:
		return chanPrefix(t.ChanDir()) + Type(t.Elem())
	case reflect.Func:
		return funcSignature(t, Type)
	case reflect.Interface:
		if t.NumMethod() == 0 {
			return "any"
		}
		// Anonymous non-empty interfaces have no source-like short
		// form worth reconstructing.
		return t.String()
	default:
		// Anonymous structs and anything reflect grows later.
		return t.String()
	}
}

// Key renders t in fully qualified canonical form: every named
// component spelled with its import path. Unique per type for named
// types, stable within one build, and deliberately ugly - it is the
// raw-name fallback, not a display string.
func Key(t reflect.Type) string {
	if name := t.Name(); name != "" {
		// For generic instantiations reflect already embeds fully
		// qualified type arguments in Name.
		if pkg := t.PkgPath(); pkg != "" {
			return pkg + "." + name
		}
		return name
	}

	switch t.Kind() {
	case reflect.Pointer:
		return "*" + Key(t.Elem())
	case reflect.Slice:
		return "[]" + Key(t.Elem())
	case reflect.Array:
		return fmt.Sprintf("[%d]%s", t.Len(), Key(t.Elem()))
	case reflect.Map:
		return "map[" + Key(t.Key()) + "]" + Key(t.Elem())
	case reflect.Chan:
		return chanPrefix(t.ChanDir()) + Key(t.Elem())
	case reflect.Func:
		return funcSignature(t, Key)
	case reflect.Interface:
		if t.NumMethod() == 0 {
			return "interface {}"
		}
		return t.String()
	default:
		return t.String()
	}
}

func chanPrefix(dir reflect.ChanDir) string {
	switch dir {
	case reflect.RecvDir:
		return "<-chan "
	case reflect.SendDir:
		return "chan<- "
	default:
		return "chan "
	}
}

// funcSignature renders a function type, spelling parameter and result
// types with render. The final parameter of a variadic function is
// rendered as "...E" rather than "[]E".
func funcSignature(t reflect.Type, render func(reflect.Type) string) string {
	var b strings.Builder
	b.WriteString("func(")
	for i := 0; i < t.NumIn(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		if t.IsVariadic() && i == t.NumIn()-1 {
			b.WriteString("...")
			b.WriteString(render(t.In(i).Elem()))
		} else {
			b.WriteString(render(t.In(i)))
		}
	}
	b.WriteString(")")
	switch t.NumOut() {
	case 0:
	case 1:
		b.WriteString(" ")
		b.WriteString(render(t.Out(0)))
	default:
		b.WriteString(" (")
		for i := 0; i < t.NumOut(); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(render(t.Out(i)))
		}
		b.WriteString(")")
	}
	return b.String()
}

// shortenTypeArgs rewrites the type-argument list reflect embeds in the
// Name of a generic instantiation. reflect spells arguments with full
// import paths and no spaces ("Pair[golang.org/x/mod.Foo,int64]");
// source syntax wants base package names and a space after each comma
// ("Pair[mod.Foo, int64]").
func shortenTypeArgs(name string) string {
	if !strings.ContainsRune(name, '[') {
		return name
	}
	buf := make([]byte, 0, len(name))
	seg := 0 // start of the identifier currently being written
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch c {
		case '[', ']', ',', ' ', '*', '(', ')':
			buf = append(buf, c)
			if c == ',' {
				buf = append(buf, ' ')
			}
			seg = len(buf)
		case '/':
			// Everything written for this segment so far is an import
			// path prefix; drop it.
			buf = buf[:seg]
		default:
			buf = append(buf, c)
		}
	}
	return string(buf)
}
