package demangle

import (
	"bytes"
	"reflect"
	"testing"
	"time"
)

type payload struct {
	ID   int64
	Body []byte
}

type pair[A, B any] struct {
	First  A
	Second B
}

func TestType(t *testing.T) {
	tests := []struct {
		name string
		typ  reflect.Type
		want string
	}{
		{"predeclared int64", reflect.TypeOf(int64(0)), "int64"},
		{"predeclared bool", reflect.TypeOf(false), "bool"},
		{"predeclared string", reflect.TypeOf(""), "string"},
		{"error interface", reflect.TypeOf((*error)(nil)).Elem(), "error"},
		{"empty interface", reflect.TypeOf((*any)(nil)).Elem(), "any"},
		{"named struct", reflect.TypeOf(payload{}), "demangle.payload"},
		{"stdlib struct", reflect.TypeOf(time.Time{}), "time.Time"},
		{"pointer", reflect.TypeOf(&bytes.Buffer{}), "*bytes.Buffer"},
		{"slice", reflect.TypeOf([]string(nil)), "[]string"},
		{"byte slice", reflect.TypeOf([]byte(nil)), "[]uint8"},
		{"array", reflect.TypeOf([4]string{}), "[4]string"},
		{"nested map", reflect.TypeOf(map[string][]int64(nil)), "map[string][]int64"},
		{"bidirectional chan", reflect.TypeOf(make(chan int)), "chan int"},
		{"receive-only chan", reflect.TypeOf((<-chan int)(nil)), "<-chan int"},
		{"send-only chan", reflect.TypeOf((chan<- int)(nil)), "chan<- int"},
		{"func no results", reflect.TypeOf(func(int) {}), "func(int)"},
		{"func one result", reflect.TypeOf(func(string) error { return nil }), "func(string) error"},
		{"func two results", reflect.TypeOf(func(int) (string, error) { return "", nil }), "func(int) (string, error)"},
		{"variadic func", reflect.TypeOf(func(string, ...int) {}), "func(string, ...int)"},
		{"anonymous struct", reflect.TypeOf(struct{ X int }{}), "struct { X int }"},
		{
			"generic with predeclared args",
			reflect.TypeOf(pair[int64, string]{}),
			"demangle.pair[int64, string]",
		},
		{
			"generic with named arg",
			reflect.TypeOf(pair[payload, bool]{}),
			"demangle.pair[demangle.payload, bool]",
		},
		{
			"generic with composite arg",
			reflect.TypeOf(pair[[]int64, map[string]bool]{}),
			"demangle.pair[[]int64, map[string]bool]",
		},
		{
			"slice of generic",
			reflect.TypeOf([]pair[int64, bool](nil)),
			"[]demangle.pair[int64, bool]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Type(tt.typ); got != tt.want {
				t.Errorf("Type(%v) = %q, want %q", tt.typ, got, tt.want)
			}
		})
	}
}

func TestKey(t *testing.T) {
	const pkg = "github.com/nercury/typedef/internal/demangle"

	tests := []struct {
		name string
		typ  reflect.Type
		want string
	}{
		{"predeclared", reflect.TypeOf(int64(0)), "int64"},
		{"named struct", reflect.TypeOf(payload{}), pkg + ".payload"},
		{"stdlib struct", reflect.TypeOf(time.Time{}), "time.Time"},
		{"pointer", reflect.TypeOf(&payload{}), "*" + pkg + ".payload"},
		{"slice", reflect.TypeOf([]payload(nil)), "[]" + pkg + ".payload"},
		{"map", reflect.TypeOf(map[string]payload(nil)), "map[string]" + pkg + ".payload"},
		{"empty interface", reflect.TypeOf((*any)(nil)).Elem(), "interface {}"},
		{"func", reflect.TypeOf(func(payload) error { return nil }), "func(" + pkg + ".payload) error"},
		{
			"generic instantiation",
			reflect.TypeOf(pair[payload, int64]{}),
			pkg + ".pair[" + pkg + ".payload,int64]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Key(tt.typ); got != tt.want {
				t.Errorf("Key(%v) = %q, want %q", tt.typ, got, tt.want)
			}
		})
	}
}

func TestKeyDistinguishesNamedTypes(t *testing.T) {
	a := Key(reflect.TypeOf(payload{}))
	b := Key(reflect.TypeOf(pair[int64, int64]{}))
	if a == b {
		t.Fatalf("distinct named types share key %q", a)
	}
}

func TestShortenTypeArgs(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"payload", "payload"},
		{"pair[int64,string]", "pair[int64, string]"},
		{
			"pair[github.com/nercury/typedef/internal/demangle.payload,bool]",
			"pair[demangle.payload, bool]",
		},
		{
			"pair[[]int64,map[string]bool]",
			"pair[[]int64, map[string]bool]",
		},
		{
			"pair[*github.com/nercury/typedef/internal/demangle.payload,int64]",
			"pair[*demangle.payload, int64]",
		},
	}

	for _, tt := range tests {
		if got := shortenTypeArgs(tt.in); got != tt.want {
			t.Errorf("shortenTypeArgs(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
