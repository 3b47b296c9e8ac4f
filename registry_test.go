package apidoc

import (
	"errors"
	"slices"
	"testing"
)

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		dotted  string
		wantErr error
	}{
		{name: "valid", dotted: "mylib.pkg.System"},
		{name: "single dot", dotted: "mylib.System"},
		{name: "no dot", dotted: "System", wantErr: ErrInvalidDottedName},
		{name: "empty", dotted: "", wantErr: ErrInvalidDottedName},
		{name: "empty segment", dotted: "mylib..System", wantErr: ErrInvalidDottedName},
		{name: "trailing dot", dotted: "mylib.pkg.", wantErr: ErrInvalidDottedName},
		{name: "whitespace", dotted: "mylib.my System", wantErr: ErrInvalidDottedName},
		{name: "path", dotted: "mylib/pkg.System", wantErr: ErrInvalidDottedName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := NewRegistry()
			err := r.Register(tt.dotted, Class{New: func(*Env) (any, error) { return nil, nil }})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Register(%q) error = %v, want %v", tt.dotted, err, tt.wantErr)
			}
		})
	}
}

func TestRegistry_RegisterDuplicate(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.MustRegister("a.B", 1)
	if err := r.Register("a.B", 2); !errors.Is(err, ErrDuplicateSymbol) {
		t.Errorf("Register() error = %v, want ErrDuplicateSymbol", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustRegister() should panic on a duplicate")
		}
	}()
	r.MustRegister("a.B", 3)
}

func TestNewBuiltinRegistry(t *testing.T) {
	t.Parallel()

	r := NewBuiltinRegistry()

	if got, want := r.Modules(), []string{"apidoc.system", "apidoc.writer"}; !slices.Equal(got, want) {
		t.Errorf("Modules() = %v, want %v", got, want)
	}
	if got, want := r.Symbols("apidoc.system"), []string{"DefaultPrivacy", "PublicSystem", "System"}; !slices.Equal(got, want) {
		t.Errorf("Symbols() = %v, want %v", got, want)
	}

	entries := r.Entries()
	var names []string
	for _, e := range entries {
		names = append(names, e.Name)
		if e.Name == DefaultPrivacyName && e.IsClass {
			t.Error("DefaultPrivacy should not be listed as a class")
		}
		if e.IsClass && e.Doc == "" {
			t.Errorf("class %s has no doc", e.Name)
		}
	}
	want := []string{DefaultPrivacyName, PublicSystemClass, DefaultSystemClass, DefaultWriterClass}
	if !slices.Equal(names, want) {
		t.Errorf("Entries() = %v, want %v", names, want)
	}
}

func TestDefaultRegistry_HasBuiltins(t *testing.T) {
	t.Parallel()

	for _, name := range []string{DefaultSystemClass, PublicSystemClass, DefaultWriterClass} {
		module, sym, err := splitDotted(name)
		if err != nil {
			t.Fatalf("splitDotted(%q) error = %v", name, err)
		}
		if _, _, found := DefaultRegistry().lookup(module, sym); !found {
			t.Errorf("default registry lacks %s", name)
		}
	}
}
