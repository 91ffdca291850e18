package style

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/dshills/sqlformat/internal/options"
)

func TestBuiltin_Names(t *testing.T) {
	names := Builtin().Names()
	for _, want := range []string{"compact", "default", "mysql", "oracle", "postgres"} {
		if !slices.Contains(names, want) {
			t.Errorf("Names() = %v, missing %q", names, want)
		}
	}
	if !slices.IsSorted(names) {
		t.Errorf("Names() = %v, want sorted", names)
	}
}

func TestLookup_MySQL(t *testing.T) {
	o, err := Builtin().Lookup("mysql")
	if err != nil {
		t.Fatalf("Lookup error: %v", err)
	}
	if v, ok := o.Get(options.KeywordCase); !ok || v.Str() != options.CaseUpper {
		t.Errorf("mysql keyword_case = %v (set %v), want upper", v, ok)
	}
	if v, ok := o.Get(options.IndentWidth); !ok || v.Int() != 4 {
		t.Errorf("mysql indent_width = %v (set %v), want 4", v, ok)
	}
}

func TestLookup_CaseInsensitive(t *testing.T) {
	for _, name := range []string{"MySQL", "MYSQL", " mysql "} {
		if _, err := Builtin().Lookup(name); err != nil {
			t.Errorf("Lookup(%q) error: %v", name, err)
		}
	}
}

func TestLookup_DefaultIsEmpty(t *testing.T) {
	o, err := Builtin().Lookup("default")
	if err != nil {
		t.Fatalf("Lookup error: %v", err)
	}
	if !o.Empty() {
		t.Errorf("default style sets %v, want nothing", o.Keys())
	}
}

func TestResolve_UnknownStyle(t *testing.T) {
	_, err := Builtin().Resolve("mystyle")
	if !errors.Is(err, ErrUnknownStyle) {
		t.Fatalf("Resolve error = %v, want ErrUnknownStyle", err)
	}
	if !strings.Contains(err.Error(), "mystyle") {
		t.Errorf("error %q should name the style", err)
	}
}

func TestResolve_Inline(t *testing.T) {
	o, err := Builtin().Resolve("{IndentWidth: 6}")
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if v, _ := o.Get(options.IndentWidth); v.Int() != 6 {
		t.Errorf("indent_width = %d, want 6", v.Int())
	}
	if o.Len() != 1 {
		t.Errorf("inline style sets %d keys, want 1", o.Len())
	}
}

func TestResolve_InlineErrors(t *testing.T) {
	_, err := Builtin().Resolve("{Nope: 1}")
	if !errors.Is(err, options.ErrUnknownOption) {
		t.Errorf("Resolve error = %v, want ErrUnknownOption", err)
	}
}

func TestLoad(t *testing.T) {
	data := []byte("house:\n  KeywordCase: Capitalize\n  StripComments: yes\n  WrapAfter: 60\n")
	c, err := Load(data)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	o, err := c.Lookup("HOUSE")
	if err != nil {
		t.Fatalf("Lookup error: %v", err)
	}
	if v, _ := o.Get(options.KeywordCase); v.Str() != options.CaseCapitalize {
		t.Errorf("keyword_case = %q, want capitalize", v.Str())
	}
	if v, _ := o.Get(options.StripComments); !v.Bool() {
		t.Error("strip_comments should be true")
	}
	if v, _ := o.Get(options.WrapAfter); v.Int() != 60 {
		t.Errorf("wrap_after = %d, want 60", v.Int())
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{"unknown option", "x:\n  Bogus: 1\n", options.ErrUnknownOption},
		{"invalid value", "x:\n  IndentWidth: -2\n", options.ErrInvalidValue},
		{"nested style", "x:\n  BasedOnStyle: mysql\n", nil},
		{"duplicate after folding", "A: {}\na: {}\n", nil},
		{"not yaml", "x: [\n", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Load error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
