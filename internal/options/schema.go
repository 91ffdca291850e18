package options

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// ErrUnknownOption is returned for an option name outside the schema.
	ErrUnknownOption = errors.New("unknown option")
	// ErrInvalidValue is returned when a value cannot be coerced to its option's type.
	ErrInvalidValue = errors.New("invalid value")
	// ErrParse is returned for a structurally malformed entry.
	ErrParse = errors.New("malformed entry")
)

// Key identifies a formatting option. Declaration order is canonical order.
type Key int

const (
	KeywordCase Key = iota
	IdentifierCase
	StripComments
	StripWhitespace
	UseSpaceAroundOperators
	Reindent
	IndentTabs
	IndentWidth
	WrapAfter
	CommaFirst

	numKeys
)

// Kind is the declared value type of an option.
type Kind int

const (
	KindEnum Kind = iota
	KindBool
	KindInt

	KindInvalid Kind = -1
)

// Case styles accepted by KeywordCase and IdentifierCase.
const (
	CasePreserve   = "preserve"
	CaseUpper      = "upper"
	CaseLower      = "lower"
	CaseCapitalize = "capitalize"
)

// BasedOnStyle is the pseudo option naming a base style. It is never coerced
// and never stored as a regular option.
const BasedOnStyle = "BasedOnStyle"

type option struct {
	name     string
	kind     Kind
	enum     []string
	fallback Value
}

var caseStyles = []string{CasePreserve, CaseUpper, CaseLower, CaseCapitalize}

var schema = [numKeys]option{
	KeywordCase:             {name: "keyword_case", kind: KindEnum, enum: caseStyles, fallback: Enum(CasePreserve)},
	IdentifierCase:          {name: "identifier_case", kind: KindEnum, enum: caseStyles, fallback: Enum(CasePreserve)},
	StripComments:           {name: "strip_comments", kind: KindBool, fallback: Bool(false)},
	StripWhitespace:         {name: "strip_whitespace", kind: KindBool, fallback: Bool(false)},
	UseSpaceAroundOperators: {name: "use_space_around_operators", kind: KindBool, fallback: Bool(false)},
	Reindent:                {name: "reindent", kind: KindBool, fallback: Bool(false)},
	IndentTabs:              {name: "indent_tabs", kind: KindBool, fallback: Bool(false)},
	IndentWidth:             {name: "indent_width", kind: KindInt, fallback: Int(2)},
	WrapAfter:               {name: "wrap_after", kind: KindInt, fallback: Int(0)},
	CommaFirst:              {name: "comma_first", kind: KindBool, fallback: Bool(false)},
}

// externalNames and lookup are computed once and only read afterwards.
var (
	externalNames = buildExternalNames()
	lookup        = buildLookup()
	defaults      = buildDefaults()
)

func buildExternalNames() [numKeys]string {
	title := cases.Title(language.Und)
	var names [numKeys]string
	for k := Key(0); k < numKeys; k++ {
		words := strings.Split(schema[k].name, "_")
		for i, w := range words {
			words[i] = title.String(w)
		}
		names[k] = strings.Join(words, "")
	}
	return names
}

func buildLookup() map[string]Key {
	m := make(map[string]Key, numKeys)
	for k := Key(0); k < numKeys; k++ {
		m[fold(schema[k].name)] = k
	}
	return m
}

func buildDefaults() Config {
	var c Config
	for k := Key(0); k < numKeys; k++ {
		c.values[k] = schema[k].fallback
	}
	return c
}

// fold reduces an option name to its comparison form: lowercase with word
// separators removed.
func fold(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch r {
		case '_', '-', ' ':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Keys returns every option key in canonical order.
func Keys() []Key {
	keys := make([]Key, numKeys)
	for k := Key(0); k < numKeys; k++ {
		keys[k] = k
	}
	return keys
}

// Valid reports whether k is a declared option.
func (k Key) Valid() bool { return k >= 0 && k < numKeys }

// String returns the internal snake_case name.
func (k Key) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Key(%d)", int(k))
	}
	return schema[k].name
}

// ExternalName returns the name used in configuration files, e.g. "KeywordCase".
func (k Key) ExternalName() string {
	if !k.Valid() {
		return k.String()
	}
	return externalNames[k]
}

// Kind returns the declared value type of k, or KindInvalid for an
// undeclared key.
func (k Key) Kind() Kind {
	if !k.Valid() {
		return KindInvalid
	}
	return schema[k].kind
}

// Choices returns the accepted values of an enumerated option, or nil.
func (k Key) Choices() []string {
	if !k.Valid() {
		return nil
	}
	return slices.Clone(schema[k].enum)
}

// IsBasedOnStyle reports whether name refers to the BasedOnStyle pseudo option.
func IsBasedOnStyle(name string) bool {
	return fold(name) == fold(BasedOnStyle)
}

// NormalizeKey maps an option name in any supported spelling to its Key.
func NormalizeKey(raw string) (Key, error) {
	k, ok := lookup[fold(raw)]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnknownOption, strings.TrimSpace(raw))
	}
	return k, nil
}

// DefaultValue returns the built-in default of k.
func DefaultValue(k Key) Value {
	if !k.Valid() {
		return Value{}
	}
	return schema[k].fallback
}

// Defaults returns the total default configuration.
func Defaults() Config { return defaults }

// Coerce converts raw text to a value of k's declared type.
func Coerce(k Key, raw string) (Value, error) {
	if !k.Valid() {
		return Value{}, fmt.Errorf("%w %s", ErrUnknownOption, k)
	}
	text := strings.TrimSpace(raw)
	opt := schema[k]
	switch opt.kind {
	case KindBool:
		switch strings.ToLower(text) {
		case "yes", "true", "1":
			return Bool(true), nil
		case "no", "false", "0":
			return Bool(false), nil
		}
		return Value{}, fmt.Errorf("%w for %s: %q is not a boolean (yes/no, true/false, 1/0)", ErrInvalidValue, k.ExternalName(), text)
	case KindInt:
		n, err := strconv.ParseUint(text, 10, strconv.IntSize-1)
		if err != nil {
			return Value{}, fmt.Errorf("%w for %s: %q is not a non-negative integer", ErrInvalidValue, k.ExternalName(), text)
		}
		return Int(int(n)), nil
	default:
		v := strings.ToLower(text)
		if !slices.Contains(opt.enum, v) {
			return Value{}, fmt.Errorf("%w for %s: %q (choose from %s)", ErrInvalidValue, k.ExternalName(), text, strings.Join(opt.enum, ", "))
		}
		return Enum(v), nil
	}
}
