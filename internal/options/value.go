package options

import "strconv"

// Value is an option value tagged with its kind. Values are comparable.
type Value struct {
	kind Kind
	str  string
	b    bool
	n    int
}

// Enum returns an enumerated-string value.
func Enum(s string) Value { return Value{kind: KindEnum, str: s} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer value.
func Int(n int) Value { return Value{kind: KindInt, n: n} }

// Kind returns the value's type.
func (v Value) Kind() Kind { return v.kind }

// Str returns the enumerated string, or "" for other kinds.
func (v Value) Str() string { return v.str }

// Bool returns the boolean payload.
func (v Value) Bool() bool { return v.b }

// Int returns the integer payload.
func (v Value) Int() int { return v.n }

// String renders the value in its external text form, accepted back by Coerce.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.Itoa(v.n)
	default:
		return v.str
	}
}

// Overlay is a partial option mapping: the keys one configuration source set
// explicitly. The zero value is an empty overlay.
type Overlay struct {
	values [numKeys]Value
	set    [numKeys]bool

	// BasedOn names the style this overlay is layered on, if any.
	BasedOn string
}

// Set records v for k.
func (o *Overlay) Set(k Key, v Value) {
	o.values[k] = v
	o.set[k] = true
}

// Get returns the value for k and whether it was set.
func (o Overlay) Get(k Key) (Value, bool) {
	return o.values[k], o.set[k]
}

// Keys returns the explicitly set keys in canonical order.
func (o Overlay) Keys() []Key {
	var keys []Key
	for k := Key(0); k < numKeys; k++ {
		if o.set[k] {
			keys = append(keys, k)
		}
	}
	return keys
}

// Len returns the number of explicitly set keys.
func (o Overlay) Len() int {
	n := 0
	for _, ok := range o.set {
		if ok {
			n++
		}
	}
	return n
}

// Empty reports whether the overlay sets nothing, including BasedOn.
func (o Overlay) Empty() bool { return o.Len() == 0 && o.BasedOn == "" }

// Config is a resolved configuration: every key holds a valid value.
// Obtain one from Defaults or ApplyLayers.
type Config struct {
	values [numKeys]Value
}

// Get returns the value of k.
func (c Config) Get(k Key) Value { return c.values[k] }

// Enum returns the enumerated value of k.
func (c Config) Enum(k Key) string { return c.values[k].str }

// Bool returns the boolean value of k.
func (c Config) Bool(k Key) bool { return c.values[k].b }

// Int returns the integer value of k.
func (c Config) Int(k Key) int { return c.values[k].n }

// With returns a copy of c with the overlay's keys applied.
func (c Config) With(o Overlay) Config {
	for k := Key(0); k < numKeys; k++ {
		if o.set[k] {
			c.values[k] = o.values[k]
		}
	}
	return c
}

// ApplyLayers layers overlays onto base from lowest to highest precedence.
// Each layer overwrites only the keys it sets; BasedOn is ignored here and
// must be expanded into its own layer by the caller.
func ApplyLayers(base Config, layers ...Overlay) Config {
	for _, l := range layers {
		base = base.With(l)
	}
	return base
}
