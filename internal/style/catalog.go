package style

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dshills/sqlformat/internal/options"
)

// ErrUnknownStyle is returned when a style name is not in the catalog.
var ErrUnknownStyle = errors.New("unknown style")

//go:embed styles.yaml
var builtinYAML []byte

var builtin = mustLoad(builtinYAML)

// Catalog is a read-only table of named styles.
type Catalog struct {
	styles map[string]options.Overlay
	names  []string
}

// Builtin returns the catalog compiled into the binary.
func Builtin() *Catalog { return builtin }

func mustLoad(data []byte) *Catalog {
	c, err := Load(data)
	if err != nil {
		panic(fmt.Sprintf("style: built-in catalog: %v", err))
	}
	return c
}

// Load builds a catalog from a YAML document mapping style names to
// Name: value tables. Every value is validated against the option schema.
func Load(data []byte) (*Catalog, error) {
	var raw map[string]map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing style catalog: %w", err)
	}

	c := &Catalog{styles: make(map[string]options.Overlay, len(raw))}
	for name, entries := range raw {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" || options.IsInline(key) {
			return nil, fmt.Errorf("style catalog: invalid style name %q", name)
		}
		if _, dup := c.styles[key]; dup {
			return nil, fmt.Errorf("style catalog: duplicate style %q", name)
		}

		var o options.Overlay
		for optName, value := range entries {
			if err := options.ParseEntry(&o, optName, fmt.Sprint(value)); err != nil {
				return nil, fmt.Errorf("style %q: %w", name, err)
			}
		}
		if o.BasedOn != "" {
			return nil, fmt.Errorf("style %q: named styles cannot declare %s", name, options.BasedOnStyle)
		}
		c.styles[key] = o
		c.names = append(c.names, key)
	}
	slices.Sort(c.names)
	return c, nil
}

// Names returns the style names in sorted order.
func (c *Catalog) Names() []string { return slices.Clone(c.names) }

// Lookup returns the named style, matched case-insensitively.
func (c *Catalog) Lookup(name string) (options.Overlay, error) {
	o, ok := c.styles[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return options.Overlay{}, fmt.Errorf("%w %q (available: %s)", ErrUnknownStyle, strings.TrimSpace(name), strings.Join(c.names, ", "))
	}
	return o, nil
}

// Resolve accepts either an inline style ("{IndentWidth: 9}"), which is
// parsed as-is, or a style name, which is looked up in the catalog.
// An inline style may carry a BasedOn reference; expanding it is left to the
// caller.
func (c *Catalog) Resolve(nameOrInline string) (options.Overlay, error) {
	if options.IsInline(nameOrInline) {
		return options.ParseInline(nameOrInline)
	}
	return c.Lookup(nameOrInline)
}
