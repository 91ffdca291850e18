package options

import (
	"fmt"
	"strings"
)

// Parse reads the line-oriented "Name: value" format. Blank lines and lines
// starting with '#' are skipped. The first offending line aborts parsing.
func Parse(text string) (Overlay, error) {
	var o Overlay
	for i, line := range strings.Split(text, "\n") {
		if err := parseEntry(&o, line); err != nil {
			return Overlay{}, fmt.Errorf("line %d: %w", i+1, err)
		}
	}
	return o, nil
}

// IsInline reports whether text uses the braced inline form, e.g. "{IndentWidth: 9}".
func IsInline(text string) bool {
	t := strings.TrimSpace(text)
	return strings.HasPrefix(t, "{") && strings.HasSuffix(t, "}")
}

// ParseInline reads the braced form accepted by --style. Entries are
// separated by commas or newlines and use the same grammar as Parse.
func ParseInline(text string) (Overlay, error) {
	if !IsInline(text) {
		return Overlay{}, fmt.Errorf("%w: inline style must be wrapped in braces: %q", ErrParse, text)
	}
	t := strings.TrimSpace(text)
	body := t[1 : len(t)-1]
	entries := strings.FieldsFunc(body, func(r rune) bool { return r == ',' || r == '\n' })

	var o Overlay
	for _, entry := range entries {
		if err := parseEntry(&o, entry); err != nil {
			return Overlay{}, fmt.Errorf("inline style: %w", err)
		}
	}
	return o, nil
}

// ParseEntry applies a single name/value pair to o, with the same rules as a
// line in Parse. It is used by sources that are not line oriented.
func ParseEntry(o *Overlay, name, value string) error {
	name = strings.TrimSpace(name)
	value = strings.TrimSpace(value)
	if name == "" || value == "" {
		return fmt.Errorf("%w: %q", ErrParse, name+": "+value)
	}
	if IsBasedOnStyle(name) {
		o.BasedOn = value
		return nil
	}
	k, err := NormalizeKey(name)
	if err != nil {
		return err
	}
	v, err := Coerce(k, value)
	if err != nil {
		return err
	}
	o.Set(k, v)
	return nil
}

func parseEntry(o *Overlay, raw string) error {
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	name, value, ok := strings.Cut(line, ":")
	if !ok || strings.TrimSpace(name) == "" || strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %q", ErrParse, line)
	}
	return ParseEntry(o, name, value)
}

// Serialize writes every option of c in canonical order, one per line.
// Parsing the result and applying it to Defaults reproduces c.
func Serialize(c Config) string {
	var b strings.Builder
	for k := Key(0); k < numKeys; k++ {
		fmt.Fprintf(&b, "%s: %s\n", k.ExternalName(), c.values[k])
	}
	return b.String()
}

// SerializeOverlay writes only the keys o sets, preceded by BasedOnStyle when present.
func SerializeOverlay(o Overlay) string {
	var b strings.Builder
	if o.BasedOn != "" {
		fmt.Fprintf(&b, "%s: %s\n", BasedOnStyle, o.BasedOn)
	}
	for _, k := range o.Keys() {
		fmt.Fprintf(&b, "%s: %s\n", k.ExternalName(), o.values[k])
	}
	return b.String()
}
