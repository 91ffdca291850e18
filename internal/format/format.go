package format

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dshills/sqlformat/internal/options"
)

// Format rewrites sql according to cfg. With default options the input is
// returned unchanged.
func Format(sql string, cfg options.Config) string {
	toks := lex(sql)
	stripComments := cfg.Bool(options.StripComments)
	if stripComments {
		toks = dropComments(toks)
	}
	toks = applyCase(toks, cfg.Enum(options.KeywordCase), cfg.Enum(options.IdentifierCase))
	if cfg.Bool(options.UseSpaceAroundOperators) {
		toks = spaceOperators(toks)
	}

	var out string
	switch {
	case cfg.Bool(options.Reindent):
		out = reindent(significant(toks), cfg)
	case cfg.Bool(options.StripWhitespace):
		out = compact(significant(toks))
	default:
		out = join(toks)
		if stripComments {
			out = trimLines(out)
		}
		return out
	}
	if strings.HasSuffix(sql, "\n") && out != "" {
		out += "\n"
	}
	return out
}

func join(toks []token) string {
	var b strings.Builder
	for _, t := range toks {
		b.WriteString(t.text)
	}
	return b.String()
}

func trimLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t\r")
	}
	return strings.Join(lines, "\n")
}

// dropComments removes comments. A block comment becomes a single space so
// the tokens around it stay separated.
func dropComments(toks []token) []token {
	out := make([]token, 0, len(toks))
	for _, t := range toks {
		switch t.kind {
		case tkLineComment:
			continue
		case tkBlockComment:
			out = append(out, token{kind: tkSpace, text: " "})
		default:
			out = append(out, t)
		}
	}
	return out
}

func applyCase(toks []token, keywordCase, identifierCase string) []token {
	if keywordCase == options.CasePreserve && identifierCase == options.CasePreserve {
		return toks
	}
	title := cases.Title(language.Und)
	out := make([]token, len(toks))
	for i, t := range toks {
		if t.kind == tkWord {
			if keywords[strings.ToUpper(t.text)] {
				t.text = changeCase(t.text, keywordCase, title)
			} else {
				t.text = changeCase(t.text, identifierCase, title)
			}
		}
		out[i] = t
	}
	return out
}

func changeCase(s, style string, title cases.Caser) string {
	switch style {
	case options.CaseUpper:
		return strings.ToUpper(s)
	case options.CaseLower:
		return strings.ToLower(s)
	case options.CaseCapitalize:
		return title.String(s)
	default:
		return s
	}
}

// spaceOperators puts exactly one space on each side of binary operators.
// Whitespace containing a newline is left alone.
func spaceOperators(toks []token) []token {
	var out []token
	pending := false
	for i, t := range toks {
		if pending {
			pending = false
			switch {
			case t.kind == tkSpace && strings.Contains(t.text, "\n"):
			case t.kind == tkSpace:
				t.text = " "
			default:
				out = append(out, token{kind: tkSpace, text: " "})
			}
		}
		if t.kind == tkOperator && t.text != "::" && isBinary(toks, i) {
			if n := len(out); n > 0 && out[n-1].kind == tkSpace && !strings.Contains(out[n-1].text, "\n") {
				out[n-1].text = " "
			} else if n > 0 && out[n-1].kind != tkSpace {
				out = append(out, token{kind: tkSpace, text: " "})
			}
			pending = true
		}
		out = append(out, t)
	}
	return out
}

// isBinary reports whether the operator at i has an operand on its left,
// which tells "a * b" from "SELECT *" and "-1".
func isBinary(toks []token, i int) bool {
	for j := i - 1; j >= 0; j-- {
		p := toks[j]
		switch {
		case p.kind == tkSpace || p.isComment():
			continue
		case p.kind == tkWord:
			up := strings.ToUpper(p.text)
			return !keywords[up] || operandKeywords[up]
		case p.kind == tkNumber || p.kind == tkString || p.kind == tkQuotedIdent:
			return true
		default:
			return p.is(")")
		}
	}
	return false
}

type item struct {
	token
	// spaced is set when whitespace preceded the token.
	spaced bool
}

// significant drops whitespace, remembering where it was.
func significant(toks []token) []item {
	var items []item
	spaced := false
	for _, t := range toks {
		if t.kind == tkSpace {
			spaced = true
			continue
		}
		items = append(items, item{token: t, spaced: spaced})
		spaced = false
	}
	return items
}

func needSpace(prev *item, cur item) bool {
	if prev == nil || !cur.spaced {
		return false
	}
	if prev.is("(") || prev.is(".") || cur.is(")") || cur.is(",") || cur.is(";") || cur.is(".") {
		return false
	}
	return true
}

// compact joins the tokens with single spaces.
func compact(items []item) string {
	var b strings.Builder
	var prev *item
	for i := range items {
		it := items[i]
		if needSpace(prev, it) {
			b.WriteByte(' ')
		}
		b.WriteString(it.text)
		if it.kind == tkLineComment && i < len(items)-1 {
			b.WriteByte('\n')
			items[i+1].spaced = false
		}
		prev = &items[i]
	}
	return strings.TrimSpace(b.String())
}
