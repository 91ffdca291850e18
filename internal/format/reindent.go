package format

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/dshills/sqlformat/internal/options"
)

// layout accumulates reindented output.
type layout struct {
	buf  []byte
	unit string
}

// newline starts a new line indented by level units. Calling it again on an
// empty line only replaces the indentation.
func (l *layout) newline(level int) {
	l.buf = bytes.TrimRight(l.buf, " \t")
	if len(l.buf) == 0 {
		return
	}
	if l.buf[len(l.buf)-1] != '\n' {
		l.buf = append(l.buf, '\n')
	}
	l.buf = append(l.buf, strings.Repeat(l.unit, level)...)
}

func (l *layout) blankLine() {
	l.buf = bytes.TrimRight(l.buf, " \t\n")
	if len(l.buf) > 0 {
		l.buf = append(l.buf, '\n', '\n')
	}
}

func (l *layout) atLineStart() bool {
	t := bytes.TrimRight(l.buf, " \t")
	return len(t) == 0 || t[len(t)-1] == '\n'
}

func (l *layout) column() int {
	return utf8.RuneCount(l.buf[bytes.LastIndexByte(l.buf, '\n')+1:])
}

func (l *layout) write(s string, space bool) {
	if space && !l.atLineStart() {
		l.buf = append(l.buf, ' ')
	}
	l.buf = append(l.buf, s...)
}

func indentUnit(cfg options.Config) string {
	if cfg.Bool(options.IndentTabs) {
		return "\t"
	}
	return strings.Repeat(" ", cfg.Int(options.IndentWidth))
}

// reindent lays statements out one clause per line. Items of select, group
// by and order by lists go one per line, or are wrapped at WrapAfter columns
// when it is set. Conditions in WHERE, HAVING and JOIN clauses break before
// AND / OR.
func reindent(items []item, cfg options.Config) string {
	l := &layout{unit: indentUnit(cfg)}
	wrapAfter := cfg.Int(options.WrapAfter)
	commaFirst := cfg.Bool(options.CommaFirst)

	// clauses[d] is the clause open at paren depth d.
	clauses := []string{""}
	between := false
	newStatement := false
	forceSpace := false
	var prev *item

	for i := range items {
		it := items[i]
		depth := len(clauses) - 1
		space := needSpace(prev, it) || forceSpace
		forceSpace = false
		if newStatement {
			l.blankLine()
			newStatement = false
		}

		up := ""
		if it.kind == tkWord {
			up = strings.ToUpper(it.text)
		}

		switch {
		case it.kind == tkLineComment:
			l.write(it.text, true)
			level := depth
			if clauses[depth] != "" {
				level++
			}
			l.newline(level)

		case up != "" && keywords[up]:
			switch {
			case startsClause(items, i, depth, clauses[depth]):
				l.newline(depth)
				clauses[depth] = clauseName(up)
			case (up == "AND" || up == "OR") && conditionClauses[clauses[depth]]:
				if up == "AND" && between {
					between = false
				} else {
					l.newline(depth + 1)
				}
			case up == "BETWEEN":
				between = true
			}
			l.write(it.text, space)

		case it.is("("):
			l.write(it.text, space)
			clauses = append(clauses, "")

		case it.is(")"):
			if depth > 0 {
				clauses = clauses[:depth]
			}
			l.write(it.text, false)

		case it.is(",") && listClauses[clauses[depth]]:
			next := ""
			if i+1 < len(items) {
				next = items[i+1].text
			}
			if commaFirst {
				if wrapAfter == 0 || l.column()+2+utf8.RuneCountInString(next) > wrapAfter {
					l.newline(depth + 1)
				}
				l.write(it.text, false)
				forceSpace = true
			} else {
				l.write(it.text, false)
				if wrapAfter == 0 || l.column()+1+utf8.RuneCountInString(next) > wrapAfter {
					l.newline(depth + 1)
				}
			}

		case it.is(";"):
			l.write(it.text, false)
			clauses = clauses[:1]
			clauses[0] = ""
			between = false
			newStatement = true

		default:
			l.write(it.text, space)
		}
		prev = &items[i]
	}
	return strings.TrimRight(string(l.buf), " \t\n")
}

// startsClause reports whether the keyword at i opens a new clause line.
// Inside parentheses only a subquery's clauses do.
func startsClause(items []item, i, depth int, current string) bool {
	up := strings.ToUpper(items[i].text)
	if depth > 0 && current == "" {
		return up == "SELECT"
	}
	prevUp, nextUp := wordAt(items, i-1), wordAt(items, i+1)
	switch {
	case joinModifiers[up]:
		return !joinModifiers[prevUp] && (nextUp == "JOIN" || joinModifiers[nextUp])
	case up == "JOIN":
		return !joinModifiers[prevUp]
	case up == "GROUP" || up == "ORDER":
		return nextUp == "BY"
	case up == "UPDATE" || up == "DELETE":
		return prevUp != "ON" && prevUp != "FOR"
	default:
		return clauseKeywords[up]
	}
}

func clauseName(up string) string {
	if joinModifiers[up] {
		return "JOIN"
	}
	return up
}

func wordAt(items []item, i int) string {
	if i < 0 || i >= len(items) || items[i].kind != tkWord {
		return ""
	}
	return strings.ToUpper(items[i].text)
}
