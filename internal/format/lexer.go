package format

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type kind int

const (
	tkSpace kind = iota
	tkLineComment
	tkBlockComment
	tkString
	tkQuotedIdent
	tkNumber
	tkWord
	tkOperator
	tkPunct
)

type token struct {
	kind kind
	text string
}

func (t token) isComment() bool { return t.kind == tkLineComment || t.kind == tkBlockComment }

func (t token) is(text string) bool {
	return (t.kind == tkPunct || t.kind == tkOperator) && t.text == text
}

// twoCharOps are matched before single characters.
var twoCharOps = []string{"<=", ">=", "<>", "!=", "||", "::", "=>"}

const singleOps = "=<>+-*/%"

// lex splits src into tokens. Concatenating the token texts yields src.
func lex(src string) []token {
	var toks []token
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRuneInString(src[i:])
		start := i
		var k kind
		switch {
		case unicode.IsSpace(r):
			k = tkSpace
			i = scanWhile(src, i, unicode.IsSpace)
		case strings.HasPrefix(src[i:], "--"):
			k = tkLineComment
			i = scanLine(src, i)
		case strings.HasPrefix(src[i:], "/*"):
			k = tkBlockComment
			if end := strings.Index(src[i+2:], "*/"); end >= 0 {
				i += end + 4
			} else {
				i = len(src)
			}
		case r == '\'':
			k = tkString
			i = scanQuoted(src, i, '\'')
		case r == '"' || r == '`':
			k = tkQuotedIdent
			i = scanQuoted(src, i, byte(r))
		case r == '[':
			k = tkQuotedIdent
			i = scanQuoted(src, i, ']')
		case isDigit(r) || (r == '.' && i+1 < len(src) && isDigit(rune(src[i+1]))):
			k = tkNumber
			i = scanWhile(src, i, func(r rune) bool { return isDigit(r) || r == '.' })
		case isWordStart(r):
			k = tkWord
			i = scanWhile(src, i, isWordPart)
		default:
			k = tkPunct
			i += size
			for _, op := range twoCharOps {
				if strings.HasPrefix(src[start:], op) {
					k = tkOperator
					i = start + len(op)
					break
				}
			}
			if k == tkPunct && strings.ContainsRune(singleOps, r) {
				k = tkOperator
			}
		}
		toks = append(toks, token{kind: k, text: src[start:i]})
	}
	return toks
}

func scanWhile(src string, i int, ok func(rune) bool) int {
	for i < len(src) {
		r, size := utf8.DecodeRuneInString(src[i:])
		if !ok(r) {
			break
		}
		i += size
	}
	return i
}

// scanLine stops before the newline so it stays whitespace.
func scanLine(src string, i int) int {
	if end := strings.IndexByte(src[i:], '\n'); end >= 0 {
		return i + end
	}
	return len(src)
}

// scanQuoted consumes a quoted run starting at src[i]. A doubled closing
// quote is an escape. Unterminated input runs to the end.
func scanQuoted(src string, i int, closing byte) int {
	i++
	for i < len(src) {
		if src[i] == closing {
			if i+1 < len(src) && src[i+1] == closing && closing != ']' {
				i += 2
				continue
			}
			return i + 1
		}
		if src[i] == '\\' && closing == '\'' && i+1 < len(src) {
			i += 2
			continue
		}
		i++
	}
	return len(src)
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isWordStart(r rune) bool { return r == '_' || unicode.IsLetter(r) }

func isWordPart(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
