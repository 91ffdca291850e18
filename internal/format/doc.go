// Package format pretty-prints SQL text according to a resolved
// [options.Config].
//
// The lexer is lossless, so with the default configuration [Format] returns
// its input byte for byte. Options are applied in a fixed order: comments are
// stripped, keyword and identifier case is changed, operators are spaced,
// and finally the text is either reindented clause by clause or compacted.
package format
