// Package options defines the closed set of formatting options understood by
// sqlformat and the key-value text format used to read and write them.
//
// Every option is a [Key] with a declared [Kind] and exactly one default.
// A partial mapping (one configuration source) is an [Overlay]; the total
// mapping produced by layering overlays on [Defaults] is a [Config].
//
// The text format is one "Name: value" entry per line:
//
//	# comments start with '#'
//	BasedOnStyle: mysql
//	KeywordCase: upper
//	IndentWidth: 4
//
// Use [Parse] for files, [ParseInline] for the "{Name: value, ...}" form
// accepted by --style, and [Serialize] to write a [Config] back out.
package options
