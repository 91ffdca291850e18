// Package style holds the catalog of named formatting styles.
//
// A style is an [options.Overlay]. Named styles come from a built-in table
// embedded in the binary; an inline style such as "{IndentWidth: 9}" is
// parsed directly and never looked up. Named styles are flat: they cannot
// declare BasedOnStyle themselves.
package style
