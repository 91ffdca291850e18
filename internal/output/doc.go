// Package output delivers formatted SQL or a dumped configuration to its
// destination.
//
// Use [Write] with the command's standard output and the --outfile path; an
// empty path writes to standard output.
package output
