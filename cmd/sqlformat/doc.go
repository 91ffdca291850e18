// Sqlformat is a SQL pretty-printer with layered, per-directory configuration.
//
// Options come from the built-in defaults, the nearest .sqlparse file above
// the input (optionally based on a named style), the --style flag and the
// per-option flags, in increasing order of precedence.
//
// Usage:
//
//	sqlformat query.sql                       # format using the nearest .sqlparse
//	sqlformat -k upper -r query.sql           # uppercase keywords, reindent
//	sqlformat --style=mysql query.sql         # use the built-in mysql style
//	sqlformat --style='{IndentWidth: 4}' -    # inline style, SQL from stdin
//	sqlformat --dump-config query.sql         # print the resolved configuration
//	sqlformat config init --style=postgres    # write ./.sqlparse
//	sqlformat styles                          # list built-in styles
package main
