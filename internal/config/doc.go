// Package config finds, reads and resolves sqlformat configuration.
//
// Precedence (highest to lowest):
//  1. CLI flags (--keywords, --indent-width, ...)
//  2. CLI style (--style=NAME or --style={Name: value, ...})
//  3. Explicit keys of the nearest .sqlparse file
//  4. The style named by that file's BasedOnStyle
//  5. Built-in defaults
//
// Use [Find] to locate the nearest .sqlparse above a path and [Resolver] to
// turn all sources into an [options.Config]. Nothing is cached: every call
// reads the filesystem again.
package config
