// Package envfile parses, formats, and locates dotenv-style files.
//
// The parser is deliberately lenient: blank lines, comments, and lines
// without '=' are skipped rather than rejected. Values are taken verbatim,
// with one pair of matching surrounding quotes stripped and no escape
// processing. This is enough to round-trip the base64 payloads that
// encrypted values are stored as; full shell-compatible dotenv syntax
// (multi-line values, escape sequences) is out of scope.
//
// Parsing preserves file order and duplicate keys so callers can implement
// last-wins merge semantics across multiple files.
package envfile
