package envfile

import "strings"

// Escaping helpers for the dump command's output modes. Plain .env output
// uses minimal quoting; bash mode quotes anything the shell could interpret;
// make mode escapes for GNU Make variable assignment (no quoting, since
// quotes would be literal in Make).

// bashSpecial lists characters that require quoting for safe bash sourcing.
const bashSpecial = " \t\n\r$`\\\"'&|;<>(){}[]*?!~#="

// NeedsSimpleQuoting reports whether a value must be quoted in plain .env output.
func NeedsSimpleQuoting(value string) bool {
	if value == "" {
		return true
	}
	return strings.ContainsAny(value, " \t\n\r=\"'")
}

// EscapeSimple escapes a value for use inside double quotes in plain .env output.
func EscapeSimple(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	return strings.ReplaceAll(value, `"`, `\"`)
}

// NeedsBashQuoting reports whether a value must be quoted for bash sourcing.
func NeedsBashQuoting(value string) bool {
	if value == "" {
		return true
	}
	return strings.ContainsAny(value, bashSpecial)
}

// EscapeBash escapes a value for use inside bash double quotes.
func EscapeBash(value string) string {
	var b strings.Builder
	for _, c := range value {
		switch c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '$':
			b.WriteString(`\$`)
		case '`':
			b.WriteString("\\`")
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '!':
			// History expansion in interactive shells.
			b.WriteString(`\!`)
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

// EscapeMake escapes a value for GNU Make variable assignment. The value is
// expected to be exported and read back as $$VAR in recipes, so a literal
// dollar must survive one round of Make expansion.
func EscapeMake(value string) string {
	var b strings.Builder
	for _, c := range value {
		switch c {
		case '$':
			b.WriteString("$$")
		case '#':
			b.WriteString(`\#`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}
