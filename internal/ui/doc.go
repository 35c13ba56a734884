// Package ui provides semantic text formatting for CLI output.
//
// Formatters pair a color with a plain-text fallback decoration so output
// stays readable when colors are disabled (NO_COLOR, dumb terminals, pipes).
//
// # Usage
//
//	fmt.Println(ui.Success.Sprint("✓") + " Key saved to " + ui.Path.Sprint(path))
//
// With color, the checkmark renders green and the path yellow. Without color,
// decorations like backticks and quotes carry the same meaning.
package ui
