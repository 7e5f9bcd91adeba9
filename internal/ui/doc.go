// Package ui provides theme and color support for terminal output.
// It defines color schemes, ANSI escape code accessors for plain text, and
// lipgloss colors for rendered tables, so that the CLI presentation layer
// stays consistent and honors NO_COLOR.
package ui
