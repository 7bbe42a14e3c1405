// Package ui formats the one-line status messages printed by arcadehub
// commands.
package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Level selects the symbol and color of a status line.
type Level int

const (
	LevelSuccess Level = iota
	LevelWarning
	LevelFailure
	LevelInfo
)

var styles = map[Level]struct {
	symbol string
	attrs  []color.Attribute
}{
	LevelSuccess: {"✓", []color.Attribute{color.FgGreen, color.Bold}},
	LevelWarning: {"!", []color.Attribute{color.FgYellow}},
	LevelFailure: {"✗", []color.Attribute{color.FgRed, color.Bold}},
	LevelInfo:    {"→", []color.Attribute{color.FgCyan}},
}

// SetNoColor disables color output globally.
func SetNoColor(noColor bool) {
	if noColor {
		color.NoColor = true
	}
}

// Format renders message with the symbol for level.
func Format(level Level, message string) string {
	s := styles[level]
	return color.New(s.attrs...).Sprintf("%s %s", s.symbol, message)
}

// Success writes a green ✓ line.
func Success(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, Format(LevelSuccess, fmt.Sprintf(format, args...)))
}

// Warning writes a yellow ! line.
func Warning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, Format(LevelWarning, fmt.Sprintf(format, args...)))
}

// Failure writes a red ✗ line.
func Failure(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, Format(LevelFailure, fmt.Sprintf(format, args...)))
}

// Info writes a cyan → line.
func Info(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, Format(LevelInfo, fmt.Sprintf(format, args...)))
}
