package ui

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
)

var (
	reset = "\033[0m"
	bold  = "\033[1m"
	dim   = "\033[2m"

	fgGray    = "\033[90m"
	fgBlue    = "\033[34m"
	fgRed     = "\033[31m"
	fgMagenta = "\033[95m"
	fgCyan    = "\033[96m"

	symCross = "✖"
)

var (
	forceColor   bool
	disableColor bool
)

func SetColorForcing(force, disable bool) {
	forceColor = force
	disableColor = disable
}

// colorEnabled reports whether stdout can show ANSI colors. The mono theme
// is always plain; NO_COLOR and dumb terminals turn color off unless forced.
func colorEnabled() bool {
	if disableColor || current.Name == "mono" {
		return false
	}
	if forceColor {
		return true
	}
	if termenv.EnvNoColor() {
		return false
	}
	return termenv.NewOutput(os.Stdout).Profile != termenv.Ascii
}

func C(color, s string) string {
	if color == "" || !colorEnabled() {
		return s
	}
	return color + s + reset
}

func Fail(msg string) { fmt.Fprintln(os.Stderr, C(Current().Error, symCross+" "+msg)) }
