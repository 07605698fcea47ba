// Package ui provides the colored console output used by the mydiff
// CLI. The library itself never prints; everything here goes to stderr.
package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	labelColor   = color.New(color.FgBlue)
	successColor = color.New(color.FgGreen)
	warningColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
)

// Errorf prints a message with a colored ERROR prefix.
func Errorf(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", errorColor.Sprint("ERROR"), fmt.Sprintf(format, a...))
}

// Warningf prints a message with a colored WARNING prefix.
func Warningf(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", warningColor.Sprint("WARNING"), fmt.Sprintf(format, a...))
}

// Successf prints a green status line.
func Successf(format string, a ...interface{}) {
	successColor.Fprintf(os.Stderr, format+"\n", a...)
}

// Row is one line of a Table.
type Row struct {
	Name, Value string
}

// Table prints aligned rows with colored field names.
func Table(rows []Row) {
	width := 0
	for _, r := range rows {
		if len(r.Name) > width {
			width = len(r.Name)
		}
	}
	for _, r := range rows {
		fmt.Fprintf(os.Stderr, "%s: %s\n", labelColor.Sprintf("%-*s", width, r.Name), r.Value)
	}
}
