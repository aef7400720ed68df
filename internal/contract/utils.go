package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Color variables for console output.
var (
	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow)
)

// Okf prints a success line with a leading check mark.
func Okf(useColors bool, format string, args ...any) {
	symbol := "✓"
	if useColors {
		symbol = okColor.Sprint(symbol)
	}
	fmt.Fprintf(os.Stdout, "%s %s\n", symbol, fmt.Sprintf(format, args...))
}

// Failf prints a failure line with a leading cross mark.
func Failf(useColors bool, format string, args ...any) {
	symbol := "✗"
	if useColors {
		symbol = failColor.Sprint(symbol)
	}
	fmt.Fprintf(os.Stdout, "%s %s\n", symbol, fmt.Sprintf(format, args...))
}

// Warnf prints a warning line with a leading warning sign.
func Warnf(useColors bool, format string, args ...any) {
	symbol := "⚠"
	if useColors {
		symbol = warnColor.Sprint(symbol)
	}
	fmt.Fprintf(os.Stdout, "%s %s\n", symbol, fmt.Sprintf(format, args...))
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// ParseColorChoice interprets the yes/no style values accepted by --color.
// Unrecognized values disable color rather than failing the run.
func ParseColorChoice(choice string) bool {
	switch strings.ToLower(strings.TrimSpace(choice)) {
	case "yes", "true", "1", "on", "y":
		return true
	default:
		return false
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout when the path is empty.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}
