package format

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/billboardhub/bbadmin/internal/config"
)

// Output is where formatted data is written
var Output io.Writer = os.Stdout

// Formatter interface for different output formats
type Formatter interface {
	Format(data interface{}) error
}

// Formats lists the accepted values of --output
var Formats = []string{"table", "json", "json-compact", "yaml", "text"}

// GetFormatter returns a formatter based on the specified format
func GetFormatter(format string) (Formatter, error) {
	cfg := config.Get()
	useColors := cfg.Format.Colors

	switch format {
	case "table":
		return NewTableFormatter(Output, useColors), nil
	case "json":
		return NewJSONFormatter(Output, true), nil
	case "json-compact":
		return NewJSONFormatter(Output, false), nil
	case "yaml":
		return NewYAMLFormatter(Output), nil
	case "text":
		return NewTextFormatter(Output), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// IsStructured reports whether format is meant for machines rather than
// for reading in a terminal
func IsStructured(format string) bool {
	switch format {
	case "json", "json-compact", "yaml":
		return true
	}
	return false
}

// Print formats and prints data using the configured output format
func Print(data interface{}) error {
	format := config.GetOutputFormat()
	formatter, err := GetFormatter(format)
	if err != nil {
		return err
	}
	return formatter.Format(data)
}

func printColored(attr color.Attribute, prefix, message string, args ...interface{}) {
	cfg := config.Get()
	if cfg.Format.Colors {
		color.New(attr).Fprintf(Output, message+"\n", args...)
	} else {
		fmt.Fprintf(Output, prefix+message+"\n", args...)
	}
}

// PrintSuccess prints a success message
func PrintSuccess(message string, args ...interface{}) {
	printColored(color.FgGreen, "", message, args...)
}

// PrintError prints an error message
func PrintError(message string, args ...interface{}) {
	printColored(color.FgRed, "Error: ", message, args...)
}

// PrintWarning prints a warning message
func PrintWarning(message string, args ...interface{}) {
	printColored(color.FgYellow, "Warning: ", message, args...)
}

// PrintInfo prints an info message
func PrintInfo(message string, args ...interface{}) {
	printColored(color.FgBlue, "Info: ", message, args...)
}

// PrintDebug prints a debug message if debug mode is enabled
func PrintDebug(message string, args ...interface{}) {
	if config.IsDebug() {
		printColored(color.FgCyan, "", "[DEBUG] "+message, args...)
	}
}
