package vitecn

import (
	"io"
	"os"
)

// OutputFormat selects how a Result is rendered.
type OutputFormat string

// Output formats
const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
)

// DetermineOutputFormat selects the output format from the flag value.
// Unknown values fall back to text.
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch formatFlag {
	case "json":
		return OutputJSON
	case "text", "":
		return OutputText
	default:
		return OutputText
	}
}

// WriteOutput writes result in the given format.
func WriteOutput(w io.Writer, result *Result, format OutputFormat, config ReportConfig) {
	switch format {
	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			// Log error but don't crash
			os.Stderr.WriteString("Error writing JSON: " + err.Error() + "\n")
		}

	default:
		reporter := NewReporter(w, config)
		reporter.PrintSteps(result.Steps)
		reporter.PrintFiles(result.Files)
		reporter.PrintWarnings(result.Warnings)
		reporter.PrintSummary(*result)
	}
}
