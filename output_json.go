package vitecn

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput is the machine-readable report schema.
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	*Result
}

// JSONSummary contains high-level counts
type JSONSummary struct {
	Success      bool `json:"success"`
	FilesChanged int  `json:"files_changed"`
	Commands     int  `json:"commands"`
	Warnings     int  `json:"warnings"`
}

// WriteJSON writes result as indented JSON.
func WriteJSON(w io.Writer, result *Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSONOutput(result))
}

func buildJSONOutput(result *Result) JSONOutput {
	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			Success:      result.State == StateDone,
			FilesChanged: len(result.Changed()),
			Commands:     len(result.Commands),
			Warnings:     len(result.Warnings),
		},
		Result: result,
	}
}
