package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// Global JSON output flag
var jsonOutput bool

// Response is the standard JSON envelope for all CLI output.
type Response struct {
	OK    bool        `json:"ok"`
	Data  interface{} `json:"data,omitempty"`
	Error *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo contains structured error information.
type ErrorInfo struct {
	Code       string      `json:"code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
	Suggestion string      `json:"suggestion,omitempty"`
}

// outputJSON writes the response as indented JSON.
func outputJSON(w io.Writer, resp Response) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(resp)
}

// outputSuccess outputs a successful JSON response.
func outputSuccess(w io.Writer, data interface{}) {
	outputJSON(w, Response{
		OK:   true,
		Data: data,
	})
}

// outputError outputs an error JSON response.
func outputError(w io.Writer, code, message string, details interface{}, suggestion string) {
	outputJSON(w, Response{
		OK: false,
		Error: &ErrorInfo{
			Code:       code,
			Message:    message,
			Details:    details,
			Suggestion: suggestion,
		},
	})
}

// isJSONOutput returns true if JSON output is enabled.
func isJSONOutput() bool {
	return jsonOutput
}

// handleError handles an error appropriately based on output mode.
// In JSON mode, outputs a JSON error. In text mode, returns the error for Cobra.
func handleError(w io.Writer, code string, err error, suggestion string) error {
	if jsonOutput {
		outputError(w, code, err.Error(), nil, suggestion)
		return nil // Don't let Cobra also print the error
	}
	return err
}

// handleErrorMsg handles an error message appropriately based on output mode.
func handleErrorMsg(w io.Writer, code, message, suggestion string) error {
	if jsonOutput {
		outputError(w, code, message, nil, suggestion)
		return nil
	}
	if suggestion != "" {
		return fmt.Errorf("%s\n\n%s", message, suggestion)
	}
	return fmt.Errorf("%s", message)
}
