package models

import "expgrowth/internal/scenario"

// ScenarioResponse represents the response from evaluating one scenario
type ScenarioResponse struct {
	ID       string `json:"id"`
	Scenario string `json:"scenario"`
	Title    string `json:"title"`
	// Clamped lists the parameters that were pulled back into their valid range.
	Clamped []string `json:"clamped,omitempty"`
	// Result carries the evaluated parameters and the scenario summary.
	Result  any               `json:"result"`
	Metrics []scenario.Metric `json:"metrics"`
	Series  *Series           `json:"series,omitempty"`
	Cached  bool              `json:"cached"`
}

// Series is the per-step table for charting. Values are float64; exact chessboard
// counts are in the summary.
type Series struct {
	Columns []string    `json:"columns"`
	Rows    [][]float64 `json:"rows"`
}

// ScenarioInfo describes a scenario and its inputs
type ScenarioInfo struct {
	Name       string          `json:"name"`
	Title      string          `json:"title"`
	Parameters []ParameterInfo `json:"parameters"`
}

// ParameterInfo describes a scenario parameter
type ParameterInfo struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"` // "float", "int"
	Description string  `json:"description"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Default     float64 `json:"default"`
}

// FormatResponse shows a value in the display number styles
type FormatResponse struct {
	Value         float64 `json:"value"`
	Decimals      int     `json:"decimals"`
	Number        string  `json:"number"`
	HumanReadable string  `json:"human_readable"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// NewError builds an ErrorResponse without details.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: code, Message: message}}
}
