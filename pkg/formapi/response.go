package formapi

import (
	"encoding/json"
	"net/http"
)

// Response is the JSON envelope of every API answer.
type Response struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a request that could not be processed.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

// Result is the data of a validate call.
type Result struct {
	Valid    bool            `json:"valid"`
	Failures []FailureDetail `json:"failures,omitempty"`
}

// FailureDetail is one failed check with its translation key.
type FailureDetail struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Key   string `json:"key"`
}

// RuleInfo describes a catalog entry.
type RuleInfo struct {
	Name       string `json:"name"`
	NeedsValue bool   `json:"needs_value"`
}

// Error codes.
const (
	CodeNotFound             = "not_found"
	CodeBadRequest           = "bad_request"
	CodeInvalidRules         = "invalid_rules"
	CodeUnsupportedMediaType = "unsupported_media_type"
	CodeBodyTooLarge         = "body_too_large"
	CodeMethodNotAllowed     = "method_not_allowed"
	CodeInternal             = "internal_error"
)

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, Response{Data: data})
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, Response{Error: &ErrorDetail{Code: code, Message: msg}})
}
