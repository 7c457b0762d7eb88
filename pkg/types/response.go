// Package types holds the wire envelopes shared by every API response.
package types

// SuccessEnvelope wraps successful payloads: {"data": ...}.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// APIError is the public error shape. Details carries field-level context for
// validation failures and is omitted for codes that must not leak internals.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorEnvelope wraps failures: {"error": {code, message, details?}}.
type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
