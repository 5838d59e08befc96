// Package http holds the shared request/response plumbing for the API
// handlers: the success/error envelope and JSON decoding with validation.
package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Success writes the standard success envelope. Extra fields are merged in
// alongside "success": true.
func Success(w http.ResponseWriter, status int, fields map[string]any) {
	body := map[string]any{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	writeJSON(w, status, body)
}

// Fail writes the standard error envelope.
func Fail(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{
		"success": false,
		"error":   message,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Headers are already out; nothing useful left to do.
		return
	}
}

// Decode parses the request body into v.
func Decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// DecodeValid parses the request body into v and runs struct validation.
func DecodeValid(r *http.Request, v any) error {
	if err := Decode(r, v); err != nil {
		return err
	}
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}
