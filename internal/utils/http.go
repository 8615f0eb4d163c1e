// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorResponse is the JSON body of every non-2xx API response.
type ErrorResponse struct {
	Error   string `json:"error"`
	TraceID string `json:"trace_id,omitempty"`
}

// WriteJSON serializes data and writes it with statusCode.
// If marshaling fails the client gets a 500 and the error is returned.
//
//	utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes an [ErrorResponse] carrying message and the request
// trace id.
func WriteError(w http.ResponseWriter, r *http.Request, message string, statusCode int) {
	_, _ = WriteJSON(w, ErrorResponse{
		Error:   message,
		TraceID: GetTraceIDFromContext(r.Context()),
	}, statusCode)
}
