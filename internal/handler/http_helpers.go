package handler

import (
	"encoding/json"
	"net/http"

	apperrors "file-processor/pkg/errors"
)

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError writes a plain error response
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// writeAppError renders a classified failure with its mapped status code.
// Unclassified errors fall back to a generic internal failure.
func writeAppError(w http.ResponseWriter, err error) {
	if appErr, ok := err.(*apperrors.AppError); ok {
		writeJSON(w, appErr.StatusCode, map[string]interface{}{
			"error": appErr.Message,
			"type":  appErr.Type,
		})
		return
	}
	writeError(w, apperrors.GetStatusCode(err), err.Error())
}
