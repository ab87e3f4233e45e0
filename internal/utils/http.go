package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP
// response, setting the "Content-Type" header to "application/json" and
// the provided status code before the body.
//
// If marshaling fails, it responds with 500 Internal Server Error and
// returns a wrapped error; nothing of the partial payload is written.
//
// The explicit WriteHeader call matters: the gzip middleware hooks it to
// set Content-Encoding before any body bytes go out.
//
// Example usage:
//
//	WriteJSON(w, portfolio, http.StatusOK)
//	WriteJSON(w, models.BulkResult{Count: 2}, http.StatusOK)
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
