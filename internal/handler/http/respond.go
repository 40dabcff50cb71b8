package http

import (
	"encoding/json"
	"net/http"

	"github.com/snesterov/ciphervault/models"
)

// writeJSON serialises data with the given status. Encoding failures are
// beyond saving at this point; the header has already been written.
func writeJSON(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError emits the uniform JSON error body.
func writeError(w http.ResponseWriter, message string, statusCode int) {
	writeJSON(w, models.ErrorResponse{Error: message}, statusCode)
}
