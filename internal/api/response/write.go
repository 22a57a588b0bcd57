package response

import (
	"encoding/json"
	"net/http"
)

// JSON encodes data as a JSON body with the given status code.
// A nil data writes the status with an empty body.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// NoContent replies 204 with an empty body
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
