package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ContentTypeJSON is the media type of every vault API body.
const ContentTypeJSON = "application/json"

// WriteJSON writes data as the JSON body of a vault API response with
// statusCode. Responses may carry plaintext or proof tokens, so they are
// marked as not cacheable. If data cannot be marshaled the client gets a
// bare 500 and the error is returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", ContentTypeJSON)
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
