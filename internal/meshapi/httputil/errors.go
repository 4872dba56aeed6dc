package httputil

import (
	"encoding/json"
	"net/http"
	"strings"
)

// WriteError writes the {"error":{"message","code"}} envelope shared with the generation API.
func WriteError(w http.ResponseWriter, status int, code, message string) {
	msg := strings.TrimSpace(message)
	if msg == "" {
		msg = http.StatusText(status)
	}
	body := map[string]any{"message": msg}
	if code != "" {
		body["code"] = code
	}
	WriteJSON(w, status, map[string]any{"error": body})
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
