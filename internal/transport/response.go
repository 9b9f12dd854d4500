package transport

import (
	"encoding/json"
	"net/http"
)

type ErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

// ListResponse is the envelope every list endpoint answers with; clients
// of earlier backends had to tolerate bare arrays, ours never sends them.
type ListResponse struct {
	Data interface{} `json:"data"`
}

func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func WriteList(w http.ResponseWriter, status int, items interface{}) {
	WriteJSON(w, status, ListResponse{Data: items})
}

func WriteError(w http.ResponseWriter, status int, message string, details map[string]string) {
	WriteJSON(w, status, ErrorResponse{
		Error:   message,
		Details: details,
	})
}
