package handler

import (
	"encoding/json"
	"net/http"

	"github.com/osse101/TemplateOverrides_Go/internal/logger"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error      string `json:"error"`
	Suggestion string `json:"did_you_mean,omitempty"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Data interface{} `json:"data"`
}

// encodeJSON renders payload the way respondJSON writes it.
func encodeJSON(payload interface{}) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		return nil, err
	}
	return append([]byte(nil), buf.Bytes()...), nil
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	body, err := encodeJSON(payload)
	if err != nil {
		logger.Error(LogMsgEncodeFailed, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	respondRaw(w, status, body)
}

// respondRaw writes an already encoded JSON body.
func respondRaw(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set(HeaderContentType, ContentTypeJSON)
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logger.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}
