package handler

import (
	"encoding/json"
	"net/http"

	"github.com/workhive/api/internal/model"
)

// Envelope wraps every successful response body.
type Envelope struct {
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data"`
}

// Page wraps a paginated collection.
type Page struct {
	Meta   model.PageMeta `json:"meta"`
	Result interface{}    `json:"result"`
}

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteData writes a successful enveloped response
func WriteData(w http.ResponseWriter, status int, message string, data interface{}) {
	WriteJSON(w, status, Envelope{
		StatusCode: status,
		Message:    message,
		Data:       data,
	})
}

// WritePage writes a paginated collection response
func WritePage(w http.ResponseWriter, message string, meta model.PageMeta, result interface{}) {
	WriteData(w, http.StatusOK, message, Page{Meta: meta, Result: result})
}

// WriteError writes an error response using RFC 9457 Problem Details
func WriteError(w http.ResponseWriter, err *model.ProblemDetails) {
	WriteJSON(w, err.Status, err)
}

// DecodeJSON decodes a JSON request body into the given struct
func DecodeJSON(r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

// WriteNoContent writes a 204 No Content response
func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
