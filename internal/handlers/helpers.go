package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/prismbrain/prism/internal/models"
)

// RequireMethod validates that the HTTP request uses the specified method.
// Returns true if the method matches, false otherwise (and writes error response).
func RequireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// WriteJSON writes a JSON response with the specified status code and data.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

// WriteError writes a standard error JSON response.
func WriteError(w http.ResponseWriter, statusCode int, message string) error {
	return WriteJSON(w, statusCode, map[string]string{
		"status": "error",
		"error":  message,
	})
}

// WriteServiceError maps service-layer sentinel errors onto HTTP status codes
func WriteServiceError(w http.ResponseWriter, err error) error {
	switch {
	case errors.Is(err, models.ErrProjectNotFound):
		return WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrInvalidInput):
		return WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrProjectCollision):
		return WriteError(w, http.StatusConflict, err.Error())
	default:
		return WriteError(w, http.StatusInternalServerError, err.Error())
	}
}

// DecodeJSON decodes a request body into dst, rejecting unknown fields
func DecodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
