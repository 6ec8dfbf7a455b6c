package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"shopprr-backend/services"
)

// apiResponse is the uniform envelope every endpoint returns.
type apiResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func respond(w http.ResponseWriter, status int, success bool, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(apiResponse{Success: success, Message: message, Data: data})
}

func respondOK(w http.ResponseWriter, message string, data interface{}) {
	respond(w, http.StatusOK, true, message, data)
}

func respondCreated(w http.ResponseWriter, message string, data interface{}) {
	respond(w, http.StatusCreated, true, message, data)
}

func respondFail(w http.ResponseWriter, status int, message string) {
	respond(w, status, false, message, nil)
}

// respondError maps domain errors onto HTTP statuses. Unexpected errors
// surface as 500 with the underlying message in context, which is a
// deliberate debug-oriented choice.
func respondError(w http.ResponseWriter, context string, err error) {
	var (
		nf *services.NotFoundError
		ve *services.ValidationError
	)
	switch {
	case errors.As(err, &ve):
		respondFail(w, http.StatusBadRequest, ve.Message)
	case errors.Is(err, services.ErrUnauthenticated):
		respondFail(w, http.StatusUnauthorized, "Please login to continue")
	case errors.Is(err, services.ErrForbidden):
		respondFail(w, http.StatusForbidden, "Access denied")
	case errors.As(err, &nf):
		respondFail(w, http.StatusNotFound, nf.Error())
	case errors.Is(err, services.ErrStripeNotAvailable):
		respondFail(w, http.StatusNotImplemented, services.ErrStripeNotAvailable.Error())
	default:
		respondFail(w, http.StatusInternalServerError, context+": "+err.Error())
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondFail(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
