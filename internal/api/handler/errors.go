package handler

import (
	"errors"
	"net/http"

	"github.com/rampp2p/escrow/internal/escrow"
)

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// errorResponse maps err to the status code of its category.
func errorResponse(err error) (int, ErrorResponse) {
	body := ErrorResponse{Error: err.Error()}

	switch {
	case errors.Is(err, escrow.ErrTransientInfra):
		return http.StatusServiceUnavailable, body
	case errors.Is(err, escrow.ErrValidation),
		errors.Is(err, escrow.ErrStateConflict),
		errors.Is(err, escrow.ErrVerificationFailed):
		return http.StatusBadRequest, body
	}

	return http.StatusInternalServerError, body
}
