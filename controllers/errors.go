package controllers

import (
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/waykaburger/station-app/lifecycle"
)

// statusFor maps the error taxonomy to HTTP codes: bad input 400, state-machine
// rejections 409, missing records 404, everything else 500.
func statusFor(err error) int {
	var ve *lifecycle.ValidationError
	var pe *lifecycle.PreconditionError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.As(err, &pe):
		return http.StatusConflict
	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
