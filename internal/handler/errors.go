package handler

import (
	"errors"
	"net/http"

	"github.com/osse101/TemplateOverrides_Go/internal/domain"
)

// User-facing error messages
const (
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgTemplateNotFoundErr = "Template not found"
	ErrMsgBuffsNotFoundErr    = "Buff list not found"
	ErrMsgMissingParamErr     = "Missing path parameter"
)

// ErrBuffsNotFound is returned when no buff list has the requested name
var ErrBuffsNotFound = errors.New("buff list not found")

// mapErrorToResponse maps lookup errors to an HTTP status and message.
func mapErrorToResponse(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrTemplateNotFound):
		return http.StatusNotFound, ErrMsgTemplateNotFoundErr
	case errors.Is(err, ErrBuffsNotFound):
		return http.StatusNotFound, ErrMsgBuffsNotFoundErr
	default:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
}
