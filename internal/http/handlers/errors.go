package handlers

import (
	"net/http"

	"github.com/cockroachdb/errors"

	"github.com/yungbote/eduviz/internal/generator"
	"github.com/yungbote/eduviz/internal/platform/apierr"
)

// generationError classifies a pipeline failure for the HTTP boundary.
func generationError(err error) *apierr.Error {
	if errors.Is(err, generator.ErrMalformedTemplate) {
		return apierr.Internal("template_error", err)
	}
	return apierr.From(err)
}

// bindError maps a request-body decode failure; bodies cut off by the size cap get 413.
func bindError(err error) *apierr.Error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return apierr.New(http.StatusRequestEntityTooLarge, "payload_too_large", err)
	}
	return apierr.BadRequest("invalid_request", err)
}
