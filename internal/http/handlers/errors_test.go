package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/yungbote/eduviz/internal/generator"
)

func TestGenerationErrorMapsMalformedTemplate(t *testing.T) {
	err := errors.Wrap(generator.ErrMalformedTemplate, "compose physics")
	ae := generationError(err)
	if ae.Status != http.StatusInternalServerError || ae.Code != "template_error" {
		t.Fatalf("got status=%d code=%q", ae.Status, ae.Code)
	}

	ae = generationError(fmt.Errorf("boom"))
	if ae.Status != http.StatusInternalServerError || ae.Code != "internal" {
		t.Fatalf("got status=%d code=%q", ae.Status, ae.Code)
	}
}

func TestBindErrorMapsOversizedBody(t *testing.T) {
	ae := bindError(fmt.Errorf("decode: %w", &http.MaxBytesError{Limit: 8}))
	if ae.Status != http.StatusRequestEntityTooLarge || ae.Code != "payload_too_large" {
		t.Fatalf("got status=%d code=%q", ae.Status, ae.Code)
	}

	ae = bindError(fmt.Errorf("unexpected EOF"))
	if ae.Status != http.StatusBadRequest || ae.Code != "invalid_request" {
		t.Fatalf("got status=%d code=%q", ae.Status, ae.Code)
	}
}
