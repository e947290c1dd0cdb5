package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("db down")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if e.Error() != "INTERNAL_ERROR: An internal error occurred: db down" {
		t.Fatalf("unexpected message: %s", e.Error())
	}

	s := NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	if s.Error() != "INVALID_REQUEST: Invalid request" {
		t.Fatalf("unexpected message: %s", s.Error())
	}
	body := s.ToHTTPError()
	if body.Error.Code != "INVALID_REQUEST" || body.Error.Message != "Invalid request" {
		t.Fatalf("unexpected body: %+v", body)
	}
}
