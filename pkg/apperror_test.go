package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("error message without cause", func(t *testing.T) {
		e := NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
		if e.Error() != "Order not found" {
			t.Fatalf("unexpected message: %q", e.Error())
		}
		if e.Unwrap() != nil {
			t.Fatalf("expected no wrapped cause")
		}
	})

	t.Run("error message with cause", func(t *testing.T) {
		cause := errors.New("db down")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if e.Error() != "An internal error occurred: db down" {
			t.Fatalf("unexpected message: %q", e.Error())
		}
		if !errors.Is(e, cause) {
			t.Fatalf("expected errors.Is to reach the cause")
		}
	})

	t.Run("http body hides the cause", func(t *testing.T) {
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", errors.New("secret detail"), http.StatusInternalServerError)
		body := e.ToHTTPError()
		if body["code"] != "INTERNAL_ERROR" || body["message"] != "An internal error occurred" {
			t.Fatalf("unexpected body: %v", body)
		}
		if len(body) != 2 {
			t.Fatalf("body must only expose code and message: %v", body)
		}
	})
}
