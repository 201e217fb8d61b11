package errorutil

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestToDomainErrorKeepsDomainErrors(t *testing.T) {
	wrapped := fmt.Errorf("lookup: %w", NewNotFound("lead", map[string]any{"id": "9"}))
	de := ToDomainError(wrapped)
	if de.Code != "NOT_FOUND" || de.HTTPStatus != http.StatusNotFound {
		t.Fatalf("unexpected mapping: %+v", de)
	}
	if de.Details["id"] != "9" {
		t.Fatalf("details lost: %v", de.Details)
	}
}

func TestToDomainErrorFiberError(t *testing.T) {
	de := ToDomainError(fiber.NewError(http.StatusNotFound, "Cannot GET /nope"))
	if de.Code != "NOT_FOUND" || de.HTTPStatus != http.StatusNotFound || de.Message != "Cannot GET /nope" {
		t.Fatalf("unexpected mapping: %+v", de)
	}
}

func TestToDomainErrorUnknownIsInternal(t *testing.T) {
	cause := errors.New("boom")
	de := ToDomainError(cause)
	if de.HTTPStatus != http.StatusInternalServerError || !errors.Is(de, cause) {
		t.Fatalf("unexpected mapping: %+v", de)
	}
	if ToDomainError(nil) != nil {
		t.Fatalf("nil should map to nil")
	}
}

func TestFieldErrors(t *testing.T) {
	fields := FieldErrors{}
	if fields.Err() != nil {
		t.Fatalf("empty field errors should be nil")
	}
	fields.Add("email", "Invalid email address")
	fields.Add("email", "second message ignored")
	fields.Add("password", "Password must be at least 8 characters")

	de := ToDomainError(fields.Err())
	if de.Code != "VALIDATION_FAILED" || de.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("unexpected mapping: %+v", de)
	}
	if de.Details["email"] != "Invalid email address" {
		t.Fatalf("first message should win: %v", de.Details["email"])
	}
	if len(de.Details) != 2 {
		t.Fatalf("expected 2 field errors, got %v", de.Details)
	}
}

func TestDeadlineMapsToTimeout(t *testing.T) {
	de := ToDomainError(fmt.Errorf("list leads: %w", context.DeadlineExceeded))
	if de.Code != "TIMEOUT" || de.HTTPStatus != http.StatusGatewayTimeout {
		t.Fatalf("unexpected mapping: %+v", de)
	}
}
