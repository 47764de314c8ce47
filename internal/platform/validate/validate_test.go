package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/juliangorge/fmriel-api/internal/platform/apperr"
)

type createBody struct {
	Title    string `json:"title" validate:"required"`
	UserID   int    `json:"user_id" validate:"required"`
	PhotoURL string `json:"photo_url,omitempty" validate:"omitempty,url"`
}

func TestStructValid(t *testing.T) {
	body := createBody{Title: "hello", UserID: 3}
	if err := Struct(&body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStructAggregatesAllViolations(t *testing.T) {
	err := Struct(&createBody{})

	var ve *apperr.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if len(ve.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d: %v", len(ve.Messages), ve.Messages)
	}

	msg := ve.Error()
	if !strings.Contains(msg, "title should not be empty") {
		t.Errorf("missing title violation in %q", msg)
	}
	if !strings.Contains(msg, "user_id should not be empty") {
		t.Errorf("missing user_id violation in %q", msg)
	}
}

func TestStructURLConstraint(t *testing.T) {
	body := createBody{Title: "x", UserID: 1, PhotoURL: "not a url"}
	err := Struct(&body)

	var ve *apperr.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if !strings.Contains(ve.Error(), "photo_url must be a URL address") {
		t.Errorf("unexpected message: %q", ve.Error())
	}
}

func TestStructUsesJSONFieldNames(t *testing.T) {
	err := Struct(&createBody{Title: "x"})

	var ve *apperr.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if strings.Contains(ve.Error(), "UserID") {
		t.Errorf("expected wire name, got %q", ve.Error())
	}
}
