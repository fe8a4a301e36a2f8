package validation

import (
	"strings"
	"testing"
)

type sampleRequest struct {
	Name  string `validate:"required,min=2"`
	Email string `validate:"required,email"`
}

func TestValidateStruct(t *testing.T) {
	v := NewValidator()

	if err := v.ValidateStruct(&sampleRequest{Name: "Asha", Email: "asha@school.test"}); err != nil {
		t.Errorf("valid struct should pass, got %v", err)
	}

	err := v.ValidateStruct(&sampleRequest{Name: "A", Email: "not-an-email"})
	if err == nil {
		t.Fatal("invalid struct should fail")
	}

	msg := FormatValidationErrors(err)
	if !strings.Contains(msg, "Invalid email format") {
		t.Errorf("formatted message should mention the email, got %q", msg)
	}
}

func TestSanitizeString(t *testing.T) {
	if got := SanitizeString("  hello\x00 world  "); got != "hello world" {
		t.Errorf("SanitizeString = %q, want %q", got, "hello world")
	}
}
