package usecase

import (
	"testing"

	"servicecalc/internal/domain/entities"
)

func TestSanitizeCustomerInfo(t *testing.T) {
	got := SanitizeCustomerInfo(entities.CustomerInfo{
		Name:    "  <script>alert(1)</script>Jane\tDoe  ",
		Email:   " jane@example.com ",
		Phone:   "<b>555</b>-0100",
		Message: "line one\n\nline <i>two</i>",
	})

	if got.Name != "alert(1)Jane Doe" {
		t.Errorf("unexpected name: %q", got.Name)
	}
	if got.Email != "jane@example.com" {
		t.Errorf("unexpected email: %q", got.Email)
	}
	if got.Phone != "555-0100" {
		t.Errorf("unexpected phone: %q", got.Phone)
	}
	if got.Message != "line one\n\nline two" {
		t.Errorf("unexpected message: %q", got.Message)
	}
}

func TestSanitizeCustomerInfo_BadEmailDoesNotBlockOtherFields(t *testing.T) {
	got := SanitizeCustomerInfo(entities.CustomerInfo{
		Name:  "Jane",
		Email: "not an email",
	})
	if got.Email != "" {
		t.Errorf("expected invalid email dropped, got %q", got.Email)
	}
	if got.Name != "Jane" {
		t.Errorf("expected name kept, got %q", got.Name)
	}
}

func TestStripTags_Unterminated(t *testing.T) {
	if got := stripTags("hello <img src=x"); got != "hello " {
		t.Errorf("expected unterminated tag dropped, got %q", got)
	}
}
