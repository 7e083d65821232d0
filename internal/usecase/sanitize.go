package usecase

import (
	"net/mail"
	"strings"
	"unicode"

	"servicecalc/internal/domain/entities"
)

// SanitizeCustomerInfo cleans each contact field independently: one
// malformed field never blocks the others from being stored.
func SanitizeCustomerInfo(info entities.CustomerInfo) entities.CustomerInfo {
	return entities.CustomerInfo{
		Name:    sanitizeText(info.Name),
		Email:   sanitizeEmail(info.Email),
		Phone:   sanitizeText(info.Phone),
		Message: sanitizeMultiline(info.Message),
	}
}

// sanitizeText strips markup and control characters and collapses the
// field onto a single trimmed line.
func sanitizeText(s string) string {
	s = stripTags(s)
	var b strings.Builder
	for _, r := range s {
		if unicode.IsControl(r) {
			b.WriteByte(' ')
			continue
		}
		b.WriteRune(r)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// sanitizeMultiline keeps line breaks but strips markup and other control
// characters.
func sanitizeMultiline(s string) string {
	s = stripTags(s)
	var b strings.Builder
	for _, r := range s {
		if r == '\n' || r == '\t' {
			b.WriteRune(r)
			continue
		}
		if unicode.IsControl(r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

func sanitizeEmail(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return ""
	}
	return addr.Address
}

// stripTags removes anything shaped like an HTML/XML tag. Unterminated
// tags are dropped through the end of the string, matching the usual
// strip-tags behavior.
func stripTags(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>' && inTag:
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return b.String()
}
