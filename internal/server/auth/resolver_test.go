package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/finbuddy/finbuddy/internal/common"
)

func TestResolveIdentity_Success(t *testing.T) {
	t.Parallel()

	c := NewTokenCodec([]byte("secret"))
	tok, err := c.Issue("user-42", TokenKindAccess, time.Hour, "a@x.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	subject, err := c.ResolveIdentity("Bearer " + tok)
	if err != nil {
		t.Fatalf("ResolveIdentity error: %v", err)
	}
	if subject != "user-42" {
		t.Fatalf("subject mismatch: got %q", subject)
	}
}

func TestResolveIdentity_RejectsUniformly(t *testing.T) {
	t.Parallel()

	c := NewTokenCodec([]byte("secret"))

	valid, err := c.Issue("user-42", TokenKindAccess, time.Hour, "")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	expired, err := c.Issue("user-42", TokenKindAccess, -time.Hour, "")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	refresh, err := c.Issue("user-42", TokenKindRefresh, time.Hour, "")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	foreign, err := NewTokenCodec([]byte("other")).Issue("user-42", TokenKindAccess, time.Hour, "")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	tests := []struct {
		name   string
		header string
	}{
		{"empty header", ""},
		{"missing scheme", valid},
		{"wrong scheme", "Basic " + valid},
		{"scheme only", "Bearer "},
		{"malformed token", "Bearer not.a.jwt"},
		{"expired token", "Bearer " + expired},
		{"refresh token", "Bearer " + refresh},
		{"wrong signature", "Bearer " + foreign},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.ResolveIdentity(tt.header)
			if !errors.Is(err, common.ErrorUnauthorized) {
				t.Fatalf("expected uniform ErrorUnauthorized, got %v", err)
			}
		})
	}
}
