package auth

import (
	"testing"
	"time"

	"github.com/trendloom/backoffice/internal/core/serviceerrors"
)

func TestTokenIssuer_IssueAndVerify(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 1*time.Hour)

	t.Run("round trip", func(t *testing.T) {
		token, err := issuer.Issue("aabbccddee112233aabbccdd", false)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		claims, err := issuer.Verify(token)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if claims.UserID != "aabbccddee112233aabbccdd" {
			t.Fatalf("expected subject to round trip, got %q", claims.UserID)
		}
		if claims.Admin {
			t.Fatal("expected non-admin claims")
		}
	})

	t.Run("admin flag round trips", func(t *testing.T) {
		token, err := issuer.Issue("admin", true)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		claims, err := issuer.Verify(token)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !claims.Admin {
			t.Fatal("expected admin claims")
		}
	})

	t.Run("rejects token signed with another secret", func(t *testing.T) {
		other := NewTokenIssuer("other-secret", 1*time.Hour)
		token, _ := other.Issue("user", false)

		_, err := issuer.Verify(token)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !serviceerrors.IsOfKind(err, serviceerrors.KindUnauthorized) {
			t.Fatalf("expected KindUnauthorized, got %v", err)
		}
	})

	t.Run("rejects expired token", func(t *testing.T) {
		shortLived := NewTokenIssuer("test-secret", -1*time.Minute)
		token, _ := shortLived.Issue("user", false)

		if _, err := issuer.Verify(token); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("rejects garbage", func(t *testing.T) {
		if _, err := issuer.Verify("not.a.token"); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
