package token

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tunebridge/tunebridge/internal/mediation"
)

const testSecret = "test-secret"

func sign(t *testing.T, secret, email string) string {
	t.Helper()
	claims := jwt.MapClaims{"email": email, "iat": time.Now().Unix()}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestVerifyValidCredential(t *testing.T) {
	v := NewVerifier(testSecret)

	subject, err := v.Verify("Bearer " + sign(t, testSecret, "alice@example.com"))
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if subject != "alice@example.com" {
		t.Errorf("subject = %q, want %q", subject, "alice@example.com")
	}
}

func TestVerifySchemeCaseInsensitive(t *testing.T) {
	v := NewVerifier(testSecret)
	raw := sign(t, testSecret, "bob@example.com")

	for _, scheme := range []string{"bearer ", "Bearer ", "BEARER "} {
		subject, err := v.Verify(scheme + raw)
		if err != nil {
			t.Fatalf("Verify(%q...) error = %v", scheme, err)
		}
		if subject != "bob@example.com" {
			t.Errorf("subject = %q, want %q", subject, "bob@example.com")
		}
	}
}

func TestVerifyMissingCredential(t *testing.T) {
	v := NewVerifier(testSecret)

	tests := []struct {
		name       string
		credential string
	}{
		{"empty", ""},
		{"wrong scheme", "Basic abc123"},
		{"no scheme", sign(t, testSecret, "x@example.com")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Verify(tt.credential)
			var merr *mediation.Error
			if !errors.As(err, &merr) {
				t.Fatalf("Verify() error = %T, want *mediation.Error", err)
			}
			if merr.Kind != mediation.KindAuthentication {
				t.Errorf("kind = %q, want %q", merr.Kind, mediation.KindAuthentication)
			}
			if merr.Status != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", merr.Status, http.StatusBadRequest)
			}
			if merr.Reason != "An authentication token was not provided" {
				t.Errorf("reason = %q", merr.Reason)
			}
		})
	}
}

func TestVerifyBadSignature(t *testing.T) {
	v := NewVerifier(testSecret)

	_, err := v.Verify("Bearer " + sign(t, "other-secret", "eve@example.com"))
	if err == nil {
		t.Fatal("Verify() accepted a token signed with the wrong secret")
	}
	var merr *mediation.Error
	if errors.As(err, &merr) {
		t.Errorf("signature failure should stay unclassified, got %v", merr)
	}
}

func TestVerifyGarbageToken(t *testing.T) {
	v := NewVerifier(testSecret)
	if _, err := v.Verify("Bearer not-a-jwt"); err == nil {
		t.Fatal("Verify() accepted a malformed token")
	}
}

func TestCredentialContextRoundTrip(t *testing.T) {
	ctx := WithCredential(context.Background(), "Bearer abc")
	if got := CredentialFromContext(ctx); got != "Bearer abc" {
		t.Errorf("CredentialFromContext() = %q, want %q", got, "Bearer abc")
	}
	if got := CredentialFromContext(context.Background()); got != "" {
		t.Errorf("CredentialFromContext(empty) = %q, want empty", got)
	}
}
