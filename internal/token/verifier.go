package token

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tunebridge/tunebridge/internal/mediation"
)

const bearerPrefix = "bearer "

// Claims is the gateway's view of a signed token. The subject identity
// lives in the email claim.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Verifier checks bearer credentials against the process-wide secret.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Verify checks the credential and returns the subject it names. The
// scheme comparison is case-insensitive; everything after the prefix is
// the compact JWT. A missing or prefix-less credential is an
// authentication error, a bad signature or malformed token propagates
// as-is for the translator to classify as unclassified.
func (v *Verifier) Verify(credential string) (string, error) {
	if credential == "" || !strings.HasPrefix(strings.ToLower(credential), bearerPrefix) {
		return "", mediation.Authentication(http.StatusBadRequest, "UNAUTHENTICATED", "An authentication token was not provided")
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(credential[len(bearerPrefix):], claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return v.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("verify token: %w", err)
	}
	return claims.Email, nil
}
