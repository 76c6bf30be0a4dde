package mediation

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"with reason", NotFound("No music found", "There are no music in the database"), "No music found - There are no music in the database"},
		{"without reason", NotFound("No music found", ""), "No music found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTranslateClassified(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantMsg  string
		wantCode int
	}{
		{
			name:     "not found",
			err:      NotFound("No music found", "There are no music in the database"),
			wantMsg:  "No music found - There are no music in the database",
			wantCode: http.StatusNotFound,
		},
		{
			name:     "validation",
			err:      Validation("Bad request", "Id is required"),
			wantMsg:  "Bad request - Id is required",
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "authentication",
			err:      Authentication(http.StatusUnauthorized, "UNAUTHORIZED", "Token is required"),
			wantMsg:  "UNAUTHORIZED - Token is required",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "backend keeps downstream status",
			err:      Backend(http.StatusBadGateway, "Bad Gateway", "upstream broke"),
			wantMsg:  "Bad Gateway - upstream broke",
			wantCode: http.StatusBadGateway,
		},
		{
			name:     "wrapped mediation error",
			err:      fmt.Errorf("call failed: %w", NotFound("User not found", "The user was not found")),
			wantMsg:  "User not found - The user was not found",
			wantCode: http.StatusNotFound,
		},
		{
			name:     "no reason, no suffix",
			err:      NotFound("User not found", ""),
			wantMsg:  "User not found",
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Translate(tt.err)
			var ext *GraphQLError
			if !errors.As(got, &ext) {
				t.Fatalf("Translate() = %T, want *GraphQLError", got)
			}
			if ext.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", ext.Message, tt.wantMsg)
			}
			extensions := ext.Extensions()
			if extensions == nil {
				t.Fatal("Extensions() = nil, want code")
			}
			if code, ok := extensions["code"].(int); !ok || code != tt.wantCode {
				t.Errorf("extensions.code = %v, want %d", extensions["code"], tt.wantCode)
			}
		})
	}
}

func TestTranslateUnclassified(t *testing.T) {
	got := Translate(errors.New("connection refused"))
	var ext *GraphQLError
	if !errors.As(got, &ext) {
		t.Fatalf("Translate() = %T, want *GraphQLError", got)
	}
	if ext.Message != "connection refused" {
		t.Errorf("message = %q, want %q", ext.Message, "connection refused")
	}
	if ext.Extensions() != nil {
		t.Errorf("Extensions() = %v, want nil for unclassified errors", ext.Extensions())
	}
}

func TestTranslateNil(t *testing.T) {
	if got := Translate(nil); got != nil {
		t.Errorf("Translate(nil) = %v, want nil", got)
	}
}

func TestTranslateIdempotent(t *testing.T) {
	first := Translate(NotFound("No users found", "There are no users in the database"))
	second := Translate(first)
	if first != second {
		t.Error("translating an already translated error should be a no-op")
	}
}
