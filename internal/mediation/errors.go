// Package mediation defines the error taxonomy shared by the gateway's
// mediators and the translation step that turns any failure into the single
// error shape the GraphQL layer exposes.
package mediation

import (
	"fmt"
	"net/http"
)

// Kind tags an error with the policy checkpoint that raised it.
type Kind string

const (
	KindValidation     Kind = "validation"
	KindAuthentication Kind = "authentication"
	KindNotFound       Kind = "not_found"
	KindBackend        Kind = "backend"
)

// Error is a classified mediation failure. Status is the numeric code
// surfaced to API consumers, Reason the machine-oriented detail appended
// to the message on translation.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Reason  string
}

func (e *Error) Error() string {
	if e.Reason == "" {
		return e.Message
	}
	return fmt.Sprintf("%s - %s", e.Message, e.Reason)
}

// Validation reports a missing or malformed argument.
func Validation(message, reason string) *Error {
	return &Error{Kind: KindValidation, Status: http.StatusBadRequest, Message: message, Reason: reason}
}

// Authentication reports a missing, malformed or rejected credential.
// Call sites disagree on the status code they historically used, so it
// is explicit here.
func Authentication(status int, message, reason string) *Error {
	return &Error{Kind: KindAuthentication, Status: status, Message: message, Reason: reason}
}

// NotFound reports an empty result where the API promises an entity.
func NotFound(message, reason string) *Error {
	return &Error{Kind: KindNotFound, Status: http.StatusNotFound, Message: message, Reason: reason}
}

// Backend reports a non-success answer from a downstream service,
// carrying the downstream status through unchanged.
func Backend(status int, message, reason string) *Error {
	return &Error{Kind: KindBackend, Status: status, Message: message, Reason: reason}
}
