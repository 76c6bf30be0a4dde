// Package model defines the transport records exchanged with the backend
// microservices. The gateway never persists these; each value lives for the
// duration of a single request.
package model

// User mirrors the user service's account record.
type User struct {
	ID           string  `json:"id"`
	UserName     string  `json:"userName"`
	Email        string  `json:"email"`
	PasswordHash string  `json:"passwordHash"`
	Token        *string `json:"token,omitempty"`
	Verify       bool    `json:"verify"`
	Image        *string `json:"image"`
}

// UserCreate is the payload for registering a new account.
type UserCreate struct {
	UserName     string `json:"userName"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
}
