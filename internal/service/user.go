// Package service implements the per-domain mediators. A mediator owns
// the policy pipeline of its operations: argument validation, credential
// verification where required, history recording, the backend call, the
// empty-result policy, and finally translation into the external error
// shape. Resolvers above this layer never branch on error types.
package service

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/tunebridge/tunebridge/internal/backend"
	"github.com/tunebridge/tunebridge/internal/mediation"
	"github.com/tunebridge/tunebridge/internal/model"
	"github.com/tunebridge/tunebridge/internal/token"
)

// UserMediator mediates account operations against the user service.
type UserMediator struct {
	users    *backend.UserClient
	verifier *token.Verifier
	logger   *slog.Logger
}

func NewUserMediator(users *backend.UserClient, verifier *token.Verifier, logger *slog.Logger) *UserMediator {
	return &UserMediator{
		users:    users,
		verifier: verifier,
		logger:   logger.With("component", "user-mediator"),
	}
}

// GetAllUsers returns every registered user.
func (m *UserMediator) GetAllUsers(ctx context.Context) ([]*model.User, error) {
	users, err := m.users.List(ctx)
	if err != nil {
		return nil, mediation.Translate(err)
	}
	if len(users) == 0 {
		return nil, mediation.Translate(mediation.NotFound("No users found", "There are no users in the database"))
	}
	return users, nil
}

// GetUserByID returns one user by id.
func (m *UserMediator) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	if id == "" {
		return nil, mediation.Translate(mediation.Validation("Id is required", "Bad user input"))
	}
	user, err := m.users.GetByID(ctx, id)
	if err != nil {
		return nil, mediation.Translate(err)
	}
	if user == nil {
		return nil, mediation.Translate(mediation.NotFound("User not found", "The user was not found"))
	}
	return user, nil
}

// Login exchanges credentials for the account record.
func (m *UserMediator) Login(ctx context.Context, email, passwordHash string) (*model.User, error) {
	if email == "" || passwordHash == "" {
		return nil, mediation.Translate(mediation.Validation("All fields are required", "Bad user input"))
	}
	user, err := m.users.Login(ctx, email, passwordHash)
	if err != nil {
		return nil, mediation.Translate(err)
	}
	if user == nil {
		return nil, mediation.Translate(mediation.NotFound("User not found", "The user was not found"))
	}
	return user, nil
}

// NetworkLogin signs a social-network identity in and returns the token.
func (m *UserMediator) NetworkLogin(ctx context.Context, userName, email string, image *string) (string, error) {
	if userName == "" || email == "" {
		return "", mediation.Translate(mediation.Validation("All fields are required", "Bad user input"))
	}
	issued, err := m.users.NetworkLogin(ctx, userName, email, image)
	if err != nil {
		return "", mediation.Translate(err)
	}
	return issued, nil
}

// GetUserMusic returns the tracks owned by the authenticated caller.
func (m *UserMediator) GetUserMusic(ctx context.Context, credential string) ([]*model.Music, error) {
	subject, err := m.authenticate(credential)
	if err != nil {
		return nil, mediation.Translate(err)
	}
	music, err := m.users.Music(ctx, subject)
	if err != nil {
		return nil, mediation.Translate(err)
	}
	return music, nil
}

// GetUserHistory returns the authenticated caller's account and history.
func (m *UserMediator) GetUserHistory(ctx context.Context, credential string) (*model.UserHistory, error) {
	subject, err := m.authenticate(credential)
	if err != nil {
		return nil, mediation.Translate(err)
	}
	history, err := m.users.History(ctx, subject)
	if err != nil {
		return nil, mediation.Translate(err)
	}
	return history, nil
}

// CreateUser registers a new account.
func (m *UserMediator) CreateUser(ctx context.Context, input model.UserCreate) (*model.User, error) {
	if input.UserName == "" || input.Email == "" || input.PasswordHash == "" {
		return nil, mediation.Translate(mediation.Validation("All fields are required", "Bad user input"))
	}
	user, err := m.users.Create(ctx, input)
	if err != nil {
		return nil, mediation.Translate(err)
	}
	m.logger.Debug("user created", "userName", input.UserName)
	return user, nil
}

// VerifyAccount confirms an e-mail verification token.
func (m *UserMediator) VerifyAccount(ctx context.Context, verification string) (*model.User, error) {
	if verification == "" {
		return nil, mediation.Translate(mediation.Authentication(http.StatusBadRequest, "UNAUTHENTICATED", "Token is undefined"))
	}
	user, err := m.users.VerifyAccount(ctx, verification)
	if err != nil {
		return nil, mediation.Translate(err)
	}
	return user, nil
}

// authenticate resolves the subject behind a credential, rejecting
// absent credentials before any verification work.
func (m *UserMediator) authenticate(credential string) (string, error) {
	if credential == "" {
		return "", mediation.Authentication(http.StatusBadRequest, "UNAUTHENTICATED", "Token is undefined")
	}
	subject, err := m.verifier.Verify(credential)
	if err != nil {
		return "", err
	}
	if subject == "" {
		return "", mediation.Authentication(http.StatusNotFound, "UNAUTHENTICATED", "Invalid authentication token")
	}
	return subject, nil
}
