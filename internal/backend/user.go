package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/tunebridge/tunebridge/internal/model"
)

// UserClient calls the user service.
type UserClient struct {
	c *Client
}

func NewUserClient(c *Client) *UserClient {
	return &UserClient{c: c}
}

// List returns every registered user.
func (u *UserClient) List(ctx context.Context) ([]*model.User, error) {
	var out []*model.User
	err := u.c.doJSON(ctx, http.MethodGet, "/user", nil, nil, &out)
	return out, err
}

// GetByID returns one user, or nil when the service answers null.
func (u *UserClient) GetByID(ctx context.Context, id string) (*model.User, error) {
	var out *model.User
	err := u.c.doJSON(ctx, http.MethodGet, "/user/"+url.PathEscape(id), nil, nil, &out)
	return out, err
}

// Login exchanges credentials for the account record.
func (u *UserClient) Login(ctx context.Context, email, passwordHash string) (*model.User, error) {
	payload := map[string]string{"email": email, "passwordHash": passwordHash}
	var out *model.User
	err := u.c.doJSON(ctx, http.MethodPost, "/user/login", payload, nil, &out)
	return out, err
}

// NetworkLogin signs a social-network identity in and returns the issued
// token.
func (u *UserClient) NetworkLogin(ctx context.Context, userName, email string, image *string) (string, error) {
	payload := map[string]any{"userName": userName, "email": email, "image": image}
	var out string
	err := u.c.doJSON(ctx, http.MethodPost, "/user/login/network", payload, nil, &out)
	return out, err
}

// Music returns the tracks owned by the subject.
func (u *UserClient) Music(ctx context.Context, subject string) ([]*model.Music, error) {
	var out []*model.Music
	err := u.c.doJSON(ctx, http.MethodGet, "/user/music/"+url.PathEscape(subject), nil, nil, &out)
	return out, err
}

// History returns the subject's account together with its history.
func (u *UserClient) History(ctx context.Context, subject string) (*model.UserHistory, error) {
	var out *model.UserHistory
	err := u.c.doJSON(ctx, http.MethodGet, "/user/history/"+url.PathEscape(subject), nil, nil, &out)
	return out, err
}

// Create registers a new account.
func (u *UserClient) Create(ctx context.Context, input model.UserCreate) (*model.User, error) {
	var out *model.User
	err := u.c.doJSON(ctx, http.MethodPost, "/user", input, nil, &out)
	return out, err
}

// VerifyAccount confirms the e-mail verification token.
func (u *UserClient) VerifyAccount(ctx context.Context, token string) (*model.User, error) {
	var out *model.User
	err := u.c.doJSON(ctx, http.MethodPut, "/user/"+url.PathEscape(token), nil, nil, &out)
	return out, err
}

// SaveHistory writes one history entry for the subject. The kind names
// the reference field ("albumId", "musicId" or "playlistId").
func (u *UserClient) SaveHistory(ctx context.Context, subject, kind, value string) error {
	payload := map[string]string{kind: value, "userId": subject}
	return u.c.doJSON(ctx, http.MethodPost, "/user/history", payload, nil, nil)
}
