package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/tunebridge/tunebridge/internal/model"
)

// PlaylistClient calls the playlist service.
type PlaylistClient struct {
	c *Client
}

func NewPlaylistClient(c *Client) *PlaylistClient {
	return &PlaylistClient{c: c}
}

// List returns playlists, paginated only when both page and size are given.
func (p *PlaylistClient) List(ctx context.Context, page, size *int32) ([]*model.Playlist, error) {
	path := "/playlist"
	if page != nil && size != nil {
		path = fmt.Sprintf("/playlist?page=%d&size=%d", *page, *size)
	}
	var out []*model.Playlist
	err := p.c.doJSON(ctx, http.MethodGet, path, nil, nil, &out)
	return out, err
}

// GetByID returns one playlist.
func (p *PlaylistClient) GetByID(ctx context.Context, id string) (*model.Playlist, error) {
	var out *model.Playlist
	err := p.c.doJSON(ctx, http.MethodGet, "/playlist/"+url.PathEscape(id), nil, nil, &out)
	return out, err
}

// ByUser returns the playlists owned by the subject.
func (p *PlaylistClient) ByUser(ctx context.Context, subject string) ([]*model.Playlist, error) {
	var out []*model.Playlist
	err := p.c.doJSON(ctx, http.MethodGet, "/playlist/user/"+url.PathEscape(subject), nil, nil, &out)
	return out, err
}

// Music returns a playlist with its tracks resolved.
func (p *PlaylistClient) Music(ctx context.Context, id string) (*model.Playlist, error) {
	var out *model.Playlist
	err := p.c.doJSON(ctx, http.MethodGet, "/playlist/music/"+url.PathEscape(id), nil, nil, &out)
	return out, err
}

// Likes returns the interaction records of a playlist.
func (p *PlaylistClient) Likes(ctx context.Context, id string) ([]*model.PlaylistInteraction, error) {
	var out []*model.PlaylistInteraction
	err := p.c.doJSON(ctx, http.MethodGet, "/playlist/likes/"+url.PathEscape(id), nil, nil, &out)
	return out, err
}

// UserLikes returns the subject's own interaction with a playlist.
func (p *PlaylistClient) UserLikes(ctx context.Context, subject, playlistID string) (*model.PlaylistInteraction, error) {
	payload := map[string]string{"userId": subject, "playlistId": playlistID}
	var out *model.PlaylistInteraction
	err := p.c.doJSON(ctx, http.MethodPost, "/playlist/user/likes", payload, nil, &out)
	return out, err
}

// Create stores a new playlist.
func (p *PlaylistClient) Create(ctx context.Context, input model.PlaylistCreate) (*model.Playlist, error) {
	var out *model.Playlist
	err := p.c.doJSON(ctx, http.MethodPost, "/playlist", input, nil, &out)
	return out, err
}

// Update changes playlist attributes.
func (p *PlaylistClient) Update(ctx context.Context, id string, input model.PlaylistUpdate) (*model.Playlist, error) {
	var out *model.Playlist
	err := p.c.doJSON(ctx, http.MethodPut, "/playlist/"+url.PathEscape(id), input, nil, &out)
	return out, err
}

// Delete removes a playlist.
func (p *PlaylistClient) Delete(ctx context.Context, id string) (*model.Playlist, error) {
	var out *model.Playlist
	err := p.c.doJSON(ctx, http.MethodDelete, "/playlist/"+url.PathEscape(id), nil, nil, &out)
	return out, err
}

// AddMusic attaches a track to a playlist.
func (p *PlaylistClient) AddMusic(ctx context.Context, playlistID, musicID string) (*model.Playlist, error) {
	payload := map[string]string{"playlistId": playlistID, "musicId": musicID}
	var out *model.Playlist
	err := p.c.doJSON(ctx, http.MethodPost, "/playlist/music", payload, nil, &out)
	return out, err
}

// RemoveMusic detaches a track. The service's route nests the music id
// before the playlist id.
func (p *PlaylistClient) RemoveMusic(ctx context.Context, playlistID, musicID string) (*model.Playlist, error) {
	path := "/playlist/playlist/" + url.PathEscape(musicID) + "/" + url.PathEscape(playlistID)
	var out *model.Playlist
	err := p.c.doJSON(ctx, http.MethodDelete, path, nil, nil, &out)
	return out, err
}

// UpdateLike records a like or dislike on behalf of the subject. The
// action vocabulary is owned by the playlist service.
func (p *PlaylistClient) UpdateLike(ctx context.Context, playlistID, subject, action string) (*model.PlaylistInteraction, error) {
	payload := map[string]string{"playlistId": playlistID, "userId": subject, "action": action}
	var out *model.PlaylistInteraction
	err := p.c.doJSON(ctx, http.MethodPost, "/playlist/like", payload, nil, &out)
	return out, err
}
