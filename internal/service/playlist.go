package service

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/tunebridge/tunebridge/internal/backend"
	"github.com/tunebridge/tunebridge/internal/history"
	"github.com/tunebridge/tunebridge/internal/mediation"
	"github.com/tunebridge/tunebridge/internal/model"
	"github.com/tunebridge/tunebridge/internal/token"
)

// PlaylistMediator mediates playlist operations against the playlist
// service.
type PlaylistMediator struct {
	playlists *backend.PlaylistClient
	recorder  *history.Recorder
	verifier  *token.Verifier
	logger    *slog.Logger
}

func NewPlaylistMediator(playlists *backend.PlaylistClient, recorder *history.Recorder, verifier *token.Verifier, logger *slog.Logger) *PlaylistMediator {
	return &PlaylistMediator{
		playlists: playlists,
		recorder:  recorder,
		verifier:  verifier,
		logger:    logger.With("component", "playlist-mediator"),
	}
}

// GetAllOrPaginate lists playlists; pagination applies only when both
// page and size are present. The empty-result message predates this
// service and is kept for consumer compatibility.
func (m *PlaylistMediator) GetAllOrPaginate(ctx context.Context, page, size *int32) ([]*model.Playlist, error) {
	playlists, err := m.playlists.List(ctx, page, size)
	if err != nil {
		return nil, mediation.Translate(err)
	}
	if len(playlists) == 0 {
		return nil, mediation.Translate(mediation.NotFound("No music found", "There are no music in the database"))
	}
	return playlists, nil
}

// GetByID returns one playlist.
func (m *PlaylistMediator) GetByID(ctx context.Context, id string) (*model.Playlist, error) {
	if id == "" {
		return nil, mediation.Translate(mediation.Validation("BAD_REQUEST", "The id is required"))
	}
	playlist, err := m.playlists.GetByID(ctx, id)
	if err != nil {
		return nil, mediation.Translate(err)
	}
	return playlist, nil
}

// GetUserPlaylists returns the authenticated caller's playlists.
func (m *PlaylistMediator) GetUserPlaylists(ctx context.Context, credential string) ([]*model.Playlist, error) {
	if credential == "" {
		return nil, mediation.Translate(mediation.Validation("BAD_REQUEST", "The token is required"))
	}
	subject, err := m.verifier.Verify(credential)
	if err != nil {
		return nil, mediation.Translate(err)
	}
	playlists, err := m.playlists.ByUser(ctx, subject)
	if err != nil {
		return nil, mediation.Translate(err)
	}
	return playlists, nil
}

// GetMusic returns a playlist with its tracks. Opening a playlist counts
// as consumption, so a present credential records history first and a
// failed write fails the operation.
func (m *PlaylistMediator) GetMusic(ctx context.Context, id, credential string) (*model.Playlist, error) {
	if id == "" {
		return nil, mediation.Translate(mediation.Validation("BAD_REQUEST", "The id is required"))
	}
	if credential != "" {
		if _, err := m.recorder.Record(ctx, credential, history.KindPlaylist, id); err != nil {
			return nil, mediation.Translate(err)
		}
	}
	playlist, err := m.playlists.Music(ctx, id)
	if err != nil {
		return nil, mediation.Translate(err)
	}
	return playlist, nil
}

// GetLikes returns the interaction records of a playlist.
func (m *PlaylistMediator) GetLikes(ctx context.Context, id string) ([]*model.PlaylistInteraction, error) {
	if id == "" {
		return nil, mediation.Translate(mediation.Validation("BAD_REQUEST", "The id is required"))
	}
	likes, err := m.playlists.Likes(ctx, id)
	if err != nil {
		return nil, mediation.Translate(err)
	}
	return likes, nil
}

// GetUserLikes returns the authenticated caller's own interaction with a
// playlist, recording the visit before asking.
func (m *PlaylistMediator) GetUserLikes(ctx context.Context, id, credential string) (*model.PlaylistInteraction, error) {
	if id == "" {
		return nil, mediation.Translate(mediation.Validation("BAD_REQUEST", "The id is required"))
	}
	subject, err := m.recorder.Record(ctx, credential, history.KindPlaylist, id)
	if err != nil {
		return nil, mediation.Translate(err)
	}
	likes, err := m.playlists.UserLikes(ctx, subject, id)
	if err != nil {
		return nil, mediation.Translate(err)
	}
	return likes, nil
}

// Create stores a new playlist owned by the authenticated caller. The
// owner always comes from the verified credential, never the payload.
func (m *PlaylistMediator) Create(ctx context.Context, input model.PlaylistCreate, credential string) (*model.Playlist, error) {
	if credential == "" {
		return nil, mediation.Translate(mediation.Authentication(http.StatusBadRequest, "UNAUTHENTICATED", "The token is required"))
	}
	subject, err := m.verifier.Verify(credential)
	if err != nil {
		return nil, mediation.Translate(err)
	}
	input.UserID = subject
	playlist, err := m.playlists.Create(ctx, input)
	if err != nil {
		return nil, mediation.Translate(err)
	}
	m.logger.Debug("playlist created", "name", input.Name)
	return playlist, nil
}

// Update changes playlist attributes.
func (m *PlaylistMediator) Update(ctx context.Context, id string, input model.PlaylistUpdate) (*model.Playlist, error) {
	if id == "" {
		return nil, mediation.Translate(mediation.Validation("BAD_REQUEST", "The id is required"))
	}
	playlist, err := m.playlists.Update(ctx, id, input)
	if err != nil {
		return nil, mediation.Translate(err)
	}
	return playlist, nil
}

// Delete removes a playlist on behalf of the authenticated caller.
func (m *PlaylistMediator) Delete(ctx context.Context, id, credential string) (*model.Playlist, error) {
	if credential == "" {
		return nil, mediation.Translate(mediation.Authentication(http.StatusBadRequest, "UNAUTHENTICATED", "The token is required"))
	}
	subject, err := m.verifier.Verify(credential)
	if err != nil {
		return nil, mediation.Translate(err)
	}
	if subject == "" {
		return nil, mediation.Translate(mediation.Validation("BAD_REQUEST", "The user is required"))
	}
	playlist, err := m.playlists.Delete(ctx, id)
	if err != nil {
		return nil, mediation.Translate(err)
	}
	m.logger.Debug("playlist deleted", "id", id)
	return playlist, nil
}

// AddMusic attaches a track to a playlist.
func (m *PlaylistMediator) AddMusic(ctx context.Context, playlistID, musicID string) (*model.Playlist, error) {
	if playlistID == "" || musicID == "" {
		return nil, mediation.Translate(mediation.Validation("BAD_REQUEST", "The id is required"))
	}
	playlist, err := m.playlists.AddMusic(ctx, playlistID, musicID)
	if err != nil {
		return nil, mediation.Translate(err)
	}
	return playlist, nil
}

// RemoveMusic detaches a track from a playlist.
func (m *PlaylistMediator) RemoveMusic(ctx context.Context, playlistID, musicID string) (*model.Playlist, error) {
	if playlistID == "" || musicID == "" {
		return nil, mediation.Translate(mediation.Validation("BAD_REQUEST", "The id is required"))
	}
	playlist, err := m.playlists.RemoveMusic(ctx, playlistID, musicID)
	if err != nil {
		return nil, mediation.Translate(err)
	}
	return playlist, nil
}

// UpdateLike records a like or dislike on behalf of the authenticated
// caller.
func (m *PlaylistMediator) UpdateLike(ctx context.Context, playlistID, action, credential string) (*model.PlaylistInteraction, error) {
	if credential == "" {
		return nil, mediation.Translate(mediation.Authentication(http.StatusBadRequest, "UNAUTHENTICATED", "The token is required"))
	}
	subject, err := m.verifier.Verify(credential)
	if err != nil {
		return nil, mediation.Translate(err)
	}
	likes, err := m.playlists.UpdateLike(ctx, playlistID, subject, action)
	if err != nil {
		return nil, mediation.Translate(err)
	}
	return likes, nil
}
