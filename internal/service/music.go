package service

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/tunebridge/tunebridge/internal/backend"
	"github.com/tunebridge/tunebridge/internal/history"
	"github.com/tunebridge/tunebridge/internal/mediation"
	"github.com/tunebridge/tunebridge/internal/model"
)

// MusicMediator mediates catalog operations against the music service.
type MusicMediator struct {
	music    *backend.MusicClient
	recorder *history.Recorder
	logger   *slog.Logger
}

func NewMusicMediator(music *backend.MusicClient, recorder *history.Recorder, logger *slog.Logger) *MusicMediator {
	return &MusicMediator{
		music:    music,
		recorder: recorder,
		logger:   logger.With("component", "music-mediator"),
	}
}

// GetAllOrPaginate lists tracks; pagination applies only when both page
// and size are present.
func (m *MusicMediator) GetAllOrPaginate(ctx context.Context, page, size *int32) ([]*model.Music, error) {
	music, err := m.music.List(ctx, page, size)
	if err != nil {
		return nil, mediation.Translate(err)
	}
	if len(music) == 0 {
		return nil, mediation.Translate(mediation.NotFound("No music found", "There are no music in the database"))
	}
	return music, nil
}

// GetAlbums returns every album grouping.
func (m *MusicMediator) GetAlbums(ctx context.Context) ([]*model.Album, error) {
	albums, err := m.music.Albums(ctx)
	if err != nil {
		return nil, mediation.Translate(err)
	}
	if len(albums) == 0 {
		return nil, mediation.Translate(mediation.NotFound("No album found", "The album was not found"))
	}
	return albums, nil
}

// GetAlbumsByAuthor returns one author's albums. Viewing counts as
// consumption, so a present credential records history before the
// catalog call; a failed write fails the operation.
func (m *MusicMediator) GetAlbumsByAuthor(ctx context.Context, album, credential string) ([]*model.Album, error) {
	if album == "" {
		return nil, mediation.Translate(mediation.Validation("Bad request", "Author is required"))
	}
	if credential != "" {
		if _, err := m.recorder.Record(ctx, credential, history.KindAlbum, album); err != nil {
			return nil, mediation.Translate(err)
		}
	}
	albums, err := m.music.AlbumsByAuthor(ctx, album)
	if err != nil {
		return nil, mediation.Translate(err)
	}
	if len(albums) == 0 {
		return nil, mediation.Translate(mediation.NotFound("No album found", "The album was not found"))
	}
	return albums, nil
}

// GetByID returns one track.
func (m *MusicMediator) GetByID(ctx context.Context, id string) (*model.Music, error) {
	if id == "" {
		return nil, mediation.Translate(mediation.Validation("Bad request", "Id is required"))
	}
	music, err := m.music.GetByID(ctx, id)
	if err != nil {
		return nil, mediation.Translate(err)
	}
	return music, nil
}

// GetPlayURL resolves the playback address. Playback history is
// fire-and-forget: the dispatch never delays or fails the answer.
func (m *MusicMediator) GetPlayURL(ctx context.Context, id, credential string) (string, error) {
	if credential != "" {
		m.recorder.RecordAsync(credential, history.KindMusic, id)
	}
	playURL, err := m.music.PlayURL(ctx, id)
	if err != nil {
		return "", mediation.Translate(err)
	}
	return playURL, nil
}

// Search returns tracks matching the query.
func (m *MusicMediator) Search(ctx context.Context, search string) ([]*model.Music, error) {
	if search == "" {
		return nil, mediation.Translate(mediation.Validation("Bad request", "Search is required"))
	}
	music, err := m.music.Search(ctx, search)
	if err != nil {
		return nil, mediation.Translate(err)
	}
	return music, nil
}

// GetInfo returns metadata for an external reference.
func (m *MusicMediator) GetInfo(ctx context.Context, id string) (*model.Music, error) {
	if id == "" {
		return nil, mediation.Translate(mediation.Validation("Bad request", "Id is required"))
	}
	info, err := m.music.Info(ctx, id)
	if err != nil {
		return nil, mediation.Translate(err)
	}
	return info, nil
}

// UploadByURL ingests a track from an external URL on behalf of the
// authenticated caller.
func (m *MusicMediator) UploadByURL(ctx context.Context, mediaURL, credential string) (*model.Music, error) {
	if credential == "" {
		return nil, mediation.Translate(mediation.Authentication(http.StatusUnauthorized, "UNAUTHORIZED", "Token is required"))
	}
	m.recorder.RecordAsync(credential, history.KindMusic, mediaURL)
	music, err := m.music.UploadByURL(ctx, mediaURL, credential)
	if err != nil {
		return nil, mediation.Translate(err)
	}
	m.logger.Debug("music ingested", "source", mediaURL)
	return music, nil
}

// Upload forwards an audio file to the music service.
func (m *MusicMediator) Upload(ctx context.Context, file model.File, credential string) (*model.Music, error) {
	if credential == "" {
		return nil, mediation.Translate(mediation.Authentication(http.StatusUnauthorized, "UNAUTHORIZED", "Token is required"))
	}
	music, err := m.music.Upload(ctx, file, credential)
	if err != nil {
		return nil, mediation.Translate(err)
	}
	return music, nil
}

// Delete removes a track on behalf of the authenticated caller.
func (m *MusicMediator) Delete(ctx context.Context, id, credential string) (*model.Music, error) {
	if credential == "" {
		return nil, mediation.Translate(mediation.Authentication(http.StatusUnauthorized, "UNAUTHORIZED", "Token is required"))
	}
	music, err := m.music.Delete(ctx, id, credential)
	if err != nil {
		return nil, mediation.Translate(err)
	}
	m.logger.Debug("music deleted", "id", id)
	return music, nil
}
