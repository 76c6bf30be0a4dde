package graph

import (
	"context"

	"github.com/graph-gophers/graphql-go"

	"github.com/tunebridge/tunebridge/internal/model"
	"github.com/tunebridge/tunebridge/internal/service"
	"github.com/tunebridge/tunebridge/internal/token"
)

// Resolver is the root resolver. Every method is a thin adapter: pull
// the ambient credential from context, call the mediator, return its
// answer. Policy lives below this layer.
type Resolver struct {
	users     *service.UserMediator
	music     *service.MusicMediator
	playlists *service.PlaylistMediator
}

func NewResolver(users *service.UserMediator, music *service.MusicMediator, playlists *service.PlaylistMediator) *Resolver {
	return &Resolver{users: users, music: music, playlists: playlists}
}

// ParseSchema binds the SDL to the root resolver.
func ParseSchema(r *Resolver) (*graphql.Schema, error) {
	return graphql.ParseSchema(Schema, r, graphql.UseFieldResolvers())
}

// PlaylistInput carries playlist creation arguments. The owner is never
// part of the input; it comes from the verified credential.
type PlaylistInput struct {
	Name        string
	Description *string
	Image       *string
}

// PlaylistUpdateInput carries partial playlist updates.
type PlaylistUpdateInput struct {
	Name        *string
	Description *string
	Image       *string
}

// --- user domain ---

func (r *Resolver) GetAllUser(ctx context.Context) ([]*model.User, error) {
	return r.users.GetAllUsers(ctx)
}

func (r *Resolver) GetUserByID(ctx context.Context, args struct{ ID string }) (*model.User, error) {
	return r.users.GetUserByID(ctx, args.ID)
}

func (r *Resolver) UserLogin(ctx context.Context, args struct{ Email, PasswordHash string }) (*model.User, error) {
	return r.users.Login(ctx, args.Email, args.PasswordHash)
}

func (r *Resolver) UserNetworkLogin(ctx context.Context, args struct {
	UserName string
	Email    string
	Image    *string
}) (string, error) {
	return r.users.NetworkLogin(ctx, args.UserName, args.Email, args.Image)
}

func (r *Resolver) GetUserMusic(ctx context.Context) ([]*model.Music, error) {
	return r.users.GetUserMusic(ctx, token.CredentialFromContext(ctx))
}

func (r *Resolver) GetUserHistory(ctx context.Context) (*model.UserHistory, error) {
	return r.users.GetUserHistory(ctx, token.CredentialFromContext(ctx))
}

func (r *Resolver) CreateUser(ctx context.Context, args struct{ UserName, Email, PasswordHash string }) (*model.User, error) {
	return r.users.CreateUser(ctx, model.UserCreate{
		UserName:     args.UserName,
		Email:        args.Email,
		PasswordHash: args.PasswordHash,
	})
}

func (r *Resolver) VerifyUser(ctx context.Context, args struct{ Token string }) (*model.User, error) {
	return r.users.VerifyAccount(ctx, args.Token)
}

// --- music domain ---

func (r *Resolver) GetAllMusicOrPagine(ctx context.Context, args struct{ Page, Size *int32 }) ([]*model.Music, error) {
	return r.music.GetAllOrPaginate(ctx, args.Page, args.Size)
}

func (r *Resolver) GetMusicByAlbum(ctx context.Context) ([]*model.Album, error) {
	return r.music.GetAlbums(ctx)
}

func (r *Resolver) GetAllMusicByAlbum(ctx context.Context, args struct{ Album string }) ([]*model.Album, error) {
	return r.music.GetAlbumsByAuthor(ctx, args.Album, token.CredentialFromContext(ctx))
}

func (r *Resolver) GetMusicByID(ctx context.Context, args struct{ ID string }) (*model.Music, error) {
	return r.music.GetByID(ctx, args.ID)
}

func (r *Resolver) GetMusicSearch(ctx context.Context, args struct{ Search string }) ([]*model.Music, error) {
	return r.music.Search(ctx, args.Search)
}

func (r *Resolver) GetMusicURL(ctx context.Context, args struct{ ID string }) (string, error) {
	return r.music.GetPlayURL(ctx, args.ID, token.CredentialFromContext(ctx))
}

func (r *Resolver) GetMusicYoutubeInfo(ctx context.Context, args struct{ ID string }) (*model.Music, error) {
	return r.music.GetInfo(ctx, args.ID)
}

func (r *Resolver) UploadMusicByURL(ctx context.Context, args struct{ ID string }) (*model.Music, error) {
	return r.music.UploadByURL(ctx, args.ID, token.CredentialFromContext(ctx))
}

func (r *Resolver) DeleteMusic(ctx context.Context, args struct{ ID string }) (*model.Music, error) {
	return r.music.Delete(ctx, args.ID, token.CredentialFromContext(ctx))
}

// --- playlist domain ---

func (r *Resolver) GetAllPlaylist(ctx context.Context, args struct{ Page, Size *int32 }) ([]*model.Playlist, error) {
	return r.playlists.GetAllOrPaginate(ctx, args.Page, args.Size)
}

func (r *Resolver) GetPlaylistByID(ctx context.Context, args struct{ ID string }) (*model.Playlist, error) {
	return r.playlists.GetByID(ctx, args.ID)
}

func (r *Resolver) GetUserPlaylist(ctx context.Context) ([]*model.Playlist, error) {
	return r.playlists.GetUserPlaylists(ctx, token.CredentialFromContext(ctx))
}

func (r *Resolver) GetPlaylistMusic(ctx context.Context, args struct{ ID string }) (*model.Playlist, error) {
	return r.playlists.GetMusic(ctx, args.ID, token.CredentialFromContext(ctx))
}

func (r *Resolver) GetPlaylistLikes(ctx context.Context, args struct{ ID string }) ([]*model.PlaylistInteraction, error) {
	return r.playlists.GetLikes(ctx, args.ID)
}

func (r *Resolver) GetUserLikes(ctx context.Context, args struct{ ID string }) (*model.PlaylistInteraction, error) {
	return r.playlists.GetUserLikes(ctx, args.ID, token.CredentialFromContext(ctx))
}

func (r *Resolver) CreatePlaylist(ctx context.Context, args struct{ Data PlaylistInput }) (*model.Playlist, error) {
	return r.playlists.Create(ctx, model.PlaylistCreate{
		Name:        args.Data.Name,
		Description: args.Data.Description,
		Image:       args.Data.Image,
	}, token.CredentialFromContext(ctx))
}

func (r *Resolver) UpdatePlaylist(ctx context.Context, args struct {
	ID   string
	Data PlaylistUpdateInput
}) (*model.Playlist, error) {
	return r.playlists.Update(ctx, args.ID, model.PlaylistUpdate{
		Name:        args.Data.Name,
		Description: args.Data.Description,
		Image:       args.Data.Image,
	})
}

func (r *Resolver) DeletePlaylist(ctx context.Context, args struct{ ID string }) (*model.Playlist, error) {
	return r.playlists.Delete(ctx, args.ID, token.CredentialFromContext(ctx))
}

func (r *Resolver) AddMusicToPlaylist(ctx context.Context, args struct{ PlaylistID, MusicID string }) (*model.Playlist, error) {
	return r.playlists.AddMusic(ctx, args.PlaylistID, args.MusicID)
}

func (r *Resolver) RemoveMusicFromPlaylist(ctx context.Context, args struct{ PlaylistID, MusicID string }) (*model.Playlist, error) {
	return r.playlists.RemoveMusic(ctx, args.PlaylistID, args.MusicID)
}

func (r *Resolver) UpdateLikes(ctx context.Context, args struct{ PlaylistID, Action string }) (*model.PlaylistInteraction, error) {
	return r.playlists.UpdateLike(ctx, args.PlaylistID, args.Action, token.CredentialFromContext(ctx))
}
