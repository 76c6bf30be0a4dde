package model

// Playlist mirrors the playlist service's record.
type Playlist struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Image       *string  `json:"image,omitempty"`
	UserID      string   `json:"userId"`
	Music       []*Music `json:"music,omitempty"`
}

// PlaylistCreate is the payload for creating a playlist. UserID is filled
// in by the mediator from the verified credential, never by the caller.
type PlaylistCreate struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Image       *string `json:"image,omitempty"`
	UserID      string  `json:"userId"`
}

// PlaylistUpdate is the payload for updating playlist attributes.
type PlaylistUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Image       *string `json:"image,omitempty"`
}

// PlaylistInteraction is a like/dislike record attached to a playlist.
// The action vocabulary belongs to the playlist service and passes
// through unchanged.
type PlaylistInteraction struct {
	ID         string `json:"id"`
	PlaylistID string `json:"playlistId"`
	UserID     string `json:"userId"`
	Action     string `json:"action"`
}
