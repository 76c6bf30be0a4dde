package model

// HistoryEntry links a user to a viewed or consumed reference. The
// timestamp is assigned by the user service, not the gateway.
type HistoryEntry struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	MusicID    *string   `json:"musicId,omitempty"`
	PlaylistID *string   `json:"playlistId,omitempty"`
	AlbumID    *string   `json:"albumId,omitempty"`
	Timestamp  string    `json:"timestamp"`
	Music      *Music    `json:"music,omitempty"`
	Playlist   *Playlist `json:"playlist,omitempty"`
	Album      *Album    `json:"album,omitempty"`
}

// UserHistory is the user service's combined account-plus-history view.
type UserHistory struct {
	User    *User           `json:"user"`
	History []*HistoryEntry `json:"history"`
}
