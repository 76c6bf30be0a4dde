package model

// Music mirrors the music service's track record.
type Music struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Author   string  `json:"author"`
	Album    string  `json:"album"`
	Size     int32   `json:"size"`
	Duration float64 `json:"duration"`
	Image    *string `json:"image,omitempty"`
	UserID   *string `json:"userId,omitempty"`
}

// Album groups tracks by author as the music service reports them.
type Album struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Image  *string  `json:"image,omitempty"`
	Author string   `json:"author"`
	Music  []*Music `json:"music,omitempty"`
}

// File is an uploaded audio file forwarded to the music service.
type File struct {
	Name     string
	MimeType string
	Data     []byte
}
