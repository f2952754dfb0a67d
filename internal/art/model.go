package art

import (
	"encoding/json"
	"time"
)

// Art is a stored pixel-art canvas. Pixels is kept as an opaque JSON blob;
// the service never interprets individual pixels.
type Art struct {
	ID        string
	OwnerID   string
	Name      string
	Pixels    json.RawMessage
	Width     int
	Height    int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Document is the wire representation of a canvas, matching the persisted
// document layout clients already consume.
type Document struct {
	ID      string          `json:"_id"`
	UserID  string          `json:"userId"`
	ArtName string          `json:"artName"`
	Pixels  json.RawMessage `json:"pixels"`
	Width   int             `json:"width"`
	Height  int             `json:"height"`
}

// Doc converts an Art into its wire representation.
func (a Art) Doc() Document {
	return Document{
		ID:      a.ID,
		UserID:  a.OwnerID,
		ArtName: a.Name,
		Pixels:  a.Pixels,
		Width:   a.Width,
		Height:  a.Height,
	}
}
