package feed

import (
	"time"

	"codequest/pkg/votes"
)

type MediaType string

const (
	Image MediaType = "image"
	Video MediaType = "video"
)

func (m MediaType) Valid() bool {
	return m == Image || m == Video
}

type Post struct {
	ID        interface{}    `bson:"_id,omitempty"`
	AuthorID  int64          `bson:"authorID"`
	Caption   string         `bson:"caption"`
	MediaURL  string         `bson:"mediaURL,omitempty"`
	MediaType MediaType      `bson:"mediaType,omitempty"`
	Likes     []votes.Record `bson:"likes"`
	IsActive  bool           `bson:"isActive"`
	Created   time.Time      `bson:"created"`
}
