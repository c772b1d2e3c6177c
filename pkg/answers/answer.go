package answers

import (
	"time"

	"codequest/pkg/votes"
)

type Answer struct {
	ID         interface{}    `bson:"_id,omitempty"`
	Body       string         `bson:"body"`
	QuestionID interface{}    `bson:"questionID"`
	AuthorID   int64          `bson:"authorID"`
	Upvotes    []votes.Record `bson:"upvotes"`
	Downvotes  []votes.Record `bson:"downvotes"`
	IsAccepted bool           `bson:"isAccepted"`
	IsActive   bool           `bson:"isActive"`
	Created    time.Time      `bson:"created"`
}
