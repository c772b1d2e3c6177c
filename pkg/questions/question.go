package questions

import (
	"time"

	"codequest/pkg/votes"
)

type Sort string

const (
	SortNewest Sort = "newest"
	SortOldest Sort = "oldest"
	SortViews  Sort = "views"
)

type Question struct {
	ID           interface{}    `bson:"_id,omitempty"`
	Title        string         `bson:"title"`
	Body         string         `bson:"body"`
	TagIDs       []interface{}  `bson:"tags"`
	AuthorID     int64          `bson:"authorID"`
	Upvotes      []votes.Record `bson:"upvotes"`
	Downvotes    []votes.Record `bson:"downvotes"`
	Views        uint64         `bson:"views"`
	AnswersCount int64          `bson:"answersCount"`
	IsActive     bool           `bson:"isActive"`
	Created      time.Time      `bson:"created"`
}

// Score is derived, never stored.
func (q *Question) Score() int {
	return len(q.Upvotes) - len(q.Downvotes)
}

// ListFilter narrows and orders GetAll results. Zero value lists
// everything, newest first.
type ListFilter struct {
	TagIDs []interface{}
	Search string
	Sort   Sort
	Page   int64
	Limit  int64
}
