package comments

import "time"

const (
	ParentQuestion = "question"
	ParentAnswer   = "answer"
)

type Comment struct {
	ID         interface{} `json:"id" bson:"_id,omitempty"`
	Body       string      `json:"body" bson:"body"`
	AuthorID   int64       `json:"-" bson:"authorID"`
	ParentType string      `json:"parentType" bson:"parentType"`
	ParentID   interface{} `json:"parentId" bson:"parentID"`
	IsActive   bool        `json:"-" bson:"isActive"`
	Created    time.Time   `json:"created" bson:"created"`
}

func ValidParentType(in string) bool {
	return in == ParentQuestion || in == ParentAnswer
}
