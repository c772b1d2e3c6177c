package tags

import "time"

type Tag struct {
	ID             interface{} `json:"id" bson:"_id,omitempty"`
	Name           string      `json:"name" bson:"name"`
	Description    string      `json:"description" bson:"description"`
	Color          string      `json:"color" bson:"color"`
	QuestionsCount int64       `json:"questionsCount" bson:"questionsCount"`
	IsActive       bool        `json:"-" bson:"isActive"`
	Created        time.Time   `json:"created" bson:"created"`
}
