package votes

import (
	"context"
	"time"

	"codequest/pkg/common"
	"codequest/pkg/errs"

	"go.mongodb.org/mongo-driver/bson"
)

type Type string

const (
	Upvote   Type = "upvote"
	Downvote Type = "downvote"
)

func (t Type) Valid() bool {
	return t == Upvote || t == Downvote
}

// Field is the name of the embedded voter array the vote lands in.
func (t Type) Field() string {
	if t == Downvote {
		return "downvotes"
	}

	return "upvotes"
}

// Record is one entry of an embedded voter array. A voter appears in
// at most one of upvotes/downvotes at any time.
type Record struct {
	User    int64     `bson:"user" json:"user"`
	Created time.Time `bson:"createdAt" json:"createdAt"`
}

func Contains(records []Record, userID int64) bool {
	for _, r := range records {
		if r.User == userID {
			return true
		}
	}

	return false
}

// ClearUpdate removes the voter from both arrays in one server-side
// update, so a vote flip never leaves the voter in two arrays.
func ClearUpdate(userID int64) bson.D {
	return bson.D{
		{Key: "$pull", Value: bson.D{
			{Key: "upvotes", Value: bson.M{"user": userID}},
			{Key: "downvotes", Value: bson.M{"user": userID}},
		}},
	}
}

// PushUpdate inserts a fresh vote record into the array named by t.
// Callers run ClearUpdate first, so the push cannot duplicate.
func PushUpdate(t Type, userID int64, now time.Time) bson.D {
	return bson.D{
		{Key: "$push", Value: bson.D{
			{Key: t.Field(), Value: Record{User: userID, Created: now}},
		}},
	}
}

// Apply records a vote on the document with the given id: the voter is
// pulled from both arrays, then pushed into the one named by t. Each
// step is a server-side set mutation keyed by voter ID, so concurrent
// votes by different users never overwrite each other. Re-casting the
// same vote is not a toggle, it only refreshes the record's timestamp.
func Apply(ctx context.Context, collection common.CollectionHelper, id interface{}, userID int64, t Type) error {
	res, err := collection.UpdateOne(ctx, bson.M{"_id": id, "isActive": true}, ClearUpdate(userID))
	if err != nil {
		return err
	}

	if res.GetMatchedCount() == 0 {
		return errs.ErrNotFound
	}

	_, err = collection.UpdateOne(ctx, bson.M{"_id": id}, PushUpdate(t, userID, time.Now()))
	return err
}
