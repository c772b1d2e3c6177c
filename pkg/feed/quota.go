package feed

import (
	"context"
	"errors"
	"time"

	"codequest/pkg/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Unlimited as a daily maximum means no cap at all.
const Unlimited = -1

// ErrQuotaFull is returned by Reserve when the day's slots are spent.
var ErrQuotaFull = errors.New("daily post quota full")

// MaxDailyPosts is the engagement ladder: no friends, no posts; a
// couple of friends buys two posts; from three friends on the cap is
// half the friend count, until ten friends lift it entirely.
func MaxDailyPosts(friends int) int {
	switch {
	case friends <= 0:
		return 0
	case friends <= 2:
		return 2
	case friends >= 10:
		return Unlimited
	default:
		return friends / 2
	}
}

// StartOfDay is the quota window's lower bound: local midnight.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayKey keys quota reservations by local calendar day.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// QuotaRepoMongo hands out daily post slots through conditional
// updates on one reservation document per (user, day). The collection
// carries a unique index on that pair, so two concurrent creators of
// the same user cannot both slip past a finite cap the way a
// count-then-insert would let them.
type QuotaRepoMongo struct {
	collection common.CollectionHelper
}

func NewQuotaRepoMongo(db *mongo.Database) *QuotaRepoMongo {
	return &QuotaRepoMongo{collection: &common.MongoCollection{Collection: db.Collection("feed_quota")}}
}

// Reserve takes one slot of max for the given day. max must be
// positive; Unlimited and zero caps are decided by the caller without
// touching the store.
func (r *QuotaRepoMongo) Reserve(ctx context.Context, userID int64, day string, max int) error {
	filter := bson.M{"user": userID, "day": day, "posts": bson.M{"$lt": max}}
	update := bson.D{
		{Key: "$inc", Value: bson.D{{Key: "posts", Value: 1}}},
	}

	res, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if mongo.IsDuplicateKeyError(err) {
		// Two first-of-day requests raced the upsert and one lost the
		// unique-index collision. The reservation doc exists now, so a
		// plain conditional update settles whether a slot is left.
		res, err = r.collection.UpdateOne(ctx, filter, update)
		if err != nil {
			return err
		}

		if res.GetMatchedCount() == 0 {
			return ErrQuotaFull
		}

		return nil
	}
	if err != nil {
		return err
	}

	if res.GetMatchedCount() == 0 && res.GetUpsertedCount() == 0 {
		return ErrQuotaFull
	}

	return nil
}

// Release gives a slot back when the post insert that followed the
// reservation failed.
func (r *QuotaRepoMongo) Release(ctx context.Context, userID int64, day string) error {
	filter := bson.M{"user": userID, "day": day, "posts": bson.M{"$gt": 0}}
	update := bson.D{
		{Key: "$inc", Value: bson.D{{Key: "posts", Value: -1}}},
	}

	_, err := r.collection.UpdateOne(ctx, filter, update)
	return err
}
