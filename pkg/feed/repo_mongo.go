package feed

import (
	"context"
	"time"

	"codequest/pkg/common"
	"codequest/pkg/errs"
	"codequest/pkg/votes"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PostsRepoMongo struct {
	collection common.CollectionHelper
}

func NewPostsRepoMongo(db *mongo.Database) *PostsRepoMongo {
	return &PostsRepoMongo{collection: &common.MongoCollection{Collection: db.Collection("feed_posts")}}
}

// GetByAuthorIDs lists the feed of the given authors, newest first.
func (r *PostsRepoMongo) GetByAuthorIDs(ctx context.Context, authorIDs []int64, page, limit int64) ([]*Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
		if page > 1 {
			opts = opts.SetSkip((page - 1) * limit)
		}
	}

	cur, err := r.collection.Find(ctx, bson.M{"authorID": bson.M{"$in": authorIDs}, "isActive": true}, opts)
	if err != nil {
		return nil, err
	}

	defer cur.Close(ctx)

	var result []*Post
	err = cur.All(ctx, &result)
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *PostsRepoMongo) Add(ctx context.Context, p *Post) (interface{}, error) {
	p.IsActive = true
	if p.Likes == nil {
		p.Likes = []votes.Record{}
	}

	res, err := r.collection.InsertOne(ctx, p)
	if err != nil {
		return nil, err
	}

	return res.GetInsertedID(), nil
}

// Delete removes the author's own post. The author filter makes
// ownership part of the delete itself.
func (r *PostsRepoMongo) Delete(ctx context.Context, id interface{}, authorID int64) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "authorID": authorID})
	if err != nil {
		return err
	}

	if res.GetDeletedCount() == 0 {
		return errs.ErrNotFound
	}

	return nil
}

// CountByAuthorSince counts posts toward the daily quota window.
func (r *PostsRepoMongo) CountByAuthorSince(ctx context.Context, authorID int64, since time.Time) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"authorID": authorID, "created": bson.M{"$gte": since}})
}

// ToggleLike is a true toggle: a second like by the same user undoes
// the first. The pull carries the membership test in its filter, so
// which branch ran is decided server-side, not by a racy read.
func (r *PostsRepoMongo) ToggleLike(ctx context.Context, id interface{}, userID int64) (*Post, bool, error) {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id, "isActive": true, "likes.user": userID},
		bson.D{
			{Key: "$pull", Value: bson.D{{Key: "likes", Value: bson.M{"user": userID}}}},
		})
	if err != nil {
		return nil, false, err
	}

	liked := false
	if res.GetMatchedCount() == 0 {
		pushRes, err := r.collection.UpdateOne(ctx,
			bson.M{"_id": id, "isActive": true},
			bson.D{
				{Key: "$push", Value: bson.D{{Key: "likes", Value: votes.Record{User: userID, Created: time.Now()}}}},
			})
		if err != nil {
			return nil, false, err
		}

		if pushRes.GetMatchedCount() == 0 {
			return nil, false, errs.ErrNotFound
		}

		liked = true
	}

	single := r.collection.FindOne(ctx, bson.M{"_id": id})
	p := &Post{}
	err = single.Decode(p)
	if err != nil {
		return nil, false, err
	}

	return p, liked, nil
}

func (r *PostsRepoMongo) ParseID(in string) (interface{}, error) {
	return primitive.ObjectIDFromHex(in)
}
