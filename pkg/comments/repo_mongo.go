package comments

import (
	"context"
	"time"

	"codequest/pkg/common"
	"codequest/pkg/errs"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CommentsRepoMongo struct {
	collection common.CollectionHelper
}

func NewCommentsRepoMongo(db *mongo.Database) *CommentsRepoMongo {
	return &CommentsRepoMongo{collection: &common.MongoCollection{Collection: db.Collection("comments")}}
}

func (r *CommentsRepoMongo) GetByParent(ctx context.Context, parentType string, parentID interface{}) ([]*Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created", Value: 1}})
	cur, err := r.collection.Find(ctx,
		bson.M{"parentType": parentType, "parentID": parentID, "isActive": true}, opts)
	if err != nil {
		return nil, err
	}

	defer cur.Close(ctx)

	var result []*Comment
	err = cur.All(ctx, &result)
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *CommentsRepoMongo) Add(ctx context.Context, c *Comment) (interface{}, error) {
	c.IsActive = true
	if c.Created.IsZero() {
		c.Created = time.Now()
	}

	res, err := r.collection.InsertOne(ctx, c)
	if err != nil {
		return nil, err
	}

	return res.GetInsertedID(), nil
}

// Delete soft-deletes the comment and only for its author.
func (r *CommentsRepoMongo) Delete(ctx context.Context, id interface{}, authorID int64) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id, "authorID": authorID, "isActive": true},
		bson.D{{Key: "$set", Value: bson.D{{Key: "isActive", Value: false}}}})
	if err != nil {
		return err
	}

	if res.GetMatchedCount() == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *CommentsRepoMongo) ParseID(in string) (interface{}, error) {
	return primitive.ObjectIDFromHex(in)
}
