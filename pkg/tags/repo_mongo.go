package tags

import (
	"context"
	"regexp"
	"time"

	"codequest/pkg/common"
	"codequest/pkg/errs"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const popularLimit = 20

type TagsRepoMongo struct {
	collection common.CollectionHelper
}

func NewTagsRepoMongo(db *mongo.Database) *TagsRepoMongo {
	return &TagsRepoMongo{collection: &common.MongoCollection{Collection: db.Collection("tags")}}
}

// GetAll lists active tags alphabetically, optionally filtered by a
// case-insensitive name search.
func (r *TagsRepoMongo) GetAll(ctx context.Context, search string, limit int64) ([]*Tag, error) {
	filter := bson.M{"isActive": true}
	if search != "" {
		filter["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}

	cur, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	defer cur.Close(ctx)

	var result []*Tag
	err = cur.All(ctx, &result)
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *TagsRepoMongo) GetPopular(ctx context.Context) ([]*Tag, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "questionsCount", Value: -1}}).
		SetLimit(popularLimit)

	cur, err := r.collection.Find(ctx, bson.M{"isActive": true}, opts)
	if err != nil {
		return nil, err
	}

	defer cur.Close(ctx)

	var result []*Tag
	err = cur.All(ctx, &result)
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *TagsRepoMongo) GetByID(ctx context.Context, id interface{}) (*Tag, error) {
	tag := &Tag{}
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "isActive": true}).Decode(tag)
	if err == mongo.ErrNoDocuments {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return tag, nil
}

// GetOrCreate finds a tag by name or inserts it in one round trip, so
// two authors racing on a new tag end up sharing a single document.
func (r *TagsRepoMongo) GetOrCreate(ctx context.Context, name string) (*Tag, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	tag := &Tag{}
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"name": name},
		bson.D{
			{Key: "$setOnInsert", Value: bson.D{
				{Key: "name", Value: name},
				{Key: "description", Value: ""},
				{Key: "color", Value: ""},
				{Key: "questionsCount", Value: int64(0)},
				{Key: "isActive", Value: true},
				{Key: "created", Value: time.Now()},
			}},
		},
		opts).Decode(tag)
	if err != nil {
		return nil, err
	}

	return tag, nil
}

func (r *TagsRepoMongo) IncQuestionsCount(ctx context.Context, ids []interface{}, delta int64) error {
	_, err := r.collection.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": ids}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "questionsCount", Value: delta}}}})
	return err
}

func (r *TagsRepoMongo) ParseID(in string) (interface{}, error) {
	return primitive.ObjectIDFromHex(in)
}
