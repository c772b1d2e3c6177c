package questions

import (
	"context"
	"regexp"

	"codequest/pkg/common"
	"codequest/pkg/errs"
	"codequest/pkg/votes"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type QuestionsRepoMongo struct {
	collection common.CollectionHelper
}

func NewMongoClient(ctx context.Context, uri string) (*mongo.Client, error) {
	return mongo.Connect(ctx, options.Client().ApplyURI(uri))
}

func NewQuestionsRepoMongo(db *mongo.Database) *QuestionsRepoMongo {
	return &QuestionsRepoMongo{collection: &common.MongoCollection{Collection: db.Collection("questions")}}
}

func (r *QuestionsRepoMongo) GetAll(ctx context.Context, f ListFilter) ([]*Question, error) {
	opts := options.Find().SetSort(sortDoc(f.Sort))
	if f.Limit > 0 {
		opts = opts.SetLimit(f.Limit)
		if f.Page > 1 {
			opts = opts.SetSkip((f.Page - 1) * f.Limit)
		}
	}

	return r.getByFilter(ctx, listFilterDoc(f), opts)
}

func (r *QuestionsRepoMongo) Count(ctx context.Context, f ListFilter) (int64, error) {
	return r.collection.CountDocuments(ctx, listFilterDoc(f))
}

func (r *QuestionsRepoMongo) GetByAuthorID(ctx context.Context, authorID int64, limit int64) ([]*Question, error) {
	opts := options.Find().SetSort(sortDoc(SortNewest))
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}

	return r.getByFilter(ctx, bson.M{"authorID": authorID, "isActive": true}, opts)
}

// GetByID also counts the view, same round trip.
func (r *QuestionsRepoMongo) GetByID(ctx context.Context, id interface{}) (*Question, error) {
	res := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id, "isActive": true},
		bson.D{
			{Key: "$inc", Value: bson.D{{Key: "views", Value: 1}}},
		})

	q := &Question{}
	err := res.Decode(q)
	if err == mongo.ErrNoDocuments {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	q.Views++
	return q, nil
}

func (r *QuestionsRepoMongo) Add(ctx context.Context, q *Question) (interface{}, error) {
	q.IsActive = true
	if q.Upvotes == nil {
		q.Upvotes = []votes.Record{}
	}
	if q.Downvotes == nil {
		q.Downvotes = []votes.Record{}
	}

	res, err := r.collection.InsertOne(ctx, q)
	if err != nil {
		return nil, err
	}

	return res.GetInsertedID(), nil
}

// ApplyVote flips or refreshes the user's vote and returns the updated
// question.
func (r *QuestionsRepoMongo) ApplyVote(ctx context.Context, id interface{}, userID int64, t votes.Type) (*Question, error) {
	err := votes.Apply(ctx, r.collection, id, userID, t)
	if err != nil {
		return nil, err
	}

	res := r.collection.FindOne(ctx, bson.M{"_id": id})
	q := &Question{}
	err = res.Decode(q)
	if err != nil {
		return nil, err
	}

	return q, nil
}

func (r *QuestionsRepoMongo) IncAnswersCount(ctx context.Context, id interface{}, delta int64) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id, "isActive": true},
		bson.D{
			{Key: "$inc", Value: bson.D{{Key: "answersCount", Value: delta}}},
		})
	if err != nil {
		return err
	}

	if res.GetMatchedCount() == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *QuestionsRepoMongo) ParseID(in string) (interface{}, error) {
	return primitive.ObjectIDFromHex(in)
}

func (r *QuestionsRepoMongo) getByFilter(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]*Question, error) {
	cur, err := r.collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}

	defer cur.Close(ctx)

	var result []*Question
	err = cur.All(ctx, &result)
	if err != nil {
		return nil, err
	}

	return result, nil
}

func listFilterDoc(f ListFilter) bson.M {
	filter := bson.M{"isActive": true}
	if len(f.TagIDs) > 0 {
		filter["tags"] = bson.M{"$in": f.TagIDs}
	}
	if f.Search != "" {
		filter["title"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
	}

	return filter
}

func sortDoc(s Sort) bson.D {
	switch s {
	case SortOldest:
		return bson.D{{Key: "created", Value: 1}}
	case SortViews:
		return bson.D{{Key: "views", Value: -1}}
	default:
		return bson.D{{Key: "created", Value: -1}}
	}
}
