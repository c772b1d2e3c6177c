package answers

import (
	"context"

	"codequest/pkg/common"
	"codequest/pkg/votes"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AnswersRepoMongo struct {
	collection common.CollectionHelper
}

func NewAnswersRepoMongo(db *mongo.Database) *AnswersRepoMongo {
	return &AnswersRepoMongo{collection: &common.MongoCollection{Collection: db.Collection("answers")}}
}

// GetByQuestionID lists active answers, accepted one first, then
// newest first.
func (r *AnswersRepoMongo) GetByQuestionID(ctx context.Context, questionID interface{}) ([]*Answer, error) {
	opts := options.Find().SetSort(bson.D{{Key: "isAccepted", Value: -1}, {Key: "created", Value: -1}})

	cur, err := r.collection.Find(ctx, bson.M{"questionID": questionID, "isActive": true}, opts)
	if err != nil {
		return nil, err
	}

	defer cur.Close(ctx)

	var result []*Answer
	err = cur.All(ctx, &result)
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *AnswersRepoMongo) Add(ctx context.Context, a *Answer) (interface{}, error) {
	a.IsActive = true
	if a.Upvotes == nil {
		a.Upvotes = []votes.Record{}
	}
	if a.Downvotes == nil {
		a.Downvotes = []votes.Record{}
	}

	res, err := r.collection.InsertOne(ctx, a)
	if err != nil {
		return nil, err
	}

	return res.GetInsertedID(), nil
}

func (r *AnswersRepoMongo) ApplyVote(ctx context.Context, id interface{}, userID int64, t votes.Type) (*Answer, error) {
	err := votes.Apply(ctx, r.collection, id, userID, t)
	if err != nil {
		return nil, err
	}

	res := r.collection.FindOne(ctx, bson.M{"_id": id})
	a := &Answer{}
	err = res.Decode(a)
	if err != nil {
		return nil, err
	}

	return a, nil
}

func (r *AnswersRepoMongo) CountByAuthorID(ctx context.Context, authorID int64) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"authorID": authorID, "isActive": true})
}

func (r *AnswersRepoMongo) ParseID(in string) (interface{}, error) {
	return primitive.ObjectIDFromHex(in)
}
