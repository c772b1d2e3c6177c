package tags

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"codequest/pkg/common"
	"codequest/pkg/errs"

	gomock "github.com/golang/mock/gomock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestGetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCollection := common.NewMockCollectionHelper(ctrl)
	mockCursor := common.NewMockCursorHelper(ctrl)

	repo := &TagsRepoMongo{collection: mockCollection}
	ctx := context.Background()

	expected := []*Tag{
		{ID: primitive.NewObjectID(), Name: "golang", QuestionsCount: 12, IsActive: true, Created: time.Now()},
		{ID: primitive.NewObjectID(), Name: "mongodb", QuestionsCount: 4, IsActive: true, Created: time.Now()},
	}

	mockCollection.EXPECT().Find(ctx, gomock.Eq(bson.M{"isActive": true}), gomock.Any()).
		Return(mockCursor, nil)
	mockCursor.EXPECT().All(ctx, gomock.AssignableToTypeOf(&expected)).
		SetArg(1, expected).Return(nil)
	mockCursor.EXPECT().Close(ctx).Return(nil)

	res, err := repo.GetAll(ctx, "", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(res, expected) {
		t.Errorf("test fail, expected: %v, but was: %v", expected, res)
	}
}

func TestGetAllSearch(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCollection := common.NewMockCollectionHelper(ctrl)
	mockCursor := common.NewMockCursorHelper(ctrl)

	repo := &TagsRepoMongo{collection: mockCollection}
	ctx := context.Background()

	expected := []*Tag{
		{ID: primitive.NewObjectID(), Name: "golang", IsActive: true},
	}

	expectedFilter := bson.M{
		"isActive": true,
		"name":     primitive.Regex{Pattern: "go", Options: "i"},
	}
	mockCollection.EXPECT().Find(ctx, gomock.Eq(expectedFilter), gomock.Any()).
		Return(mockCursor, nil)
	mockCursor.EXPECT().All(ctx, gomock.AssignableToTypeOf(&expected)).
		SetArg(1, expected).Return(nil)
	mockCursor.EXPECT().Close(ctx).Return(nil)

	res, err := repo.GetAll(ctx, "go", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(res, expected) {
		t.Errorf("test fail, expected: %v, but was: %v", expected, res)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCollection := common.NewMockCollectionHelper(ctrl)
	mockSingleResult := common.NewMockSingleResultHelper(ctrl)

	repo := &TagsRepoMongo{collection: mockCollection}
	ctx := context.Background()

	id := primitive.NewObjectID()
	mockCollection.EXPECT().FindOne(ctx, gomock.Eq(bson.M{"_id": id, "isActive": true})).
		Return(mockSingleResult)
	mockSingleResult.EXPECT().Decode(gomock.Any()).Return(mongo.ErrNoDocuments)

	_, err := repo.GetByID(ctx, id)
	if !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("expected ErrNotFound but was %v", err)
	}
}

func TestGetOrCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCollection := common.NewMockCollectionHelper(ctrl)
	mockSingleResult := common.NewMockSingleResultHelper(ctrl)

	repo := &TagsRepoMongo{collection: mockCollection}
	ctx := context.Background()

	expected := Tag{ID: primitive.NewObjectID(), Name: "golang", IsActive: true, Created: time.Now()}

	mockCollection.EXPECT().
		FindOneAndUpdate(ctx, gomock.Eq(bson.M{"name": "golang"}), gomock.Any(), gomock.Any()).
		Return(mockSingleResult)
	mockSingleResult.EXPECT().Decode(gomock.AssignableToTypeOf(&Tag{})).
		SetArg(0, expected).Return(nil)

	res, err := repo.GetOrCreate(ctx, "golang")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(res, &expected) {
		t.Errorf("test fail, expected: %v, but was: %v", &expected, res)
	}
}

func TestIncQuestionsCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCollection := common.NewMockCollectionHelper(ctrl)
	mockUpdateResult := common.NewMockUpdateResultHelper(ctrl)

	repo := &TagsRepoMongo{collection: mockCollection}
	ctx := context.Background()

	ids := []interface{}{primitive.NewObjectID(), primitive.NewObjectID()}
	expectedFilter := bson.M{"_id": bson.M{"$in": ids}}
	expectedUpdate := bson.D{{Key: "$inc", Value: bson.D{{Key: "questionsCount", Value: int64(1)}}}}

	mockCollection.EXPECT().UpdateMany(ctx, gomock.Eq(expectedFilter), gomock.Eq(expectedUpdate)).
		Return(mockUpdateResult, nil)

	err := repo.IncQuestionsCount(ctx, ids, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	storeErr := errors.New("no connection")
	mockCollection.EXPECT().UpdateMany(ctx, gomock.Any(), gomock.Any()).
		Return(nil, storeErr)

	err = repo.IncQuestionsCount(ctx, ids, 1)
	if !errors.Is(err, storeErr) {
		t.Errorf("expected %v but was %v", storeErr, err)
	}
}
