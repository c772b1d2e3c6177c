package comments

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
)

var userID = int64(42)

func TestGetByParent(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCollection := common.NewMockCollectionHelper(ctrl)
	mockCursor := common.NewMockCursorHelper(ctrl)

	repo := &CommentsRepoMongo{collection: mockCollection}
	ctx := context.Background()

	parentID := primitive.NewObjectID()
	expected := []*Comment{
		{ID: primitive.NewObjectID(), Body: "works for me", AuthorID: 1, ParentType: ParentQuestion, ParentID: parentID, IsActive: true, Created: time.Now()},
	}

	expectedFilter := bson.M{"parentType": ParentQuestion, "parentID": parentID, "isActive": true}
	mockCollection.EXPECT().Find(ctx, gomock.Eq(expectedFilter), gomock.Any()).
		Return(mockCursor, nil)
	mockCursor.EXPECT().All(ctx, gomock.AssignableToTypeOf(&expected)).
		SetArg(1, expected).Return(nil)
	mockCursor.EXPECT().Close(ctx).Return(nil)

	res, err := repo.GetByParent(ctx, ParentQuestion, parentID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(res, expected) {
		t.Errorf("test fail, expected: %v, but was: %v", expected, res)
	}
}

func TestAdd(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCollection := common.NewMockCollectionHelper(ctrl)
	mockInsertResult := common.NewMockInsertOneResultHelper(ctrl)

	repo := &CommentsRepoMongo{collection: mockCollection}
	ctx := context.Background()

	c := &Comment{Body: "try errors.Is", AuthorID: userID, ParentType: ParentAnswer, ParentID: primitive.NewObjectID()}
	expectedID := primitive.NewObjectID().Hex()

	mockCollection.EXPECT().InsertOne(ctx, gomock.AssignableToTypeOf(c)).
		Return(mockInsertResult, nil)
	mockInsertResult.EXPECT().GetInsertedID().Return(expectedID)

	id, err := repo.Add(ctx, c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if id != expectedID {
		t.Errorf("test fail, expected: %v, but was: %v", expectedID, id)
	}

	if !c.IsActive || c.Created.IsZero() {
		t.Errorf("added comment not initialized: %v", c)
	}
}

func TestDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCollection := common.NewMockCollectionHelper(ctrl)
	mockUpdateResult := common.NewMockUpdateResultHelper(ctrl)

	repo := &CommentsRepoMongo{collection: mockCollection}
	ctx := context.Background()

	id := primitive.NewObjectID()
	expectedFilter := bson.M{"_id": id, "authorID": userID, "isActive": true}

	mockCollection.EXPECT().UpdateOne(ctx, gomock.Eq(expectedFilter), gomock.Any()).
		Return(mockUpdateResult, nil)
	mockUpdateResult.EXPECT().GetMatchedCount().Return(int64(1))

	err := repo.Delete(ctx, id, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCollection := common.NewMockCollectionHelper(ctrl)
	mockUpdateResult := common.NewMockUpdateResultHelper(ctrl)

	repo := &CommentsRepoMongo{collection: mockCollection}
	ctx := context.Background()

	mockCollection.EXPECT().UpdateOne(ctx, gomock.Any(), gomock.Any()).
		Return(mockUpdateResult, nil)
	mockUpdateResult.EXPECT().GetMatchedCount().Return(int64(0))

	err := repo.Delete(ctx, primitive.NewObjectID(), userID)
	if !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("expected ErrNotFound but was %v", err)
	}
}
