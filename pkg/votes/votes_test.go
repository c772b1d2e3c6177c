package votes

import (
	"context"
	"errors"
	"testing"
	"time"

	"codequest/pkg/common"
	"codequest/pkg/errs"

	gomock "github.com/golang/mock/gomock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTypeField(t *testing.T) {
	if Upvote.Field() != "upvotes" || Downvote.Field() != "downvotes" {
		t.Errorf("wrong field mapping: %v, %v", Upvote.Field(), Downvote.Field())
	}

	if !Upvote.Valid() || !Downvote.Valid() || Type("sideways").Valid() {
		t.Errorf("wrong type validity")
	}
}

func TestContains(t *testing.T) {
	records := []Record{{User: 1, Created: time.Now()}, {User: 7, Created: time.Now()}}

	if !Contains(records, 7) {
		t.Errorf("expected user 7 in records")
	}

	if Contains(records, 2) {
		t.Errorf("did not expect user 2 in records")
	}
}

type applyCase struct {
	name        string
	voteType    Type
	matched     int64
	clearErr    error
	pushErr     error
	expectedErr error
}

var applyCases = []applyCase{
	{name: "UpvoteHappyCase", voteType: Upvote, matched: 1},
	{name: "DownvoteHappyCase", voteType: Downvote, matched: 1},
	{name: "NotFoundExpected", voteType: Upvote, matched: 0, expectedErr: errs.ErrNotFound},
	{name: "ClearErrorExpected", voteType: Upvote, clearErr: errors.New("error while calling updateOne")},
	{name: "PushErrorExpected", voteType: Downvote, matched: 1, pushErr: errors.New("error while calling updateOne")},
}

func TestApply(t *testing.T) {
	userID := int64(42)

	for i, c := range applyCases {
		ctrl := gomock.NewController(t)
		mockCollection := common.NewMockCollectionHelper(ctrl)
		mockUpdateResult := common.NewMockUpdateResultHelper(ctrl)

		ctx := context.Background()
		id := primitive.NewObjectID()

		mockCollection.EXPECT().
			UpdateOne(ctx, gomock.Eq(bson.M{"_id": id, "isActive": true}), gomock.Eq(ClearUpdate(userID))).
			Return(mockUpdateResult, c.clearErr)

		if c.clearErr == nil {
			mockUpdateResult.EXPECT().GetMatchedCount().Return(c.matched)
		}

		if c.clearErr == nil && c.matched > 0 {
			mockCollection.EXPECT().
				UpdateOne(ctx, gomock.Eq(bson.M{"_id": id}), gomock.AssignableToTypeOf(bson.D{})).
				Return(mockUpdateResult, c.pushErr)
		}

		err := Apply(ctx, mockCollection, id, userID, c.voteType)

		switch {
		case c.clearErr != nil:
			if err != c.clearErr {
				t.Errorf("test #%d %s fail, expected error: %v, but was %v", i, c.name, c.clearErr, err)
			}
		case c.pushErr != nil:
			if err != c.pushErr {
				t.Errorf("test #%d %s fail, expected error: %v, but was %v", i, c.name, c.pushErr, err)
			}
		case c.expectedErr != nil:
			if !errors.Is(err, c.expectedErr) {
				t.Errorf("test #%d %s fail, expected error: %v, but was %v", i, c.name, c.expectedErr, err)
			}
		default:
			if err != nil {
				t.Errorf("test #%d %s fail, unexpected error: %v", i, c.name, err)
			}
		}
	}
}
