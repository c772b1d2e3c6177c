package handlers

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"codequest/pkg/comments"
	"codequest/pkg/errs"
	"codequest/pkg/user"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type commentMocks struct {
	commentsRepo *MockCommentsRepo
	usersRepo    *MockUsersRepo
}

func prepareCommentHandler(ctrl *gomock.Controller) (*CommentHandler, *commentMocks) {
	m := &commentMocks{
		commentsRepo: NewMockCommentsRepo(ctrl),
		usersRepo:    NewMockUsersRepo(ctrl),
	}

	h := &CommentHandler{
		CommentsRepo: m.commentsRepo,
		UsersRepo:    m.usersRepo,
		Logger:       zap.NewNop().Sugar(),
	}

	return h, m
}

func TestCommentsListByParent(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := prepareCommentHandler(ctrl)

	author := &user.User{ID: 9, Username: "bradfitz"}
	parentID := primitive.NewObjectID()
	commentsDb := []*comments.Comment{
		{ID: primitive.NewObjectID(), Body: "check errgroup", AuthorID: author.ID, ParentType: comments.ParentAnswer, ParentID: parentID, IsActive: true, Created: time.Now()},
	}

	m.commentsRepo.EXPECT().ParseID(parentID.Hex()).Return(parentID, nil)
	m.commentsRepo.EXPECT().GetByParent(gomock.Any(), comments.ParentAnswer, parentID).Return(commentsDb, nil)
	m.usersRepo.EXPECT().GetByID(author.ID).Return(author, nil)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/comments/answer/"+parentID.Hex(), nil)
	r = mux.SetURLVars(r, map[string]string{"parent_type": "answer", "parent_id": parentID.Hex()})

	h.ListByParent(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("wrong response code, expected %v but was %v", http.StatusOK, w.Code)
	}

	var res []*CommentResponse
	resBytes, _ := ioutil.ReadAll(w.Result().Body)
	err := json.Unmarshal(resBytes, &res)
	if err != nil {
		t.Fatalf("can't get expected result, error occured: %v", err.Error())
	}

	if len(res) != 1 || res[0].Author.Username != author.Username {
		t.Errorf("test fail, unexpected comments: %+v", res)
	}
}

func TestCommentsListBadParentType(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, _ := prepareCommentHandler(ctrl)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/comments/post/abc", nil)
	r = mux.SetURLVars(r, map[string]string{"parent_type": "post", "parent_id": "abc"})

	h.ListByParent(w, r)
	if w.Code != http.StatusBadRequest {
		t.Errorf("wrong response code, expected %v but was %v", http.StatusBadRequest, w.Code)
	}
}

func TestCommentCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := prepareCommentHandler(ctrl)

	parentID := primitive.NewObjectID()
	commentID := primitive.NewObjectID()

	m.commentsRepo.EXPECT().ParseID(parentID.Hex()).Return(parentID, nil)
	m.commentsRepo.EXPECT().Add(gomock.Any(), gomock.AssignableToTypeOf(&comments.Comment{})).Return(commentID, nil)
	m.usersRepo.EXPECT().GetByID(feedUser.ID).Return(feedUser, nil)

	w := httptest.NewRecorder()
	r := authedRequest(http.MethodPost, "/api/comments", map[string]string{
		"body":       "have you tried pprof",
		"parentType": "question",
		"parentId":   parentID.Hex(),
	})

	h.Create(w, r)
	if w.Code != http.StatusCreated {
		t.Fatalf("wrong response code, expected %v but was %v", http.StatusCreated, w.Code)
	}

	var res CommentResponse
	resBytes, _ := ioutil.ReadAll(w.Result().Body)
	err := json.Unmarshal(resBytes, &res)
	if err != nil {
		t.Fatalf("can't get expected result, error occured: %v", err.Error())
	}

	if res.Body != "have you tried pprof" || res.Author.ID != feedUser.ID {
		t.Errorf("test fail, unexpected comment: %+v", res)
	}
}

func TestCommentCreateBadParentType(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, _ := prepareCommentHandler(ctrl)

	w := httptest.NewRecorder()
	r := authedRequest(http.MethodPost, "/api/comments", map[string]string{
		"body":       "have you tried pprof",
		"parentType": "post",
		"parentId":   "abc",
	})

	h.Create(w, r)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("wrong response code, expected %v but was %v", http.StatusUnprocessableEntity, w.Code)
	}
}

func TestCommentDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := prepareCommentHandler(ctrl)

	commentID := primitive.NewObjectID()
	m.commentsRepo.EXPECT().ParseID(commentID.Hex()).Return(commentID, nil)
	m.commentsRepo.EXPECT().Delete(gomock.Any(), commentID, feedUser.ID).Return(nil)

	w := httptest.NewRecorder()
	r := authedRequest(http.MethodDelete, "/api/comments/"+commentID.Hex(), nil)
	r = mux.SetURLVars(r, map[string]string{"id": commentID.Hex()})

	h.Delete(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("wrong response code, expected %v but was %v", http.StatusOK, w.Code)
	}

	res := map[string]string{}
	resBytes, _ := ioutil.ReadAll(w.Result().Body)
	err := json.Unmarshal(resBytes, &res)
	if err != nil {
		t.Fatalf("can't get expected result, error occured: %v", err.Error())
	}

	if res["message"] != "success" {
		t.Errorf("test fail, expected: %v, but was: %v", "success", res["message"])
	}
}

func TestCommentDeleteForeign(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := prepareCommentHandler(ctrl)

	commentID := primitive.NewObjectID()
	m.commentsRepo.EXPECT().ParseID(commentID.Hex()).Return(commentID, nil)
	m.commentsRepo.EXPECT().Delete(gomock.Any(), commentID, feedUser.ID).Return(errs.ErrNotFound)

	w := httptest.NewRecorder()
	r := authedRequest(http.MethodDelete, "/api/comments/"+commentID.Hex(), nil)
	r = mux.SetURLVars(r, map[string]string{"id": commentID.Hex()})

	h.Delete(w, r)
	if w.Code != http.StatusNotFound {
		t.Errorf("wrong response code, expected %v but was %v", http.StatusNotFound, w.Code)
	}
}
