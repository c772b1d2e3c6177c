package handlers

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"codequest/pkg/errs"
	"codequest/pkg/questions"
	"codequest/pkg/user"
	"codequest/pkg/votes"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type profileMocks struct {
	usersRepo     *MockUsersRepo
	questionsRepo *MockQuestionsRepo
	answersRepo   *MockAnswersRepo
}

func prepareProfileHandler(ctrl *gomock.Controller) (*ProfileHandler, *profileMocks) {
	m := &profileMocks{
		usersRepo:     NewMockUsersRepo(ctrl),
		questionsRepo: NewMockQuestionsRepo(ctrl),
		answersRepo:   NewMockAnswersRepo(ctrl),
	}

	h := &ProfileHandler{
		UsersRepo:     m.usersRepo,
		QuestionsRepo: m.questionsRepo,
		AnswersRepo:   m.answersRepo,
		Logger:        zap.NewNop().Sugar(),
	}

	return h, m
}

func TestGetProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := prepareProfileHandler(ctrl)

	dbUser := &user.User{ID: 7, Username: "mholt", Bio: "certmagic author", AvatarURL: "https://cdn.example.com/m.png", Reputation: 256}
	questionsDb := []*questions.Question{
		{
			ID:       primitive.NewObjectID(),
			Title:    "how do contexts propagate",
			AuthorID: dbUser.ID,
			Upvotes:  []votes.Record{{User: 2, Created: time.Now()}},
			Views:    12,
			IsActive: true,
			Created:  time.Now(),
		},
	}

	m.usersRepo.EXPECT().GetByUsername(dbUser.Username).Return(dbUser, nil)
	m.usersRepo.EXPECT().FriendCount(dbUser.ID).Return(int64(3), nil)
	m.answersRepo.EXPECT().CountByAuthorID(gomock.Any(), dbUser.ID).Return(int64(8), nil)
	m.questionsRepo.EXPECT().GetByAuthorID(gomock.Any(), dbUser.ID, int64(profileQuestionsLimit)).
		Return(questionsDb, nil)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/users/"+dbUser.Username, nil)
	r = mux.SetURLVars(r, map[string]string{"username": dbUser.Username})

	h.GetProfile(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("wrong response code, expected %v but was %v", http.StatusOK, w.Code)
	}

	var res ProfileResponse
	resBytes, _ := ioutil.ReadAll(w.Result().Body)
	err := json.Unmarshal(resBytes, &res)
	if err != nil {
		t.Fatalf("can't get expected result, error occured: %v", err.Error())
	}

	if res.FriendCount != 3 || res.AnswersCount != 8 || res.Reputation != 256 || len(res.Questions) != 1 {
		t.Errorf("test fail, unexpected profile: %+v", res)
	}
}

func TestGetProfileNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := prepareProfileHandler(ctrl)

	m.usersRepo.EXPECT().GetByUsername("ghost").Return(nil, nil)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/users/ghost", nil)
	r = mux.SetURLVars(r, map[string]string{"username": "ghost"})

	h.GetProfile(w, r)
	if w.Code != http.StatusNotFound {
		t.Errorf("wrong response code, expected %v but was %v", http.StatusNotFound, w.Code)
	}
}

func TestUpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := prepareProfileHandler(ctrl)

	dbUser := &user.User{ID: feedUser.ID, Username: feedUser.Username, Bio: "old bio", AvatarURL: "https://cdn.example.com/old.png"}
	m.usersRepo.EXPECT().GetByID(feedUser.ID).Return(dbUser, nil)
	m.usersRepo.EXPECT().UpdateProfile(feedUser.ID, "new bio", "https://cdn.example.com/old.png").Return(nil)

	w := httptest.NewRecorder()
	r := authedRequest(http.MethodPut, "/api/users/profile", map[string]string{"bio": "new bio"})

	h.UpdateProfile(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("wrong response code, expected %v but was %v", http.StatusOK, w.Code)
	}

	var res user.User
	resBytes, _ := ioutil.ReadAll(w.Result().Body)
	err := json.Unmarshal(resBytes, &res)
	if err != nil {
		t.Fatalf("can't get expected result, error occured: %v", err.Error())
	}

	if res.Bio != "new bio" || res.AvatarURL != "https://cdn.example.com/old.png" {
		t.Errorf("test fail, unexpected user: %+v", res)
	}
}

func TestUpdateProfileBadAvatar(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, _ := prepareProfileHandler(ctrl)

	w := httptest.NewRecorder()
	r := authedRequest(http.MethodPut, "/api/users/profile", map[string]string{"avatarUrl": "not a url"})

	h.UpdateProfile(w, r)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("wrong response code, expected %v but was %v", http.StatusUnprocessableEntity, w.Code)
	}
}

func TestAddFriend(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := prepareProfileHandler(ctrl)

	m.usersRepo.EXPECT().AddFriend(feedUser.ID, int64(7)).Return(nil)
	m.usersRepo.EXPECT().FriendCount(feedUser.ID).Return(int64(4), nil)

	w := httptest.NewRecorder()
	r := authedRequest(http.MethodPost, "/api/users/7/friend", nil)
	r = mux.SetURLVars(r, map[string]string{"user_id": "7"})

	h.AddFriend(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("wrong response code, expected %v but was %v", http.StatusOK, w.Code)
	}

	res := map[string]int64{}
	resBytes, _ := ioutil.ReadAll(w.Result().Body)
	err := json.Unmarshal(resBytes, &res)
	if err != nil {
		t.Fatalf("can't get expected result, error occured: %v", err.Error())
	}

	if res["friendCount"] != 4 {
		t.Errorf("test fail, expected: %v, but was: %v", 4, res["friendCount"])
	}
}

func TestAddFriendSelf(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, _ := prepareProfileHandler(ctrl)

	w := httptest.NewRecorder()
	r := authedRequest(http.MethodPost, "/api/users/1/friend", nil)
	r = mux.SetURLVars(r, map[string]string{"user_id": "1"})

	h.AddFriend(w, r)
	if w.Code != http.StatusBadRequest {
		t.Errorf("wrong response code, expected %v but was %v", http.StatusBadRequest, w.Code)
	}
}

func TestAddFriendTwice(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := prepareProfileHandler(ctrl)

	m.usersRepo.EXPECT().AddFriend(feedUser.ID, int64(7)).Return(errs.ErrAlreadyFriends)

	w := httptest.NewRecorder()
	r := authedRequest(http.MethodPost, "/api/users/7/friend", nil)
	r = mux.SetURLVars(r, map[string]string{"user_id": "7"})

	h.AddFriend(w, r)
	if w.Code != http.StatusBadRequest {
		t.Errorf("wrong response code, expected %v but was %v", http.StatusBadRequest, w.Code)
	}
}

func TestAddFriendNoTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := prepareProfileHandler(ctrl)

	m.usersRepo.EXPECT().AddFriend(feedUser.ID, int64(99)).Return(errs.ErrNotFound)

	w := httptest.NewRecorder()
	r := authedRequest(http.MethodPost, "/api/users/99/friend", nil)
	r = mux.SetURLVars(r, map[string]string{"user_id": "99"})

	h.AddFriend(w, r)
	if w.Code != http.StatusNotFound {
		t.Errorf("wrong response code, expected %v but was %v", http.StatusNotFound, w.Code)
	}
}
