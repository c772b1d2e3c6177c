package handlers

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"codequest/pkg/session"
	"codequest/pkg/user"

	"github.com/golang/mock/gomock"
	"go.uber.org/zap"
)

type authMocks struct {
	sm        *session.MockSessionManager
	usersRepo *MockUsersRepo
	otp       *MockOTPStore
}

func prepareUserHandler(ctrl *gomock.Controller) (*UserHandler, *authMocks) {
	m := &authMocks{
		sm:        session.NewMockSessionManager(ctrl),
		usersRepo: NewMockUsersRepo(ctrl),
		otp:       NewMockOTPStore(ctrl),
	}

	h := &UserHandler{
		Sm:     m.sm,
		Repo:   m.usersRepo,
		Otp:    m.otp,
		Logger: zap.NewNop().Sugar(),
	}

	return h, m
}

func TestRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := prepareUserHandler(ctrl)

	m.usersRepo.EXPECT().GetByUsername("gopher").Return(nil, nil)
	m.usersRepo.EXPECT().Add(gomock.AssignableToTypeOf(&user.User{})).Return(int64(1), nil)
	m.sm.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("signed.jwt.token", nil)

	w := httptest.NewRecorder()
	r := authedRequest(http.MethodPost, "/api/auth/register", map[string]string{
		"username": "gopher",
		"email":    "gopher@example.com",
		"password": "supersecret",
	})

	h.Register(w, r)
	if w.Code != http.StatusCreated {
		t.Fatalf("wrong response code, expected %v but was %v", http.StatusCreated, w.Code)
	}

	var res AuthResponse
	resBytes, _ := ioutil.ReadAll(w.Result().Body)
	err := json.Unmarshal(resBytes, &res)
	if err != nil {
		t.Fatalf("can't get expected result, error occured: %v", err.Error())
	}

	if res.Token != "signed.jwt.token" {
		t.Errorf("test fail, expected: %v, but was: %v", "signed.jwt.token", res.Token)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := prepareUserHandler(ctrl)

	m.usersRepo.EXPECT().GetByUsername("gopher").Return(&user.User{ID: 1, Username: "gopher"}, nil)

	w := httptest.NewRecorder()
	r := authedRequest(http.MethodPost, "/api/auth/register", map[string]string{
		"username": "gopher",
		"email":    "gopher@example.com",
		"password": "supersecret",
	})

	h.Register(w, r)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("wrong response code, expected %v but was %v", http.StatusUnprocessableEntity, w.Code)
	}

	var res ErrorsResponse
	resBytes, _ := ioutil.ReadAll(w.Result().Body)
	err := json.Unmarshal(resBytes, &res)
	if err != nil {
		t.Fatalf("can't get expected result, error occured: %v", err.Error())
	}

	if len(res.Errors) != 1 || res.Errors[0].Msg != "already exists" {
		t.Errorf("test fail, unexpected errors: %+v", res.Errors)
	}
}

func TestRegisterBadEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, _ := prepareUserHandler(ctrl)

	w := httptest.NewRecorder()
	r := authedRequest(http.MethodPost, "/api/auth/register", map[string]string{
		"username": "gopher",
		"email":    "not-an-email",
		"password": "supersecret",
	})

	h.Register(w, r)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("wrong response code, expected %v but was %v", http.StatusUnprocessableEntity, w.Code)
	}
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := prepareUserHandler(ctrl)

	salt := []byte("01234567")
	dbUser := &user.User{
		ID:       1,
		Username: "gopher",
		Password: HashPass(salt, "supersecret"),
	}

	m.usersRepo.EXPECT().GetByUsername("gopher").Return(dbUser, nil)
	m.sm.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("signed.jwt.token", nil)

	w := httptest.NewRecorder()
	r := authedRequest(http.MethodPost, "/api/auth/login", map[string]string{
		"username": "gopher",
		"password": "supersecret",
	})

	h.Login(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("wrong response code, expected %v but was %v", http.StatusOK, w.Code)
	}

	var res AuthResponse
	resBytes, _ := ioutil.ReadAll(w.Result().Body)
	err := json.Unmarshal(resBytes, &res)
	if err != nil {
		t.Fatalf("can't get expected result, error occured: %v", err.Error())
	}

	if res.Token != "signed.jwt.token" {
		t.Errorf("test fail, expected: %v, but was: %v", "signed.jwt.token", res.Token)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := prepareUserHandler(ctrl)

	salt := []byte("01234567")
	dbUser := &user.User{
		ID:       1,
		Username: "gopher",
		Password: HashPass(salt, "supersecret"),
	}

	m.usersRepo.EXPECT().GetByUsername("gopher").Return(dbUser, nil)

	w := httptest.NewRecorder()
	r := authedRequest(http.MethodPost, "/api/auth/login", map[string]string{
		"username": "gopher",
		"password": "notmypassword",
	})

	h.Login(w, r)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("wrong response code, expected %v but was %v", http.StatusUnauthorized, w.Code)
	}
}

func TestLoginNoUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := prepareUserHandler(ctrl)

	m.usersRepo.EXPECT().GetByUsername("ghost").Return(nil, nil)

	w := httptest.NewRecorder()
	r := authedRequest(http.MethodPost, "/api/auth/login", map[string]string{
		"username": "ghost",
		"password": "supersecret",
	})

	h.Login(w, r)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("wrong response code, expected %v but was %v", http.StatusUnauthorized, w.Code)
	}
}

func TestMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := prepareUserHandler(ctrl)

	dbUser := &user.User{ID: feedUser.ID, Username: feedUser.Username, Language: "en"}
	m.usersRepo.EXPECT().GetByID(feedUser.ID).Return(dbUser, nil)

	w := httptest.NewRecorder()
	r := authedRequest(http.MethodGet, "/api/auth/me", nil)

	h.Me(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("wrong response code, expected %v but was %v", http.StatusOK, w.Code)
	}

	var res user.User
	resBytes, _ := ioutil.ReadAll(w.Result().Body)
	err := json.Unmarshal(resBytes, &res)
	if err != nil {
		t.Fatalf("can't get expected result, error occured: %v", err.Error())
	}

	if res.Username != dbUser.Username || len(res.Password) != 0 {
		t.Errorf("test fail, unexpected user: %+v", res)
	}
}

func TestSendOTP(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := prepareUserHandler(ctrl)

	m.otp.EXPECT().Issue(gomock.Any(), feedUser.ID, feedUser.Username, "email").Return(nil)

	w := httptest.NewRecorder()
	r := authedRequest(http.MethodPost, "/api/auth/send-otp", map[string]string{
		"type": "email",
	})

	h.SendOTP(w, r)
	if w.Code != http.StatusOK {
		t.Errorf("wrong response code, expected %v but was %v", http.StatusOK, w.Code)
	}
}

func TestSendOTPBadChannel(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, _ := prepareUserHandler(ctrl)

	w := httptest.NewRecorder()
	r := authedRequest(http.MethodPost, "/api/auth/send-otp", map[string]string{
		"type": "pigeon",
	})

	h.SendOTP(w, r)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("wrong response code, expected %v but was %v", http.StatusUnprocessableEntity, w.Code)
	}
}

func TestVerifyOTP(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := prepareUserHandler(ctrl)

	m.otp.EXPECT().Verify(gomock.Any(), feedUser.ID, "123456").Return(true, nil)
	m.usersRepo.EXPECT().SetLanguage(feedUser.ID, "ru").Return(nil)

	w := httptest.NewRecorder()
	r := authedRequest(http.MethodPost, "/api/auth/verify-otp", map[string]string{
		"otp":      "123456",
		"type":     "email",
		"language": "ru",
	})

	h.VerifyOTP(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("wrong response code, expected %v but was %v", http.StatusOK, w.Code)
	}

	res := map[string]string{}
	resBytes, _ := ioutil.ReadAll(w.Result().Body)
	err := json.Unmarshal(resBytes, &res)
	if err != nil {
		t.Fatalf("can't get expected result, error occured: %v", err.Error())
	}

	if res["language"] != "ru" {
		t.Errorf("test fail, expected: %v, but was: %v", "ru", res["language"])
	}
}

func TestVerifyOTPWrongCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := prepareUserHandler(ctrl)

	m.otp.EXPECT().Verify(gomock.Any(), feedUser.ID, "654321").Return(false, nil)

	w := httptest.NewRecorder()
	r := authedRequest(http.MethodPost, "/api/auth/verify-otp", map[string]string{
		"otp":      "654321",
		"type":     "mobile",
		"language": "ru",
	})

	h.VerifyOTP(w, r)
	if w.Code != http.StatusForbidden {
		t.Errorf("wrong response code, expected %v but was %v", http.StatusForbidden, w.Code)
	}
}

func TestVerifyOTPBadFormat(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, _ := prepareUserHandler(ctrl)

	w := httptest.NewRecorder()
	r := authedRequest(http.MethodPost, "/api/auth/verify-otp", map[string]string{
		"otp":      "12345",
		"type":     "email",
		"language": "ru",
	})

	h.VerifyOTP(w, r)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("wrong response code, expected %v but was %v", http.StatusUnprocessableEntity, w.Code)
	}
}
