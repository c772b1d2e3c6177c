package handlers

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"codequest/pkg/otp"
	"codequest/pkg/session"
	"codequest/pkg/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/argon2"
)

type UserHandler struct {
	Sm     session.SessionManager
	Repo   UsersRepo
	Otp    OTPStore
	Logger *zap.SugaredLogger
}

type UsersRepo interface {
	GetByID(id int64) (*user.User, error)
	GetByUsername(username string) (*user.User, error)
	Add(user *user.User) (int64, error)
	UpdateProfile(id int64, bio, avatarURL string) error
	SetLanguage(id int64, language string) error
	FriendIDs(id int64) ([]int64, error)
	FriendCount(id int64) (int64, error)
	AddFriend(userID, friendID int64) error
}

type OTPStore interface {
	Issue(ctx context.Context, userID int64, username, channel string) error
	Verify(ctx context.Context, userID int64, code string) (bool, error)
}

type AuthReq struct {
	Password *string `json:"password"`
	Username *string `json:"username"`
	Email    *string `json:"email"`
}

type AuthResponse struct {
	Token string `json:"token"`
}

func (r *AuthReq) validate(register bool) []*CustomError {
	usr := &Validator{value: r.Username, location: "body", field: "username"}
	usrErr := func() *CustomError {
		err := usr.Required()
		if err != nil {
			return err
		}
		err = usr.Empty()
		if err != nil {
			return err
		}
		err = usr.MaxLength(32)
		if err != nil {
			return err
		}
		err = usr.Custom(func(value string) bool {
			return strings.TrimSpace(value) == value
		}, "cannot start or end with whitespace")

		if err != nil {
			return err
		}

		return usr.Matches("^[a-zA-Z0-9_-]+$")
	}()

	pwd := &Validator{value: r.Password, location: "body", field: "password"}
	pwdErr := func() *CustomError {
		err := pwd.Required()
		if err != nil {
			return err
		}
		err = pwd.Empty()
		if err != nil {
			return err
		}
		err = pwd.MinLength(8)
		if err != nil {
			return err
		}
		return pwd.MaxLength(72)
	}()

	var emailErr *CustomError
	if register {
		email := &Validator{value: r.Email, location: "body", field: "email"}
		emailErr = func() *CustomError {
			err := email.Required()
			if err != nil {
				return err
			}
			err = email.Empty()
			if err != nil {
				return err
			}
			return email.Matches(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
		}()
	}

	return mergeErrors(usrErr, pwdErr, emailErr)
}

func (u *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		u.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	var authReq AuthReq
	err = json.Unmarshal(body, &authReq)
	if err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	validationErrors := authReq.validate(false)
	if len(validationErrors) > 0 {
		writeErrorsResponse(w, validationErrors, http.StatusUnprocessableEntity)
		return
	}

	usr, err := u.Repo.GetByUsername(*authReq.Username)
	if err != nil {
		u.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if usr == nil {
		WriteResponse(w, "user not found", http.StatusUnauthorized)
		return
	}

	if !checkPass(usr.Password, *authReq.Password) {
		WriteResponse(w, "invalid password", http.StatusUnauthorized)
		return
	}

	u.writeAuthResponse(w, usr, http.StatusOK)
}

func (u *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		u.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	var authReq AuthReq
	err = json.Unmarshal(body, &authReq)
	if err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	validationErrors := authReq.validate(true)
	if len(validationErrors) > 0 {
		writeErrorsResponse(w, validationErrors, http.StatusUnprocessableEntity)
		return
	}

	existUser, err := u.Repo.GetByUsername(*authReq.Username)
	if err != nil {
		u.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if existUser != nil {
		validationError := &CustomError{Location: "body", Param: "username", Value: *authReq.Username, Msg: "already exists"}
		writeErrorsResponse(w, []*CustomError{validationError}, http.StatusUnprocessableEntity)
		return
	}

	salt := make([]byte, 8)
	rand.Read(salt)

	passHash := HashPass(salt, *authReq.Password)

	usr := &user.User{
		Username: *authReq.Username,
		Email:    *authReq.Email,
		Password: passHash,
		Language: "en",
	}

	id, err := u.Repo.Add(usr)
	if err != nil {
		u.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	usr.ID = id
	u.writeAuthResponse(w, usr, http.StatusCreated)
}

func (u *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	sess, err := session.SessionFromContext(r.Context())
	if err != nil {
		WriteResponse(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	usr, err := u.Repo.GetByID(sess.User.ID)
	if err != nil {
		u.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if usr == nil {
		WriteResponse(w, "user not found", http.StatusNotFound)
		return
	}

	writeJSON(w, u.Logger, usr, http.StatusOK)
}

type SendOTPReq struct {
	Type *string `json:"type"`
}

func (r *SendOTPReq) validate() []*CustomError {
	channel := &Validator{value: r.Type, location: "body", field: "type"}
	channelErr := func() *CustomError {
		err := channel.Required()
		if err != nil {
			return err
		}
		return channel.In(otp.ChannelEmail, otp.ChannelMobile)
	}()

	return mergeErrors(channelErr)
}

// SendOTP issues a one-time code for a pending account change over the
// channel the client picked.
func (u *UserHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	sess, err := session.SessionFromContext(r.Context())
	if err != nil {
		WriteResponse(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		u.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	var req SendOTPReq
	err = json.Unmarshal(body, &req)
	if err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	validationErrors := req.validate()
	if len(validationErrors) > 0 {
		writeErrorsResponse(w, validationErrors, http.StatusUnprocessableEntity)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err = u.Otp.Issue(ctx, sess.User.ID, sess.User.Username, *req.Type)
	if err != nil {
		u.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	WriteResponse(w, "code sent", http.StatusOK)
}

type VerifyOTPReq struct {
	Otp      *string `json:"otp"`
	Type     *string `json:"type"`
	Language *string `json:"language"`
}

func (r *VerifyOTPReq) validate() []*CustomError {
	code := &Validator{value: r.Otp, location: "body", field: "otp"}
	codeErr := func() *CustomError {
		err := code.Required()
		if err != nil {
			return err
		}
		return code.Matches("^[0-9]{6}$")
	}()

	channel := &Validator{value: r.Type, location: "body", field: "type"}
	channelErr := func() *CustomError {
		err := channel.Required()
		if err != nil {
			return err
		}
		return channel.In(otp.ChannelEmail, otp.ChannelMobile)
	}()

	lang := &Validator{value: r.Language, location: "body", field: "language"}
	langErr := func() *CustomError {
		err := lang.Required()
		if err != nil {
			return err
		}
		err = lang.Empty()
		if err != nil {
			return err
		}
		return lang.MaxLength(8)
	}()

	return mergeErrors(codeErr, channelErr, langErr)
}

// VerifyOTP checks the code and applies the language change it guards.
func (u *UserHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	sess, err := session.SessionFromContext(r.Context())
	if err != nil {
		WriteResponse(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		u.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	var req VerifyOTPReq
	err = json.Unmarshal(body, &req)
	if err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	validationErrors := req.validate()
	if len(validationErrors) > 0 {
		writeErrorsResponse(w, validationErrors, http.StatusUnprocessableEntity)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	ok, err := u.Otp.Verify(ctx, sess.User.ID, *req.Otp)
	if err != nil {
		u.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if !ok {
		WriteResponse(w, "invalid or expired code", http.StatusForbidden)
		return
	}

	err = u.Repo.SetLanguage(sess.User.ID, *req.Language)
	if err != nil {
		u.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, u.Logger, map[string]string{"language": *req.Language}, http.StatusOK)
}

func HashPass(salt []byte, plainPassword string) []byte {
	hashedPass := argon2.IDKey([]byte(plainPassword), []byte(salt), 1, 64*1024, 4, 32)
	return append(salt, hashedPass...)
}

func checkPass(passHash []byte, plainPassword string) bool {
	if len(passHash) < 8 {
		return false
	}

	salt := passHash[0:8]
	newSalt := make([]byte, len(salt))
	copy(newSalt, salt)
	usersPassHash := HashPass(newSalt, plainPassword)
	return bytes.Equal(usersPassHash, passHash)
}

func (u *UserHandler) writeAuthResponse(w http.ResponseWriter, usr *user.User, status int) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	sessID := uuid.New().String()
	expiresAt := time.Now().Add(2 * time.Hour).Unix()
	token, err := u.Sm.Create(ctx, w, &session.User{ID: usr.ID, Username: usr.Username}, sessID, expiresAt)
	if err != nil {
		u.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, u.Logger, &AuthResponse{Token: token}, status)
}
