package handlers

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"strconv"
	"time"

	"codequest/pkg/errs"
	"codequest/pkg/session"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const profileQuestionsLimit = 10

type ProfileHandler struct {
	UsersRepo     UsersRepo
	QuestionsRepo QuestionsRepo
	AnswersRepo   AnswersRepo
	Logger        *zap.SugaredLogger
}

type ProfileResponse struct {
	ID           int64               `json:"id"`
	Username     string              `json:"username"`
	Bio          string              `json:"bio"`
	AvatarURL    string              `json:"avatarUrl"`
	Reputation   int64               `json:"reputation"`
	FriendCount  int64               `json:"friendCount"`
	AnswersCount int64               `json:"answersCount"`
	Questions    []*QuestionResponse `json:"questions"`
}

type UpdateProfileReq struct {
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatarUrl"`
}

func (p *UpdateProfileReq) validate() []*CustomError {
	var bioErr *CustomError
	if p.Bio != nil {
		bio := &Validator{value: p.Bio, location: "body", field: "bio"}
		bioErr = bio.MaxLength(500)
	}

	var avatarErr *CustomError
	if p.AvatarURL != nil && *p.AvatarURL != "" {
		avatar := &Validator{value: p.AvatarURL, location: "body", field: "avatarUrl"}
		avatarErr = avatar.URL()
	}

	return mergeErrors(bioErr, avatarErr)
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	usr, err := h.UsersRepo.GetByUsername(username)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if usr == nil {
		WriteResponse(w, "user not found", http.StatusNotFound)
		return
	}

	friendCount, err := h.UsersRepo.FriendCount(usr.ID)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	answersCount, err := h.AnswersRepo.CountByAuthorID(ctx, usr.ID)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	questionsDb, err := h.QuestionsRepo.GetByAuthorID(ctx, usr.ID, profileQuestionsLimit)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	questionsResp := make([]*QuestionResponse, 0, len(questionsDb))
	for _, q := range questionsDb {
		questionsResp = append(questionsResp, &QuestionResponse{
			ID:           q.ID,
			Title:        q.Title,
			Author:       &Author{Username: usr.Username, ID: usr.ID, Reputation: usr.Reputation},
			Upvotes:      len(q.Upvotes),
			Downvotes:    len(q.Downvotes),
			Score:        q.Score(),
			Views:        q.Views,
			AnswersCount: q.AnswersCount,
			Created:      q.Created,
		})
	}

	resp := &ProfileResponse{
		ID:           usr.ID,
		Username:     usr.Username,
		Bio:          usr.Bio,
		AvatarURL:    usr.AvatarURL,
		Reputation:   usr.Reputation,
		FriendCount:  friendCount,
		AnswersCount: answersCount,
		Questions:    questionsResp,
	}

	writeJSON(w, h.Logger, resp, http.StatusOK)
}

func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	sess, err := session.SessionFromContext(r.Context())
	if err != nil {
		WriteResponse(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	var req UpdateProfileReq
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

	usr, err := h.UsersRepo.GetByID(sess.User.ID)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if usr == nil {
		WriteResponse(w, "user not found", http.StatusNotFound)
		return
	}

	bio := usr.Bio
	if req.Bio != nil {
		bio = *req.Bio
	}

	avatarURL := usr.AvatarURL
	if req.AvatarURL != nil {
		avatarURL = *req.AvatarURL
	}

	err = h.UsersRepo.UpdateProfile(sess.User.ID, bio, avatarURL)
	if err != nil {
		writeDomainError(w, h.Logger, err)
		return
	}

	usr.Bio = bio
	usr.AvatarURL = avatarURL
	writeJSON(w, h.Logger, usr, http.StatusOK)
}

func (h *ProfileHandler) AddFriend(w http.ResponseWriter, r *http.Request) {
	friendID, err := strconv.ParseInt(mux.Vars(r)["user_id"], 10, 0)
	if err != nil {
		WriteResponse(w, "invalid user id", http.StatusBadRequest)
		return
	}

	sess, err := session.SessionFromContext(r.Context())
	if err != nil {
		WriteResponse(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if friendID == sess.User.ID {
		writeDomainError(w, h.Logger, errs.ErrSelfFriend)
		return
	}

	err = h.UsersRepo.AddFriend(sess.User.ID, friendID)
	if err != nil {
		writeDomainError(w, h.Logger, err)
		return
	}

	friendCount, err := h.UsersRepo.FriendCount(sess.User.ID)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.Logger, map[string]int64{"friendCount": friendCount}, http.StatusOK)
}
