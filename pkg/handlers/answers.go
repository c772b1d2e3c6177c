package handlers

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"time"

	"codequest/pkg/answers"
	"codequest/pkg/session"
	"codequest/pkg/votes"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type AnswerHandler struct {
	AnswersRepo   AnswersRepo
	QuestionsRepo QuestionsRepo
	UsersRepo     UsersRepo
	Logger        *zap.SugaredLogger
}

type AnswersRepo interface {
	GetByQuestionID(ctx context.Context, questionID interface{}) ([]*answers.Answer, error)
	Add(context.Context, *answers.Answer) (interface{}, error)
	ApplyVote(ctx context.Context, id interface{}, userID int64, t votes.Type) (*answers.Answer, error)
	CountByAuthorID(ctx context.Context, authorID int64) (int64, error)

	ParseID(string) (interface{}, error)
}

type AnswerResponse struct {
	ID         interface{} `json:"id"`
	Body       string      `json:"body"`
	QuestionID interface{} `json:"questionId"`
	Author     *Author     `json:"author"`
	Upvotes    int         `json:"upvotes"`
	Downvotes  int         `json:"downvotes"`
	IsAccepted bool        `json:"isAccepted"`
	Created    time.Time   `json:"created"`
}

type CreateAnswerReq struct {
	Body       *string `json:"body"`
	QuestionID *string `json:"questionId"`
}

func (a *CreateAnswerReq) validate() []*CustomError {
	body := &Validator{value: a.Body, location: "body", field: "body"}
	bodyErr := func() *CustomError {
		err := body.Required()
		if err != nil {
			return err
		}
		return body.MinLength(10)
	}()

	questionID := &Validator{value: a.QuestionID, location: "body", field: "questionId"}
	questionIDErr := func() *CustomError {
		err := questionID.Required()
		if err != nil {
			return err
		}
		return questionID.Empty()
	}()

	return mergeErrors(bodyErr, questionIDErr)
}

func (h *AnswerHandler) ListByQuestion(w http.ResponseWriter, r *http.Request) {
	questionID, err := h.AnswersRepo.ParseID(mux.Vars(r)["question_id"])
	if err != nil {
		WriteResponse(w, "invalid question id", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	answersDb, err := h.AnswersRepo.GetByQuestionID(ctx, questionID)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	resp := make([]*AnswerResponse, 0, len(answersDb))
	for _, a := range answersDb {
		mapped, err := h.mapAnswer(a)
		if err != nil {
			writeDomainError(w, h.Logger, err)
			return
		}

		resp = append(resp, mapped)
	}

	writeJSON(w, h.Logger, resp, http.StatusOK)
}

func (h *AnswerHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	var req CreateAnswerReq
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

	questionID, err := h.AnswersRepo.ParseID(*req.QuestionID)
	if err != nil {
		WriteResponse(w, "invalid question id", http.StatusBadRequest)
		return
	}

	sess, err := session.SessionFromContext(r.Context())
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// answering bumps the question's counter, a dead question rejects it
	err = h.QuestionsRepo.IncAnswersCount(ctx, questionID, 1)
	if err != nil {
		writeDomainError(w, h.Logger, err)
		return
	}

	a := &answers.Answer{
		Body:       *req.Body,
		QuestionID: questionID,
		AuthorID:   sess.User.ID,
		Created:    time.Now(),
	}

	id, err := h.AnswersRepo.Add(ctx, a)
	if err != nil {
		if incErr := h.QuestionsRepo.IncAnswersCount(ctx, questionID, -1); incErr != nil {
			h.Logger.Error(incErr.Error())
		}
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	a.ID = id

	resp, err := h.mapAnswer(a)
	if err != nil {
		writeDomainError(w, h.Logger, err)
		return
	}

	writeJSON(w, h.Logger, resp, http.StatusCreated)
}

func (h *AnswerHandler) Vote(w http.ResponseWriter, r *http.Request) {
	id, err := h.AnswersRepo.ParseID(mux.Vars(r)["id"])
	if err != nil {
		WriteResponse(w, "invalid answer id", http.StatusBadRequest)
		return
	}

	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	var req VoteReq
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

	sess, err := session.SessionFromContext(r.Context())
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	a, err := h.AnswersRepo.ApplyVote(ctx, id, sess.User.ID, votes.Type(*req.Type))
	if err != nil {
		writeDomainError(w, h.Logger, err)
		return
	}

	resp := &VoteResponse{
		Upvotes:   len(a.Upvotes),
		Downvotes: len(a.Downvotes),
	}

	writeJSON(w, h.Logger, resp, http.StatusOK)
}

func (h *AnswerHandler) mapAnswer(a *answers.Answer) (*AnswerResponse, error) {
	author, err := h.UsersRepo.GetByID(a.AuthorID)
	if err != nil {
		return nil, err
	}

	authorResp, err := mapAuthor(author)
	if err != nil {
		return nil, err
	}

	return &AnswerResponse{
		ID:         a.ID,
		Body:       a.Body,
		QuestionID: a.QuestionID,
		Author:     authorResp,
		Upvotes:    len(a.Upvotes),
		Downvotes:  len(a.Downvotes),
		IsAccepted: a.IsAccepted,
		Created:    a.Created,
	}, nil
}
