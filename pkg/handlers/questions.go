package handlers

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"strconv"
	"strings"
	"time"

	"codequest/pkg/comments"
	"codequest/pkg/questions"
	"codequest/pkg/session"
	"codequest/pkg/tags"
	"codequest/pkg/votes"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type QuestionHandler struct {
	QuestionsRepo QuestionsRepo
	TagsRepo      TagsRepo
	CommentsRepo  CommentsRepo
	UsersRepo     UsersRepo
	Logger        *zap.SugaredLogger
}

type QuestionsRepo interface {
	GetAll(context.Context, questions.ListFilter) ([]*questions.Question, error)
	Count(context.Context, questions.ListFilter) (int64, error)
	GetByID(context.Context, interface{}) (*questions.Question, error)
	GetByAuthorID(ctx context.Context, authorID int64, limit int64) ([]*questions.Question, error)
	Add(context.Context, *questions.Question) (interface{}, error)
	ApplyVote(ctx context.Context, id interface{}, userID int64, t votes.Type) (*questions.Question, error)
	IncAnswersCount(ctx context.Context, id interface{}, delta int64) error

	ParseID(string) (interface{}, error)
}

type QuestionResponse struct {
	ID           interface{}        `json:"id"`
	Title        string             `json:"title"`
	Body         string             `json:"body"`
	Author       *Author            `json:"author"`
	Tags         []*tags.Tag        `json:"tags"`
	Upvotes      int                `json:"upvotes"`
	Downvotes    int                `json:"downvotes"`
	Score        int                `json:"score"`
	Views        uint64             `json:"views"`
	AnswersCount int64              `json:"answersCount"`
	Comments     []*CommentResponse `json:"comments,omitempty"`
	Created      time.Time          `json:"created"`
}

type QuestionListResponse struct {
	Questions []*QuestionResponse `json:"questions"`
	Total     int64               `json:"total"`
}

type VoteReq struct {
	Type *string `json:"type"`
}

func (v *VoteReq) validate() []*CustomError {
	t := &Validator{value: v.Type, location: "body", field: "type"}
	tErr := func() *CustomError {
		err := t.Required()
		if err != nil {
			return err
		}
		return t.In(string(votes.Upvote), string(votes.Downvote))
	}()

	return mergeErrors(tErr)
}

type VoteResponse struct {
	Upvotes   int  `json:"upvotes"`
	Downvotes int  `json:"downvotes"`
	Score     *int `json:"score,omitempty"`
}

type CreateQuestionReq struct {
	Title *string  `json:"title"`
	Body  *string  `json:"body"`
	Tags  []string `json:"tags"`
}

func (q *CreateQuestionReq) validate() []*CustomError {
	title := &Validator{value: q.Title, location: "body", field: "title"}
	titleErr := func() *CustomError {
		err := title.Required()
		if err != nil {
			return err
		}
		err = title.Custom(func(value string) bool {
			return strings.TrimSpace(value) == value
		}, "cannot start or end with whitespace")
		if err != nil {
			return err
		}
		err = title.MinLength(15)
		if err != nil {
			return err
		}
		return title.MaxLength(200)
	}()

	body := &Validator{value: q.Body, location: "body", field: "body"}
	bodyErr := func() *CustomError {
		err := body.Required()
		if err != nil {
			return err
		}
		return body.MinLength(30)
	}()

	var tagsErr *CustomError
	if len(q.Tags) < 1 || len(q.Tags) > 5 {
		tagsErr = &CustomError{Location: "body", Param: "tags", Msg: "must contain between 1 and 5 tags"}
	} else {
		for _, name := range q.Tags {
			if strings.TrimSpace(name) == "" {
				tagsErr = &CustomError{Location: "body", Param: "tags", Value: name, Msg: "cannot be blank"}
				break
			}
		}
	}

	return mergeErrors(titleErr, bodyErr, tagsErr)
}

func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, badParam := h.parseListFilter(r)
	if badParam != "" {
		WriteResponse(w, "invalid "+badParam, http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	questionsDb, err := h.QuestionsRepo.GetAll(ctx, filter)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	total, err := h.QuestionsRepo.Count(ctx, filter)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	resp := &QuestionListResponse{Questions: make([]*QuestionResponse, 0, len(questionsDb)), Total: total}
	for _, q := range questionsDb {
		mapped, err := h.mapQuestion(q, false)
		if err != nil {
			writeDomainError(w, h.Logger, err)
			return
		}

		resp.Questions = append(resp.Questions, mapped)
	}

	writeJSON(w, h.Logger, resp, http.StatusOK)
}

func (h *QuestionHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := h.QuestionsRepo.ParseID(mux.Vars(r)["id"])
	if err != nil {
		WriteResponse(w, "invalid question id", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	q, err := h.QuestionsRepo.GetByID(ctx, id)
	if err != nil {
		writeDomainError(w, h.Logger, err)
		return
	}

	resp, err := h.mapQuestion(q, true)
	if err != nil {
		writeDomainError(w, h.Logger, err)
		return
	}

	writeJSON(w, h.Logger, resp, http.StatusOK)
}

func (h *QuestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	var req CreateQuestionReq
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

	tagIDs := make([]interface{}, 0, len(req.Tags))
	for _, name := range req.Tags {
		tag, err := h.TagsRepo.GetOrCreate(ctx, strings.ToLower(strings.TrimSpace(name)))
		if err != nil {
			h.Logger.Error(err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		tagIDs = append(tagIDs, tag.ID)
	}

	q := &questions.Question{
		Title:    *req.Title,
		Body:     *req.Body,
		TagIDs:   tagIDs,
		AuthorID: sess.User.ID,
		Created:  time.Now(),
	}

	id, err := h.QuestionsRepo.Add(ctx, q)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	q.ID = id

	err = h.TagsRepo.IncQuestionsCount(ctx, tagIDs, 1)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	resp, err := h.mapQuestion(q, false)
	if err != nil {
		writeDomainError(w, h.Logger, err)
		return
	}

	writeJSON(w, h.Logger, resp, http.StatusCreated)
}

func (h *QuestionHandler) Vote(w http.ResponseWriter, r *http.Request) {
	id, err := h.QuestionsRepo.ParseID(mux.Vars(r)["id"])
	if err != nil {
		WriteResponse(w, "invalid question id", http.StatusBadRequest)
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
	q, err := h.QuestionsRepo.ApplyVote(ctx, id, sess.User.ID, votes.Type(*req.Type))
	if err != nil {
		writeDomainError(w, h.Logger, err)
		return
	}

	score := q.Score()
	resp := &VoteResponse{
		Upvotes:   len(q.Upvotes),
		Downvotes: len(q.Downvotes),
		Score:     &score,
	}

	writeJSON(w, h.Logger, resp, http.StatusOK)
}

func (h *QuestionHandler) parseListFilter(r *http.Request) (questions.ListFilter, string) {
	f := questions.ListFilter{Page: 1, Limit: 20, Sort: questions.SortNewest}
	query := r.URL.Query()

	if v := query.Get("page"); v != "" {
		page, err := strconv.ParseInt(v, 10, 0)
		if err != nil || page < 1 {
			return f, "page"
		}
		f.Page = page
	}

	if v := query.Get("limit"); v != "" {
		limit, err := strconv.ParseInt(v, 10, 0)
		if err != nil || limit < 1 || limit > 100 {
			return f, "limit"
		}
		f.Limit = limit
	}

	if v := query.Get("sort"); v != "" {
		s := questions.Sort(v)
		if s != questions.SortNewest && s != questions.SortOldest && s != questions.SortViews {
			return f, "sort"
		}
		f.Sort = s
	}

	f.Search = query.Get("search")

	if v := query.Get("tags"); v != "" {
		for _, raw := range strings.Split(v, ",") {
			tagID, err := h.TagsRepo.ParseID(raw)
			if err != nil {
				return f, "tags"
			}
			f.TagIDs = append(f.TagIDs, tagID)
		}
	}

	return f, ""
}

func (h *QuestionHandler) mapQuestion(q *questions.Question, withComments bool) (*QuestionResponse, error) {
	author, err := h.UsersRepo.GetByID(q.AuthorID)
	if err != nil {
		return nil, err
	}

	authorResp, err := mapAuthor(author)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	questionTags := make([]*tags.Tag, 0, len(q.TagIDs))
	for _, tagID := range q.TagIDs {
		tag, err := h.TagsRepo.GetByID(ctx, tagID)
		if err != nil {
			return nil, err
		}

		questionTags = append(questionTags, tag)
	}

	resp := &QuestionResponse{
		ID:           q.ID,
		Title:        q.Title,
		Body:         q.Body,
		Author:       authorResp,
		Tags:         questionTags,
		Upvotes:      len(q.Upvotes),
		Downvotes:    len(q.Downvotes),
		Score:        q.Score(),
		Views:        q.Views,
		AnswersCount: q.AnswersCount,
		Created:      q.Created,
	}

	if withComments {
		questionComments, err := h.CommentsRepo.GetByParent(ctx, comments.ParentQuestion, q.ID)
		if err != nil {
			return nil, err
		}

		resp.Comments, err = mapToCommentsResponse(questionComments, h.UsersRepo)
		if err != nil {
			return nil, err
		}
	}

	return resp, nil
}
