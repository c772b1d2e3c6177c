package handlers

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"time"

	"codequest/pkg/comments"
	"codequest/pkg/session"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type CommentHandler struct {
	CommentsRepo CommentsRepo
	UsersRepo    UsersRepo
	Logger       *zap.SugaredLogger
}

type CommentsRepo interface {
	GetByParent(ctx context.Context, parentType string, parentID interface{}) ([]*comments.Comment, error)
	Add(context.Context, *comments.Comment) (interface{}, error)
	Delete(ctx context.Context, id interface{}, authorID int64) error

	ParseID(string) (interface{}, error)
}

type CommentResponse struct {
	ID      interface{} `json:"id"`
	Body    string      `json:"body"`
	Author  *Author     `json:"author"`
	Created time.Time   `json:"created"`
}

func mapToCommentsResponse(commentsDb []*comments.Comment, usersRepo UsersRepo) ([]*CommentResponse, error) {
	result := make([]*CommentResponse, 0, len(commentsDb))
	for _, c := range commentsDb {
		author, err := usersRepo.GetByID(c.AuthorID)
		if err != nil {
			return nil, err
		}

		authorResp, err := mapAuthor(author)
		if err != nil {
			return nil, err
		}

		mapped := &CommentResponse{
			ID:      c.ID,
			Body:    c.Body,
			Author:  authorResp,
			Created: c.Created,
		}
		result = append(result, mapped)
	}

	return result, nil
}

type CreateCommentReq struct {
	Body       *string `json:"body"`
	ParentType *string `json:"parentType"`
	ParentID   *string `json:"parentId"`
}

func (c *CreateCommentReq) validate() []*CustomError {
	body := &Validator{value: c.Body, location: "body", field: "body"}
	bodyErr := func() *CustomError {
		err := body.Required()
		if err != nil {
			return err
		}
		err = body.Empty()
		if err != nil {
			return err
		}
		return body.MaxLength(500)
	}()

	parentType := &Validator{value: c.ParentType, location: "body", field: "parentType"}
	parentTypeErr := func() *CustomError {
		err := parentType.Required()
		if err != nil {
			return err
		}
		return parentType.In(comments.ParentQuestion, comments.ParentAnswer)
	}()

	parentID := &Validator{value: c.ParentID, location: "body", field: "parentId"}
	parentIDErr := func() *CustomError {
		err := parentID.Required()
		if err != nil {
			return err
		}
		return parentID.Empty()
	}()

	return mergeErrors(bodyErr, parentTypeErr, parentIDErr)
}

func (h *CommentHandler) ListByParent(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	parentType := vars["parent_type"]
	if !comments.ValidParentType(parentType) {
		WriteResponse(w, "invalid parent type", http.StatusBadRequest)
		return
	}

	parentID, err := h.CommentsRepo.ParseID(vars["parent_id"])
	if err != nil {
		WriteResponse(w, "invalid parent id", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	commentsDb, err := h.CommentsRepo.GetByParent(ctx, parentType, parentID)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	resp, err := mapToCommentsResponse(commentsDb, h.UsersRepo)
	if err != nil {
		writeDomainError(w, h.Logger, err)
		return
	}

	writeJSON(w, h.Logger, resp, http.StatusOK)
}

func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	var req CreateCommentReq
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

	parentID, err := h.CommentsRepo.ParseID(*req.ParentID)
	if err != nil {
		WriteResponse(w, "invalid parent id", http.StatusBadRequest)
		return
	}

	sess, err := session.SessionFromContext(r.Context())
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	c := &comments.Comment{
		Body:       *req.Body,
		AuthorID:   sess.User.ID,
		ParentType: *req.ParentType,
		ParentID:   parentID,
		Created:    time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	id, err := h.CommentsRepo.Add(ctx, c)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	c.ID = id

	resp, err := mapToCommentsResponse([]*comments.Comment{c}, h.UsersRepo)
	if err != nil {
		writeDomainError(w, h.Logger, err)
		return
	}

	writeJSON(w, h.Logger, resp[0], http.StatusCreated)
}

func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := h.CommentsRepo.ParseID(mux.Vars(r)["id"])
	if err != nil {
		WriteResponse(w, "invalid comment id", http.StatusBadRequest)
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
	err = h.CommentsRepo.Delete(ctx, id, sess.User.ID)
	if err != nil {
		writeDomainError(w, h.Logger, err)
		return
	}

	WriteResponse(w, "success", http.StatusOK)
}
