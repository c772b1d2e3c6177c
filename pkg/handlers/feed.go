package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io/ioutil"
	"net/http"
	"strconv"
	"time"

	"codequest/pkg/errs"
	"codequest/pkg/feed"
	"codequest/pkg/session"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type FeedHandler struct {
	FeedRepo  FeedRepo
	QuotaRepo QuotaRepo
	UsersRepo UsersRepo
	Logger    *zap.SugaredLogger
}

type FeedRepo interface {
	GetByAuthorIDs(ctx context.Context, authorIDs []int64, page, limit int64) ([]*feed.Post, error)
	Add(context.Context, *feed.Post) (interface{}, error)
	Delete(ctx context.Context, id interface{}, authorID int64) error
	CountByAuthorSince(ctx context.Context, authorID int64, since time.Time) (int64, error)
	ToggleLike(ctx context.Context, id interface{}, userID int64) (*feed.Post, bool, error)

	ParseID(string) (interface{}, error)
}

type QuotaRepo interface {
	Reserve(ctx context.Context, userID int64, day string, max int) error
	Release(ctx context.Context, userID int64, day string) error
}

type PostResponse struct {
	ID        interface{}    `json:"id"`
	Author    *Author        `json:"author"`
	Caption   string         `json:"caption,omitempty"`
	MediaURL  string         `json:"mediaUrl,omitempty"`
	MediaType feed.MediaType `json:"mediaType,omitempty"`
	Likes     int            `json:"likes"`
	Created   time.Time      `json:"created"`
}

type QuotaResponse struct {
	Allowed bool  `json:"allowed"`
	Max     int   `json:"max"`
	Current int64 `json:"current"`
}

type CreatePostReq struct {
	Caption   *string `json:"caption"`
	MediaURL  *string `json:"mediaUrl"`
	MediaType *string `json:"mediaType"`
}

func (p *CreatePostReq) validate() []*CustomError {
	if p.Caption == nil && p.MediaURL == nil {
		return []*CustomError{{Location: "body", Param: "caption", Msg: "caption or mediaUrl is required"}}
	}

	var captionErr *CustomError
	if p.Caption != nil {
		caption := &Validator{value: p.Caption, location: "body", field: "caption"}
		captionErr = caption.MaxLength(1000)
	}

	var mediaErr *CustomError
	if p.MediaURL != nil {
		mediaURL := &Validator{value: p.MediaURL, location: "body", field: "mediaUrl"}
		mediaErr = func() *CustomError {
			err := mediaURL.URL()
			if err != nil {
				return err
			}

			mediaType := &Validator{value: p.MediaType, location: "body", field: "mediaType"}
			err = mediaType.Required()
			if err != nil {
				return err
			}
			return mediaType.In(string(feed.Image), string(feed.Video))
		}()
	} else if p.MediaType != nil {
		mediaErr = &CustomError{Location: "body", Param: "mediaType", Value: *p.MediaType,
			Msg: "requires mediaUrl"}
	}

	return mergeErrors(captionErr, mediaErr)
}

func (h *FeedHandler) List(w http.ResponseWriter, r *http.Request) {
	sess, err := session.SessionFromContext(r.Context())
	if err != nil {
		WriteResponse(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	page, limit, badParam := parsePaging(r)
	if badParam != "" {
		WriteResponse(w, "invalid "+badParam, http.StatusBadRequest)
		return
	}

	friendIDs, err := h.UsersRepo.FriendIDs(sess.User.ID)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	authorIDs := append(friendIDs, sess.User.ID)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	postsDb, err := h.FeedRepo.GetByAuthorIDs(ctx, authorIDs, page, limit)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	resp := make([]*PostResponse, 0, len(postsDb))
	for _, p := range postsDb {
		mapped, err := h.mapPost(p)
		if err != nil {
			writeDomainError(w, h.Logger, err)
			return
		}

		resp = append(resp, mapped)
	}

	writeJSON(w, h.Logger, resp, http.StatusOK)
}

func (h *FeedHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	var req CreatePostReq
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

	now := time.Now()
	max, err := h.maxDailyPosts(sess.User.ID)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if max != feed.Unlimited {
		err = h.reserveSlot(ctx, sess.User.ID, now, max)
		if err != nil {
			writeDomainError(w, h.Logger, err)
			return
		}
	}

	p := &feed.Post{
		AuthorID: sess.User.ID,
		Created:  now,
	}
	if req.Caption != nil {
		p.Caption = *req.Caption
	}
	if req.MediaURL != nil {
		p.MediaURL = *req.MediaURL
		p.MediaType = feed.MediaType(*req.MediaType)
	}

	id, err := h.FeedRepo.Add(ctx, p)
	if err != nil {
		if max != feed.Unlimited {
			if relErr := h.QuotaRepo.Release(ctx, sess.User.ID, feed.DayKey(now)); relErr != nil {
				h.Logger.Error(relErr.Error())
			}
		}
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	p.ID = id

	resp, err := h.mapPost(p)
	if err != nil {
		writeDomainError(w, h.Logger, err)
		return
	}

	writeJSON(w, h.Logger, resp, http.StatusCreated)
}

func (h *FeedHandler) Like(w http.ResponseWriter, r *http.Request) {
	id, err := h.FeedRepo.ParseID(mux.Vars(r)["id"])
	if err != nil {
		WriteResponse(w, "invalid post id", http.StatusBadRequest)
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
	p, liked, err := h.FeedRepo.ToggleLike(ctx, id, sess.User.ID)
	if err != nil {
		writeDomainError(w, h.Logger, err)
		return
	}

	writeJSON(w, h.Logger, map[string]interface{}{
		"likes": len(p.Likes),
		"liked": liked,
	}, http.StatusOK)
}

func (h *FeedHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := h.FeedRepo.ParseID(mux.Vars(r)["id"])
	if err != nil {
		WriteResponse(w, "invalid post id", http.StatusBadRequest)
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
	err = h.FeedRepo.Delete(ctx, id, sess.User.ID)
	if err != nil {
		writeDomainError(w, h.Logger, err)
		return
	}

	WriteResponse(w, "success", http.StatusOK)
}

// Quota reports how many posts the user has left today.
func (h *FeedHandler) Quota(w http.ResponseWriter, r *http.Request) {
	sess, err := session.SessionFromContext(r.Context())
	if err != nil {
		WriteResponse(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	max, err := h.maxDailyPosts(sess.User.ID)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	current, err := h.FeedRepo.CountByAuthorSince(ctx, sess.User.ID, feed.StartOfDay(time.Now()))
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	resp := &QuotaResponse{
		Allowed: max == feed.Unlimited || current < int64(max),
		Max:     max,
		Current: current,
	}

	writeJSON(w, h.Logger, resp, http.StatusOK)
}

func (h *FeedHandler) maxDailyPosts(userID int64) (int, error) {
	friendCount, err := h.UsersRepo.FriendCount(userID)
	if err != nil {
		return 0, err
	}

	return feed.MaxDailyPosts(int(friendCount)), nil
}

// reserveSlot converts a full reservation into the quota error the
// client sees, with the live count attached.
func (h *FeedHandler) reserveSlot(ctx context.Context, userID int64, now time.Time, max int) error {
	if max == 0 {
		return &errs.QuotaExceededError{Limit: 0, Current: 0}
	}

	err := h.QuotaRepo.Reserve(ctx, userID, feed.DayKey(now), max)
	if errors.Is(err, feed.ErrQuotaFull) {
		current, countErr := h.FeedRepo.CountByAuthorSince(ctx, userID, feed.StartOfDay(now))
		if countErr != nil {
			current = int64(max)
		}

		return &errs.QuotaExceededError{Limit: max, Current: int(current)}
	}

	return err
}

func (h *FeedHandler) mapPost(p *feed.Post) (*PostResponse, error) {
	author, err := h.UsersRepo.GetByID(p.AuthorID)
	if err != nil {
		return nil, err
	}

	authorResp, err := mapAuthor(author)
	if err != nil {
		return nil, err
	}

	return &PostResponse{
		ID:        p.ID,
		Author:    authorResp,
		Caption:   p.Caption,
		MediaURL:  p.MediaURL,
		MediaType: p.MediaType,
		Likes:     len(p.Likes),
		Created:   p.Created,
	}, nil
}

func parsePaging(r *http.Request) (page, limit int64, badParam string) {
	page, limit = 1, 20
	query := r.URL.Query()

	if v := query.Get("page"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 0)
		if err != nil || parsed < 1 {
			return 0, 0, "page"
		}
		page = parsed
	}

	if v := query.Get("limit"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 0)
		if err != nil || parsed < 1 || parsed > 100 {
			return 0, 0, "limit"
		}
		limit = parsed
	}

	return page, limit, ""
}
