package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"codequest/pkg/tags"

	"go.uber.org/zap"
)

type TagHandler struct {
	TagsRepo TagsRepo
	Logger   *zap.SugaredLogger
}

type TagsRepo interface {
	GetAll(ctx context.Context, search string, limit int64) ([]*tags.Tag, error)
	GetPopular(ctx context.Context) ([]*tags.Tag, error)
	GetByID(ctx context.Context, id interface{}) (*tags.Tag, error)
	GetOrCreate(ctx context.Context, name string) (*tags.Tag, error)
	IncQuestionsCount(ctx context.Context, ids []interface{}, delta int64) error

	ParseID(string) (interface{}, error)
}

func (h *TagHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var limit int64
	if v := query.Get("limit"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 0)
		if err != nil || parsed < 1 || parsed > 100 {
			WriteResponse(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	tagsDb, err := h.TagsRepo.GetAll(ctx, query.Get("search"), limit)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.Logger, tagsDb, http.StatusOK)
}

func (h *TagHandler) Popular(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	tagsDb, err := h.TagsRepo.GetPopular(ctx)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.Logger, tagsDb, http.StatusOK)
}
