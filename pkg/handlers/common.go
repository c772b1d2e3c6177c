package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"codequest/pkg/errs"
	"codequest/pkg/user"

	"go.uber.org/zap"
)

type Response struct {
	Message string `json:"message"`
}

type CustomError struct {
	Location string `json:"location"`
	Param    string `json:"param"`
	Value    string `json:"value"`
	Msg      string `json:"msg"`
}

type ErrorsResponse struct {
	Errors []*CustomError `json:"errors"`
}

type Author struct {
	Username   string `json:"username"`
	ID         int64  `json:"id"`
	Reputation int64  `json:"reputation"`
}

// mapAuthor turns a users row into the embedded author view. A nil row
// means the author id dangles, which surfaces as not found instead of
// a panic further down.
func mapAuthor(usr *user.User) (*Author, error) {
	if usr == nil {
		return nil, errs.ErrNotFound
	}

	return &Author{Username: usr.Username, ID: usr.ID, Reputation: usr.Reputation}, nil
}

func WriteResponse(w http.ResponseWriter, msg string, status int) {
	resp := &Response{Message: msg}
	res, err := json.Marshal(resp)
	if err != nil {
		w.WriteHeader(status)
		return
	}

	w.WriteHeader(status)
	w.Write(res)
}

func writeErrorsResponse(w http.ResponseWriter, errors []*CustomError, status int) {
	errorsJSON, err := json.Marshal(&ErrorsResponse{Errors: errors})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}

	w.WriteHeader(status)
	w.Write(errorsJSON)
}

func writeJSON(w http.ResponseWriter, logger *zap.SugaredLogger, v interface{}, status int) {
	respBytes, err := json.Marshal(v)
	if err != nil {
		logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(respBytes)
}

// writeDomainError maps domain errors to statuses. Anything it does not
// recognize is a store failure and stays generic.
func writeDomainError(w http.ResponseWriter, logger *zap.SugaredLogger, err error) {
	quotaErr := &errs.QuotaExceededError{}
	switch {
	case errors.Is(err, errs.ErrNotFound):
		WriteResponse(w, "not found", http.StatusNotFound)
	case errors.Is(err, errs.ErrSelfFriend):
		WriteResponse(w, "cannot befriend yourself", http.StatusBadRequest)
	case errors.Is(err, errs.ErrAlreadyFriends):
		WriteResponse(w, "already friends", http.StatusBadRequest)
	case errors.As(err, &quotaErr):
		writeJSON(w, logger, map[string]interface{}{
			"message": quotaErr.Error(),
			"limit":   quotaErr.Limit,
			"current": quotaErr.Current,
		}, http.StatusBadRequest)
	default:
		logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
	}
}
