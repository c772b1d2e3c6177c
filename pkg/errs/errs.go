package errs

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrSelfFriend     = errors.New("cannot add yourself as friend")
	ErrAlreadyFriends = errors.New("already friends")
)

// QuotaExceededError carries the numbers the client needs to render
// the "daily post limit reached" response.
type QuotaExceededError struct {
	Limit   int
	Current int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("daily post limit reached: %d of %d", e.Current, e.Limit)
}
