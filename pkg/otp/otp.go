package otp

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	codeDigits = 6
	codeTTL    = 5 * time.Minute
)

// Delivery channels the user can pick for the code.
const (
	ChannelEmail  = "email"
	ChannelMobile = "mobile"
)

// Sender delivers the code out of band over the requested channel.
type Sender interface {
	Send(ctx context.Context, channel, username, code string) error
}

// LogSender writes the code to the log instead of delivering it.
// Stands in for an SMS or mail gateway in development.
type LogSender struct {
	Logger *zap.SugaredLogger
}

func (s *LogSender) Send(ctx context.Context, channel, username, code string) error {
	s.Logger.Infow("one-time code issued",
		"channel", channel,
		"username", username,
		"code", code,
	)
	return nil
}

type Store struct {
	rdb    redis.Cmdable
	sender Sender
}

func NewStore(rdb redis.Cmdable, sender Sender) *Store {
	return &Store{rdb: rdb, sender: sender}
}

func storeKey(userID int64) string {
	return fmt.Sprintf("otp:%d", userID)
}

func generateCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < codeDigits; i++ {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%06d", n.Int64()), nil
}

// Issue generates a fresh code, stores it for five minutes and hands it
// to the sender. A second Issue overwrites the previous code.
func (s *Store) Issue(ctx context.Context, userID int64, username, channel string) error {
	code, err := generateCode()
	if err != nil {
		return err
	}

	err = s.rdb.Set(ctx, storeKey(userID), code, codeTTL).Err()
	if err != nil {
		return err
	}

	return s.sender.Send(ctx, channel, username, code)
}

// Verify checks the code and consumes it. A code is single use, the
// second Verify with the same code fails.
func (s *Store) Verify(ctx context.Context, userID int64, code string) (bool, error) {
	stored, err := s.rdb.Get(ctx, storeKey(userID)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if stored != code {
		return false, nil
	}

	err = s.rdb.Del(ctx, storeKey(userID)).Err()
	if err != nil {
		return false, err
	}

	return true, nil
}
