// Package ticket renders the scannable entry ticket: a QR code PNG carrying
// the session id. Images are cached in Redis and rebuilt on a miss.
package ticket

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"time"

	"parkreg/internal/logger"
	"parkreg/internal/metrics"

	"github.com/redis/go-redis/v9"
	"github.com/skip2/go-qrcode"
)

const (
	keyPrefix = "parkreg:ticket:"
	imageSize = 256
)

var ErrInvalidID = errors.New("ticket id must be positive")

type Service struct {
	cache redis.Cmdable
	ttl   time.Duration
}

// NewService returns an encoder. A nil cache disables caching.
func NewService(cache redis.Cmdable, ttl time.Duration) *Service {
	return &Service{cache: cache, ttl: ttl}
}

// Encode returns the PNG ticket for a session id.
func (s *Service) Encode(ctx context.Context, id int64) ([]byte, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}

	key := cacheKey(id)
	if s.cache != nil {
		png, err := s.cache.Get(ctx, key).Bytes()
		if err == nil {
			metrics.RecordTicketCache("hit")
			return png, nil
		}
		if !errors.Is(err, redis.Nil) {
			logger.Warn("ticket cache read failed", "session_id", id, "error", err)
			metrics.RecordTicketCache("error")
		} else {
			metrics.RecordTicketCache("miss")
		}
	}

	png, err := Render(id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, png, s.ttl).Err(); err != nil {
			logger.Warn("ticket cache write failed", "session_id", id, "error", err)
		}
	}
	return png, nil
}

// EncodeBase64 is Encode for JSON payloads.
func (s *Service) EncodeBase64(ctx context.Context, id int64) (string, error) {
	png, err := s.Encode(ctx, id)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(png), nil
}

// Render draws the QR code without touching the cache.
func Render(id int64) ([]byte, error) {
	png, err := qrcode.Encode(strconv.FormatInt(id, 10), qrcode.Medium, imageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to render ticket %d: %w", id, err)
	}
	return png, nil
}

func cacheKey(id int64) string {
	return keyPrefix + strconv.FormatInt(id, 10)
}
