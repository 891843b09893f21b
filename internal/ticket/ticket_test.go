package ticket

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"os"
	"testing"
	"time"

	"parkreg/internal/logger"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init("error")

	code := m.Run()
	os.Exit(code)
}

func TestRender(t *testing.T) {
	img, err := Render(42)
	require.NoError(t, err)

	decoded, err := png.Decode(bytes.NewReader(img))
	require.NoError(t, err)
	assert.Equal(t, imageSize, decoded.Bounds().Dx())

	again, err := Render(42)
	require.NoError(t, err)
	assert.Equal(t, img, again, "same id renders the same ticket")
}

func TestEncode_CacheMiss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	want, err := Render(7)
	require.NoError(t, err)

	mock.ExpectGet("parkreg:ticket:7").RedisNil()
	mock.ExpectSet("parkreg:ticket:7", want, time.Hour).SetVal("OK")

	svc := NewService(db, time.Hour)
	got, err := svc.Encode(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEncode_CacheHit(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	mock.ExpectGet("parkreg:ticket:7").SetVal("cached-png")

	svc := NewService(db, time.Hour)
	got, err := svc.Encode(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, []byte("cached-png"), got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEncode_CacheDown(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	want, err := Render(9)
	require.NoError(t, err)

	mock.ExpectGet("parkreg:ticket:9").SetErr(errors.New("connection refused"))
	mock.ExpectSet("parkreg:ticket:9", want, time.Hour).SetErr(errors.New("connection refused"))

	svc := NewService(db, time.Hour)
	got, err := svc.Encode(ctx, 9)
	require.NoError(t, err, "a broken cache must not block ticket issue")
	assert.Equal(t, want, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEncode_NoCache(t *testing.T) {
	svc := NewService(nil, 0)

	got, err := svc.EncodeBase64(context.Background(), 3)
	require.NoError(t, err)
	assert.NotEmpty(t, got)

	_, err = svc.Encode(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidID)
}
