package mirror

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/kaymick2/timebot/internal/mocks/repository/mirror"
)

func TestRedis_LoadMissingKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cacheMock := mocks.NewMockcache(ctrl)
	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}
	r := NewRedis(cacheMock, DefaultSlot, strategy)

	cacheMock.EXPECT().GetWithRetry(gomock.Any(), strategy, DefaultSlot).Return("", redis.Nil)

	_, err := r.Load(context.Background())
	assert.ErrorIs(t, err, ErrSlotEmpty)
}

func TestRedis_LoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cacheMock := mocks.NewMockcache(ctrl)
	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}
	r := NewRedis(cacheMock, DefaultSlot, strategy)

	cacheMock.EXPECT().GetWithRetry(gomock.Any(), strategy, DefaultSlot).Return("", errors.New("connection refused"))

	_, err := r.Load(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrSlotEmpty)
}

func TestRedis_SaveLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cacheMock := mocks.NewMockcache(ctrl)
	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}
	r := NewRedis(cacheMock, "slot", strategy)

	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, "slot", `[{"id":"1"}]`).Return(nil)
	cacheMock.EXPECT().GetWithRetry(gomock.Any(), strategy, "slot").Return(`[{"id":"1"}]`, nil)

	require.NoError(t, r.Save(context.Background(), []byte(`[{"id":"1"}]`)))

	data, err := r.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(data))
}
