package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/kaymick2/timebot/internal/mocks/service/notification"
	"github.com/kaymick2/timebot/internal/model"
	"github.com/kaymick2/timebot/internal/repository/mirror"
	eventsvc "github.com/kaymick2/timebot/internal/service/event"
)

var (
	now      = time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)
	strategy = retry.Strategy{Attempts: 1, Delay: time.Millisecond}
)

func TestService_Scan_FiresInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeMock := mocks.NewMockeventStore(ctrl)
	sinkMock := mocks.NewMockSink(ctrl)
	svc := NewService(storeMock, map[string]Sink{"alert": sinkMock}, strategy)

	storeMock.EXPECT().TakeDue(gomock.Any(), now).Return([]model.Event{
		{ID: "a", Title: "A", DueAt: now, Description: "first"},
		{ID: "b", Title: "B", DueAt: now},
	}, nil)

	gomock.InOrder(
		sinkMock.EXPECT().Notify(gomock.Any(), model.FiredEvent{Title: "A", Description: "first"}).Return(nil),
		sinkMock.EXPECT().Notify(gomock.Any(), model.FiredEvent{Title: "B"}).Return(nil),
	)

	fired, err := svc.Scan(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, []model.FiredEvent{
		{Title: "A", Description: "first"},
		{Title: "B"},
	}, fired)
}

func TestService_Scan_NothingDue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeMock := mocks.NewMockeventStore(ctrl)
	sinkMock := mocks.NewMockSink(ctrl)
	svc := NewService(storeMock, map[string]Sink{"alert": sinkMock}, strategy)

	storeMock.EXPECT().TakeDue(gomock.Any(), now).Return(nil, nil)

	fired, err := svc.Scan(context.Background(), now)
	require.NoError(t, err)
	assert.Empty(t, fired)
}

func TestService_Scan_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeMock := mocks.NewMockeventStore(ctrl)
	svc := NewService(storeMock, nil, strategy)

	storeMock.EXPECT().TakeDue(gomock.Any(), now).Return(nil, errors.New("disk full"))

	_, err := svc.Scan(context.Background(), now)
	assert.Error(t, err)
}

func TestService_Scan_SinkFailureDoesNotBlockBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeMock := mocks.NewMockeventStore(ctrl)
	broken := mocks.NewMockSink(ctrl)
	healthy := mocks.NewMockSink(ctrl)
	svc := NewService(storeMock, map[string]Sink{"a-broken": broken, "b-healthy": healthy},
		retry.Strategy{Attempts: 2, Delay: time.Millisecond, Backoff: 1})

	storeMock.EXPECT().TakeDue(gomock.Any(), now).Return([]model.Event{
		{ID: "a", Title: "A", DueAt: now},
		{ID: "b", Title: "B", DueAt: now},
	}, nil)

	broken.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.New("smtp down")).MinTimes(2)
	healthy.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	fired, err := svc.Scan(context.Background(), now)
	require.NoError(t, err)
	assert.Len(t, fired, 2)
}

func TestService_Scan_AtMostOnceWithRealStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := eventsvc.NewService(mirror.NewMemory(), time.UTC)
	sinkMock := mocks.NewMockSink(ctrl)
	svc := NewService(store, map[string]Sink{"alert": sinkMock}, strategy)

	_, err := store.Create(context.Background(), "A", "2025-09-15T10:00:00Z", "")
	require.NoError(t, err)
	_, err = store.Create(context.Background(), "B", "2025-09-15T10:00:00Z", "")
	require.NoError(t, err)
	_, err = store.Create(context.Background(), "C", "2025-09-15T10:00:01Z", "")
	require.NoError(t, err)

	sinkMock.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	fired, err := svc.Scan(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, []model.FiredEvent{{Title: "A"}, {Title: "B"}}, fired)
	require.Len(t, store.List(), 1)
	assert.Equal(t, "C", store.List()[0].Title)

	fired, err = svc.Scan(context.Background(), now)
	require.NoError(t, err)
	assert.Empty(t, fired)

	fired, err = svc.Scan(context.Background(), now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, []model.FiredEvent{{Title: "C"}}, fired)
	assert.Empty(t, store.List())
}
