package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	alertsvc "github.com/kaymick2/timebot/internal/alert"
	"github.com/kaymick2/timebot/internal/api/handlers/alert"
	clockh "github.com/kaymick2/timebot/internal/api/handlers/clock"
	"github.com/kaymick2/timebot/internal/api/handlers/event"
	"github.com/kaymick2/timebot/internal/clock"
	mocks "github.com/kaymick2/timebot/internal/mocks/api/handlers/event"
	"github.com/kaymick2/timebot/internal/model"
)

type noTicks struct{}

func (noTicks) Displayed() string { return "" }

func TestRouter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 9, 15, 15, 0, 0, 0, time.UTC)
	c := clock.NewManual(now)
	d, err := clock.NewDisplay("America/Chicago", "Central Time")
	require.NoError(t, err)

	svc := mocks.NewMockeventService(ctrl)
	svc.EXPECT().List().Return([]model.Event{}).AnyTimes()

	r := New(Handlers{
		Event: event.NewHandler(svc, validator.New(), c.Now),
		Alert: alert.NewHandler(alertsvc.NewBoard(c.Now)),
		Clock: clockh.NewHandler(c, d, noTicks{}),
	})

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/api/events", http.StatusOK},
		{http.MethodGet, "/api/events.ics", http.StatusOK},
		{http.MethodGet, "/api/alert", http.StatusNoContent},
		{http.MethodPost, "/api/alert/dismiss", http.StatusNotFound},
		{http.MethodGet, "/api/clock", http.StatusOK},
		{http.MethodGet, "/api/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
