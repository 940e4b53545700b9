package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/kaymick2/timebot/internal/api/handlers/alert"
	"github.com/kaymick2/timebot/internal/api/handlers/clock"
	"github.com/kaymick2/timebot/internal/api/handlers/event"
	"github.com/kaymick2/timebot/internal/middlewares"
)

// Handlers groups the API handlers the router mounts.
type Handlers struct {
	Event *event.Handler
	Alert *alert.Handler
	Clock *clock.Handler
}

func New(h Handlers) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	e.GET("/health", func(c *ginext.Context) {
		c.String(http.StatusOK, "ok")
	})

	api := e.Group("/api")
	{
		api.POST("/events", h.Event.Create)
		api.GET("/events", h.Event.GetAll)
		api.DELETE("/events/:id", h.Event.Delete)
		api.GET("/events.ics", h.Event.Export)
		api.POST("/events/import", h.Event.Import)

		api.GET("/alert", h.Alert.Current)
		api.POST("/alert/dismiss", h.Alert.Dismiss)

		api.GET("/clock", h.Clock.Get)
	}

	return e
}
