package clock

import (
	"time"

	"github.com/wb-go/wbf/ginext"

	"github.com/kaymick2/timebot/internal/api/respond"
	"github.com/kaymick2/timebot/internal/clock"
)

type displayer interface {
	Displayed() string
}

// Reading is the current time as shown to the user.
type Reading struct {
	Now     time.Time `json:"now"`
	Display string    `json:"display"`
}

// Handler serves the displayed clock.
type Handler struct {
	clock   clock.Clock
	display *clock.Display
	ticks   displayer
}

// NewHandler serves the text of the last tick from ticks, formatting the
// current time with d until the first tick has happened.
func NewHandler(c clock.Clock, d *clock.Display, ticks displayer) *Handler {
	return &Handler{clock: c, display: d, ticks: ticks}
}

func (h *Handler) Get(c *ginext.Context) {
	now := h.clock.Now()

	text := h.ticks.Displayed()
	if text == "" {
		text = h.display.Format(now)
	}

	respond.OK(c.Writer, Reading{Now: now.UTC(), Display: text})
}
