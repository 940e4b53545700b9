package alert

import (
	"fmt"
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/kaymick2/timebot/internal/alert"
	"github.com/kaymick2/timebot/internal/api/respond"
)

type board interface {
	Current() (alert.Alert, bool)
	Dismiss() bool
}

// Handler exposes the alert board to the frontend.
type Handler struct {
	board board
}

func NewHandler(b board) *Handler {
	return &Handler{board: b}
}

// Current returns the showing alert, or 204 when none is showing.
func (h *Handler) Current(c *ginext.Context) {
	a, ok := h.board.Current()
	if !ok {
		respond.NoContent(c.Writer)
		return
	}

	respond.OK(c.Writer, a)
}

// Dismiss hides the showing alert.
func (h *Handler) Dismiss(c *ginext.Context) {
	if !h.board.Dismiss() {
		respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("no alert showing"))
		return
	}

	respond.OK(c.Writer, "alert dismissed")
}
