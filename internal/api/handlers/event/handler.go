package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/kaymick2/timebot/internal/api/dto"
	"github.com/kaymick2/timebot/internal/api/respond"
	"github.com/kaymick2/timebot/internal/ics"
	"github.com/kaymick2/timebot/internal/model"
	eventsvc "github.com/kaymick2/timebot/internal/service/event"
)

// maxImportSize bounds the calendar documents accepted by Import.
const maxImportSize = 1 << 20

// eventService is the part of the event store the HTTP API needs.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/event/mock.go -package=mocks
type eventService interface {
	Create(ctx context.Context, title, dueAt, description string) (model.Event, error)
	List() []model.Event
	Delete(ctx context.Context, id string) (bool, error)
}

// Handler handles HTTP requests related to events.
type Handler struct {
	service   eventService
	validator *validator.Validate
	now       func() time.Time
}

// NewHandler creates a new Handler instance. now stamps exported calendars.
func NewHandler(s eventService, v *validator.Validate, now func() time.Time) *Handler {
	return &Handler{service: s, validator: v, now: now}
}

// ImportResult reports the outcome of a calendar import.
type ImportResult struct {
	Created []model.Event `json:"created"`
	Skipped int           `json:"skipped"`
}

// Create handles POST requests creating a new event.
func (h *Handler) Create(c *ginext.Context) {
	var req dto.CreateRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	ev, err := h.service.Create(c.Request.Context(), req.Title, req.DueAt, req.Description)
	if err != nil {
		if errors.Is(err, eventsvc.ErrInvalidInput) {
			zlog.Logger.Warn().Err(err).Msg("rejected event")
			respond.Fail(c.Writer, http.StatusBadRequest, err)
			return
		}

		zlog.Logger.Error().Err(err).Str("title", req.Title).Msg("failed to create event")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, ev)
}

// GetAll handles GET requests listing every event ordered by due time.
func (h *Handler) GetAll(c *ginext.Context) {
	respond.OK(c.Writer, h.service.List())
}

// Delete handles DELETE requests removing an event by id.
func (h *Handler) Delete(c *ginext.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		zlog.Logger.Warn().Msg("missing id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing id"))
		return
	}

	removed, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("id", id).Msg("failed to delete event")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	if !removed {
		zlog.Logger.Warn().Str("id", id).Msg("event not found")
		respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("event not found"))
		return
	}

	respond.OK(c.Writer, "event deleted")
}

// Export handles GET requests for the events as an iCalendar document.
func (h *Handler) Export(c *ginext.Context) {
	body := ics.Export(h.service.List(), h.now())

	c.Header("Content-Disposition", `attachment; filename="timebot.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(body))
}

// Import handles POST requests carrying an iCalendar document. Every VEVENT
// with a summary and a start becomes an event; the rest, and those the store
// rejects, are counted as skipped.
func (h *Handler) Import(c *ginext.Context) {
	drafts, skipped, err := ics.Import(http.MaxBytesReader(c.Writer, c.Request.Body, maxImportSize))
	if err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to parse calendar")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid calendar"))
		return
	}

	res := ImportResult{Created: make([]model.Event, 0, len(drafts)), Skipped: skipped}

	for _, d := range drafts {
		ev, err := h.service.Create(c.Request.Context(), d.Title, d.DueAt, d.Description)
		if err != nil {
			if errors.Is(err, eventsvc.ErrInvalidInput) {
				res.Skipped++
				continue
			}

			zlog.Logger.Error().Err(err).Str("title", d.Title).Msg("failed to import event")
			respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
			return
		}

		res.Created = append(res.Created, ev)
	}

	zlog.Logger.Info().Int("created", len(res.Created)).Int("skipped", res.Skipped).Msg("calendar imported")
	respond.Created(c.Writer, res)
}
