package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kaymick2/timebot/internal/clock"
	"github.com/kaymick2/timebot/internal/model"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Runtime failure (corrupt state, storage unreachable, etc.)
	ExitInvalidInput = 2 // Rejected input (empty title, bad due time, bad flags)
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter writes command results as text, JSON or YAML.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// CLIResponse is the JSON envelope for CLI output.
type CLIResponse struct {
	Status string      `json:"status"`          // "ok" or "error"
	Data   interface{} `json:"data,omitempty"`  // success payload
	Error  string      `json:"error,omitempty"` // error message
}

// Success outputs data in the configured format. text is what the text
// format prints.
func (f *OutputFormatter) Success(data interface{}, text string) error {
	switch f.Format {
	case "json":
		return json.NewEncoder(f.Writer).Encode(CLIResponse{Status: "ok", Data: data})
	case "yaml":
		enc := yaml.NewEncoder(f.Writer)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return err
		}
		return enc.Close()
	}

	_, err := io.WriteString(f.Writer, text)
	return err
}

// eventView is an event as the CLI prints it.
type eventView struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	DueAt       string `json:"due_at" yaml:"due_at"`
	DueDisplay  string `json:"due_display" yaml:"due_display"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

const noDueTime = "(no due time)"

func viewOf(ev model.Event, d *clock.Display) eventView {
	v := eventView{
		ID:          ev.ID,
		Title:       ev.Title,
		DueDisplay:  noDueTime,
		Description: ev.Description,
	}

	if ev.HasDueTime() {
		v.DueAt = ev.DueAt.UTC().Format(time.RFC3339)
		v.DueDisplay = d.Format(ev.DueAt)
	}

	return v
}

func viewsOf(events []model.Event, d *clock.Display) []eventView {
	views := make([]eventView, 0, len(events))
	for _, ev := range events {
		views = append(views, viewOf(ev, d))
	}
	return views
}

// eventsText renders one line per event, with the description indented on
// the line below.
func eventsText(views []eventView) string {
	if len(views) == 0 {
		return "No events.\n"
	}

	var b strings.Builder
	for _, v := range views {
		fmt.Fprintf(&b, "%s  %s  %s\n", v.ID, v.DueDisplay, v.Title)
		if v.Description != "" {
			fmt.Fprintf(&b, "    %s\n", v.Description)
		}
	}
	return b.String()
}
