// Package ics converts events to and from iCalendar (RFC 5545) documents.
package ics

import (
	"errors"
	"io"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/wb-go/wbf/zlog"

	"github.com/kaymick2/timebot/internal/model"
)

const (
	productID = "-//timebot//reminders//EN"
	uidSuffix = "@timebot"
)

// Draft is an event read from a calendar, ready to be passed to the event
// store. DueAt is RFC 3339.
type Draft struct {
	Title       string `json:"title"`
	DueAt       string `json:"due_at"`
	Description string `json:"description"`
}

// Export renders events as a VCALENDAR with one VEVENT per event. Each event
// carries a display alarm at its due time. Events without a due time are
// left out.
func Export(events []model.Event, stamp time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	for _, ev := range events {
		if !ev.HasDueTime() {
			continue
		}

		vev := cal.AddEvent(ev.ID + uidSuffix)
		vev.SetDtStampTime(stamp.UTC())
		vev.SetStartAt(ev.DueAt.UTC())
		vev.SetSummary(ev.Title)
		if ev.Description != "" {
			vev.SetDescription(ev.Description)
		}

		alarm := vev.AddAlarm()
		alarm.SetAction(ical.ActionDisplay)
		alarm.SetTrigger("-PT0M")
		alarm.SetProperty(ical.ComponentPropertyDescription, model.FiredEvent{Title: ev.Title, Description: ev.Description}.Message())
	}

	return cal.Serialize()
}

// Import reads the VEVENTs of a calendar. Events without a summary or a
// usable start are skipped and counted in skipped.
func Import(r io.Reader) (drafts []Draft, skipped int, err error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, 0, err
	}

	drafts = make([]Draft, 0)

	for _, vev := range cal.Events() {
		d, err := draftFrom(vev)
		if err != nil {
			zlog.Logger.Warn().Err(err).Msg("skipping calendar event")
			skipped++
			continue
		}
		drafts = append(drafts, d)
	}

	return drafts, skipped, nil
}

func draftFrom(vev *ical.VEvent) (Draft, error) {
	var d Draft

	if p := vev.GetProperty(ical.ComponentPropertySummary); p != nil {
		d.Title = p.Value
	}
	if d.Title == "" {
		return d, errors.New("missing SUMMARY")
	}

	if p := vev.GetProperty(ical.ComponentPropertyDescription); p != nil {
		d.Description = p.Value
	}

	start, err := vev.GetStartAt()
	if err != nil {
		return d, err
	}
	d.DueAt = start.UTC().Format(time.RFC3339)

	return d, nil
}
