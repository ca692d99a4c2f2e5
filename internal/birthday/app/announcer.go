package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/louisbranch/birthdaybot/internal/birthday/domain"
	"github.com/louisbranch/birthdaybot/internal/birthday/render"
)

// announcer owns the daily reminder trigger: once per calendar day at
// a fixed local hour it evaluates the record set and sends the due
// group announcements. Evaluation itself stays pure; the announcer is
// the boundary that guarantees the at-most-once daily contract by
// remembering the last day it fired for.
type announcer struct {
	svc         *domain.Service
	sender      Sender
	loc         render.Localizer
	groupChatID string
	hour        int
	location    *time.Location
	clock       func() time.Time

	announcedFor time.Time
}

func newAnnouncer(svc *domain.Service, sender Sender, loc render.Localizer, groupChatID string, hour int, location *time.Location, clock func() time.Time) *announcer {
	if location == nil {
		location = time.UTC
	}
	if clock == nil {
		clock = time.Now
	}
	return &announcer{
		svc:         svc,
		sender:      sender,
		loc:         loc,
		groupChatID: groupChatID,
		hour:        hour,
		location:    location,
		clock:       clock,
	}
}

// run fires announceDue at the configured local hour until ctx is done.
func (a *announcer) run(ctx context.Context) error {
	for {
		next := nextFireTime(a.clock(), a.hour, a.location)
		timer := time.NewTimer(next.Sub(a.clock()))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}
		if err := a.announceDue(ctx); err != nil {
			log.Printf("daily announcement run: %v", err)
		}
	}
}

// announceDue evaluates today's reminders and sends them to the group
// chat. A duplicate trigger within one calendar day is skipped.
func (a *announcer) announceDue(ctx context.Context) error {
	today := a.svc.Today(a.location)
	if today.Equal(a.announcedFor) {
		log.Printf("skip duplicate announcement trigger for %s", today.Format("2006-01-02"))
		return nil
	}

	records, err := a.svc.List(ctx)
	if err != nil {
		return fmt.Errorf("list records for announcement: %w", err)
	}
	due, failed := domain.Evaluate(today, records)
	for _, recordErr := range failed {
		log.Printf("skip malformed birthday record %d (%s): %v",
			recordErr.Record.ID, recordErr.Record.Name, recordErr.Err)
	}

	for _, notification := range due {
		text := a.renderNotification(notification)
		if err := a.sender.SendMessage(ctx, a.groupChatID, text); err != nil {
			log.Printf("send %s announcement for %q: %v",
				notification.Kind, notification.Record.Name, err)
		}
	}
	a.announcedFor = today
	return nil
}

func (a *announcer) renderNotification(notification domain.Notification) string {
	switch notification.Kind {
	case domain.KindUpcoming:
		occurrence := notification.Occurrence.Format("02.01.2006")
		return render.UpcomingAnnouncement(a.loc, notification.Record.Name, occurrence)
	default:
		return render.TodayAnnouncement(a.loc, notification.Record.Name)
	}
}

// nextFireTime returns the next wall-clock instant at the given local
// hour, rolling to tomorrow when today's slot has passed.
func nextFireTime(now time.Time, hour int, loc *time.Location) time.Time {
	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), hour, 0, 0, 0, loc)
	if !next.After(local) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
