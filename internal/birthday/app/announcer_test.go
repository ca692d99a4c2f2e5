package app

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/louisbranch/birthdaybot/internal/birthday/domain"
	"github.com/louisbranch/birthdaybot/internal/birthday/render"
	"github.com/louisbranch/birthdaybot/internal/birthday/storage"
)

type memoryStore struct {
	records []storage.BirthdayRecord
	nextID  int64
}

func (m *memoryStore) InsertRecord(_ context.Context, name string, date string) (int64, error) {
	m.nextID++
	m.records = append(m.records, storage.BirthdayRecord{ID: m.nextID, Name: name, Date: date})
	return m.nextID, nil
}

func (m *memoryStore) ListRecords(_ context.Context) ([]storage.BirthdayRecord, error) {
	out := make([]storage.BirthdayRecord, len(m.records))
	copy(out, m.records)
	return out, nil
}

func (m *memoryStore) DeleteRecord(_ context.Context, id int64) error {
	for i, record := range m.records {
		if record.ID == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return nil
		}
	}
	return storage.ErrNotFound
}

type sentMessage struct {
	ChatID string
	Text   string
}

type recordingSender struct {
	mu   sync.Mutex
	sent []sentMessage
	err  error
}

func (r *recordingSender) SendMessage(_ context.Context, chatID string, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, sentMessage{ChatID: chatID, Text: text})
	return nil
}

func (r *recordingSender) messages() []sentMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]sentMessage, len(r.sent))
	copy(out, r.sent)
	return out
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestAnnounceDueSendsUpcomingAndToday(t *testing.T) {
	t.Parallel()

	store := &memoryStore{}
	clock := fixedClock(time.Date(2024, time.March, 14, 12, 0, 0, 0, time.UTC))
	svc := domain.NewService(store, clock)
	ctx := context.Background()

	seed := []struct {
		name string
		date string
	}{
		{name: "Alice", date: "15.03.1990"},
		{name: "Bob", date: "14.03.1985"},
		{name: "Clara", date: "01.07.2000"},
	}
	for _, s := range seed {
		date, err := domain.ParseDate(s.date)
		if err != nil {
			t.Fatalf("parse %s: %v", s.date, err)
		}
		if _, err := svc.Add(ctx, s.name, date); err != nil {
			t.Fatalf("add %s: %v", s.name, err)
		}
	}

	sender := &recordingSender{}
	a := newAnnouncer(svc, sender, render.NewLocalizer("ru"), "group-1", 12, time.UTC, clock)

	if err := a.announceDue(ctx); err != nil {
		t.Fatalf("announce due: %v", err)
	}

	sent := sender.messages()
	if len(sent) != 2 {
		t.Fatalf("expected 2 announcements, got %d", len(sent))
	}
	for _, msg := range sent {
		if msg.ChatID != "group-1" {
			t.Fatalf("expected group chat destination, got %q", msg.ChatID)
		}
	}
	if !strings.Contains(sent[0].Text, "Alice") || !strings.Contains(sent[0].Text, "15\\.03\\.2024") {
		t.Fatalf("expected upcoming announcement for Alice, got %q", sent[0].Text)
	}
	if !strings.Contains(sent[1].Text, "Bob") {
		t.Fatalf("expected today announcement for Bob, got %q", sent[1].Text)
	}
}

func TestAnnounceDueSkipsDuplicateTriggerSameDay(t *testing.T) {
	t.Parallel()

	store := &memoryStore{}
	clock := fixedClock(time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC))
	svc := domain.NewService(store, clock)
	ctx := context.Background()

	date, err := domain.ParseDate("15.03.1990")
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	if _, err := svc.Add(ctx, "Alice", date); err != nil {
		t.Fatalf("add alice: %v", err)
	}

	sender := &recordingSender{}
	a := newAnnouncer(svc, sender, render.NewLocalizer("ru"), "group-1", 12, time.UTC, clock)

	if err := a.announceDue(ctx); err != nil {
		t.Fatalf("first announce: %v", err)
	}
	if err := a.announceDue(ctx); err != nil {
		t.Fatalf("duplicate announce: %v", err)
	}
	if got := len(sender.messages()); got != 1 {
		t.Fatalf("expected duplicate trigger to be skipped, got %d sends", got)
	}
}

func TestAnnounceDueContinuesPastMalformedRecords(t *testing.T) {
	t.Parallel()

	store := &memoryStore{}
	if _, err := store.InsertRecord(context.Background(), "Broken", "garbage"); err != nil {
		t.Fatalf("seed broken record: %v", err)
	}
	if _, err := store.InsertRecord(context.Background(), "Alice", "15.03.1990"); err != nil {
		t.Fatalf("seed alice: %v", err)
	}

	clock := fixedClock(time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC))
	svc := domain.NewService(store, clock)
	sender := &recordingSender{}
	a := newAnnouncer(svc, sender, render.NewLocalizer("ru"), "group-1", 12, time.UTC, clock)

	if err := a.announceDue(context.Background()); err != nil {
		t.Fatalf("announce due: %v", err)
	}
	sent := sender.messages()
	if len(sent) != 1 || !strings.Contains(sent[0].Text, "Alice") {
		t.Fatalf("expected single Alice announcement, got %+v", sent)
	}
}

func TestAnnounceDueLogsDeliveryFailureWithoutRetry(t *testing.T) {
	t.Parallel()

	store := &memoryStore{}
	if _, err := store.InsertRecord(context.Background(), "Alice", "15.03.1990"); err != nil {
		t.Fatalf("seed alice: %v", err)
	}

	clock := fixedClock(time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC))
	svc := domain.NewService(store, clock)
	sender := &recordingSender{err: errors.New("delivery down")}
	a := newAnnouncer(svc, sender, render.NewLocalizer("ru"), "group-1", 12, time.UTC, clock)

	if err := a.announceDue(context.Background()); err != nil {
		t.Fatalf("expected delivery failure to be absorbed, got %v", err)
	}
	if got := len(sender.messages()); got != 0 {
		t.Fatalf("expected no recorded sends, got %d", got)
	}
}

func TestNextFireTime(t *testing.T) {
	t.Parallel()

	moscow := time.FixedZone("MSK", 3*60*60)
	cases := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "before the hour fires today",
			now:  time.Date(2024, time.March, 15, 8, 0, 0, 0, moscow),
			want: time.Date(2024, time.March, 15, 12, 0, 0, 0, moscow),
		},
		{
			name: "after the hour rolls to tomorrow",
			now:  time.Date(2024, time.March, 15, 13, 30, 0, 0, moscow),
			want: time.Date(2024, time.March, 16, 12, 0, 0, 0, moscow),
		},
		{
			name: "exactly on the hour rolls to tomorrow",
			now:  time.Date(2024, time.March, 15, 12, 0, 0, 0, moscow),
			want: time.Date(2024, time.March, 16, 12, 0, 0, 0, moscow),
		},
		{
			name: "utc now converts to local slot",
			now:  time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC),
			want: time.Date(2024, time.March, 16, 12, 0, 0, 0, moscow),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := nextFireTime(tc.now, 12, moscow)
			if !got.Equal(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
