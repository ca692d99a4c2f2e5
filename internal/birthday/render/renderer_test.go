package render

import (
	"strings"
	"testing"
)

func TestEscapeMarkdownV2(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "Alice", want: "Alice"},
		{name: "date dots", in: "15.03.1990", want: "15\\.03\\.1990"},
		{name: "specials", in: "a_b*c[d]e(f)g!h", want: "a\\_b\\*c\\[d\\]e\\(f\\)g\\!h"},
		{name: "dash and plus", in: "x-y+z", want: "x\\-y\\+z"},
		{name: "unicode untouched", in: "Мария", want: "Мария"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := EscapeMarkdownV2(tc.in); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestAddedEscapesNameAndDate(t *testing.T) {
	t.Parallel()

	loc := NewLocalizer("ru")
	got := Added(loc, "Jane_Doe", "01.01.2000")
	if !strings.Contains(got, "Jane\\_Doe") {
		t.Fatalf("expected escaped name in %q", got)
	}
	if !strings.Contains(got, "01\\.01\\.2000") {
		t.Fatalf("expected escaped date in %q", got)
	}
}

func TestBirthdayListEmpty(t *testing.T) {
	t.Parallel()

	got := BirthdayList(NewLocalizer("ru"), nil)
	if !strings.Contains(got, "пуст") {
		t.Fatalf("expected empty-list response, got %q", got)
	}
}

func TestBirthdayListRendersRanks(t *testing.T) {
	t.Parallel()

	loc := NewLocalizer("ru")
	got := BirthdayList(loc, []ListLine{
		{Rank: 0, Name: "Alice", Date: "15.03.1990"},
		{Rank: 1, Name: "Bob", Date: "29.02.2000"},
	})
	if !strings.Contains(got, "*0*: Alice") {
		t.Fatalf("expected rank 0 line in %q", got)
	}
	if !strings.Contains(got, "*1*: Bob") {
		t.Fatalf("expected rank 1 line in %q", got)
	}
	if !strings.Contains(got, "29\\.02\\.2000") {
		t.Fatalf("expected escaped date in %q", got)
	}
}

func TestAnnouncementsLocalize(t *testing.T) {
	t.Parallel()

	ru := NewLocalizer("ru")
	en := NewLocalizer("en")

	ruToday := TodayAnnouncement(ru, "Мария")
	if !strings.Contains(ruToday, "Сегодня Мария") {
		t.Fatalf("expected russian today announcement, got %q", ruToday)
	}
	enToday := TodayAnnouncement(en, "Alice")
	if !strings.Contains(enToday, "Today Alice") {
		t.Fatalf("expected english today announcement, got %q", enToday)
	}

	upcoming := UpcomingAnnouncement(ru, "Alice", "15.03.2024")
	if !strings.Contains(upcoming, "15\\.03\\.2024") {
		t.Fatalf("expected escaped occurrence date, got %q", upcoming)
	}
	if !strings.Contains(upcoming, "*Alice*") {
		t.Fatalf("expected bold name, got %q", upcoming)
	}
}

func TestNewLocalizerFallsBackToRussian(t *testing.T) {
	t.Parallel()

	loc := NewLocalizer("???")
	if !strings.Contains(Help(loc), "Доступные команды") {
		t.Fatal("expected russian fallback help text")
	}
}

func TestHelpMentionsAllCommands(t *testing.T) {
	t.Parallel()

	help := Help(NewLocalizer("en"))
	for _, cmd := range []string{"/add", "/remove", "/list"} {
		if !strings.Contains(help, cmd) {
			t.Fatalf("expected help to mention %s, got %q", cmd, help)
		}
	}
}
