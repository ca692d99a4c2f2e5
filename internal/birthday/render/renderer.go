// Package render turns command results and due reminders into localized
// MarkdownV2 chat text. It is the only place user-supplied strings are
// escaped for display.
package render

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Localizer is the minimal message-printer contract required by the renderer.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// NewLocalizer returns a printer for the given locale tag, falling back
// to Russian (the bot's original audience) when the tag does not parse.
func NewLocalizer(locale string) Localizer {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		tag = language.Russian
	}
	return message.NewPrinter(tag)
}

// Help renders the static admin command reference.
func Help(loc Localizer) string {
	return localize(loc, "bot.help")
}

// Added confirms one created record, echoing the stored name and date.
func Added(loc Localizer, name string, date string) string {
	return localize(loc, "bot.add.success", EscapeMarkdownV2(name), EscapeMarkdownV2(date))
}

// AddUsage hints the expected /add syntax after a malformed command.
func AddUsage(loc Localizer) string {
	return localize(loc, "bot.add.usage")
}

// BirthdayList renders the rank/name/date listing, or the distinct
// empty-list response when there are no records.
func BirthdayList(loc Localizer, lines []ListLine) string {
	if len(lines) == 0 {
		return localize(loc, "bot.list.empty")
	}
	var b strings.Builder
	b.WriteString(localize(loc, "bot.list.header"))
	for _, line := range lines {
		b.WriteString(localize(loc, "bot.list.line",
			line.Rank, EscapeMarkdownV2(line.Name), EscapeMarkdownV2(line.Date)))
	}
	return b.String()
}

// ListLine is one rendered listing entry.
type ListLine struct {
	Rank int
	Name string
	Date string
}

// Removed confirms one deleted rank.
func Removed(loc Localizer, rank int) string {
	return localize(loc, "bot.remove.success", rank)
}

// RemoveUsage hints the expected /remove syntax after a malformed command.
func RemoveUsage(loc Localizer) string {
	return localize(loc, "bot.remove.usage")
}

// RankOutOfRange reports a rank that addresses no current record.
func RankOutOfRange(loc Localizer) string {
	return localize(loc, "bot.remove.out_of_range")
}

// UpcomingAnnouncement renders the day-before group reminder.
func UpcomingAnnouncement(loc Localizer, name string, occurrence string) string {
	return localize(loc, "bot.announce.upcoming", EscapeMarkdownV2(occurrence), EscapeMarkdownV2(name))
}

// TodayAnnouncement renders the birthday-day group congratulation.
func TodayAnnouncement(loc Localizer, name string) string {
	return localize(loc, "bot.announce.today", EscapeMarkdownV2(name))
}

func localize(loc Localizer, key message.Reference, args ...any) string {
	if loc == nil {
		if asString, ok := key.(string); ok {
			if len(args) == 0 {
				return asString
			}
			return fmt.Sprintf(asString, args...)
		}
		return ""
	}
	return loc.Sprintf(key, args...)
}
