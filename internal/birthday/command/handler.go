// Package command interprets the admin chat commands that manage the
// birthday list: /start, /add, /list and /remove.
package command

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/louisbranch/birthdaybot/internal/birthday/domain"
	"github.com/louisbranch/birthdaybot/internal/birthday/render"
)

// Message is one inbound chat message with its caller identity.
type Message struct {
	CallerID int64
	ChatID   string
	Text     string
}

// Handler routes admin commands to the birthday service and renders
// responses. Every command is authorization-gated before parsing:
// non-admin callers get no response and cause no side effect.
type Handler struct {
	svc     *domain.Service
	adminID int64
	loc     render.Localizer
}

// NewHandler constructs the admin command handler.
func NewHandler(svc *domain.Service, adminID int64, loc render.Localizer) *Handler {
	return &Handler{svc: svc, adminID: adminID, loc: loc}
}

// Handle interprets one inbound message. The boolean reports whether a
// response should be sent; unauthorized callers and non-command text
// yield none. Errors never escape the command boundary.
func (h *Handler) Handle(ctx context.Context, msg Message) (string, bool) {
	if h == nil || msg.CallerID != h.adminID {
		return "", false
	}

	fields := strings.Fields(msg.Text)
	if len(fields) == 0 {
		return "", false
	}
	switch commandName(fields[0]) {
	case "/start":
		return render.Help(h.loc), true
	case "/add":
		return h.handleAdd(ctx, fields[1:]), true
	case "/list":
		return h.handleList(ctx)
	case "/remove":
		return h.handleRemove(ctx, fields[1:]), true
	default:
		return "", false
	}
}

// commandName strips a trailing @botname mention from the command token.
func commandName(token string) string {
	if at := strings.IndexByte(token, '@'); at != -1 {
		token = token[:at]
	}
	return strings.ToLower(token)
}

func (h *Handler) handleAdd(ctx context.Context, args []string) string {
	if len(args) < 2 {
		return render.AddUsage(h.loc)
	}
	date, err := domain.ParseDate(args[len(args)-1])
	if err != nil {
		return render.AddUsage(h.loc)
	}
	name := strings.Join(args[:len(args)-1], " ")

	record, err := h.svc.Add(ctx, name, date)
	if err != nil {
		log.Printf("add birthday: %v", err)
		return render.AddUsage(h.loc)
	}
	return render.Added(h.loc, record.Name, record.Date)
}

func (h *Handler) handleList(ctx context.Context) (string, bool) {
	records, err := h.svc.List(ctx)
	if err != nil {
		log.Printf("list birthdays: %v", err)
		return "", false
	}
	lines := make([]render.ListLine, 0, len(records))
	for rank, record := range records {
		lines = append(lines, render.ListLine{Rank: rank, Name: record.Name, Date: record.Date})
	}
	return render.BirthdayList(h.loc, lines), true
}

func (h *Handler) handleRemove(ctx context.Context, args []string) string {
	if len(args) != 1 {
		return render.RemoveUsage(h.loc)
	}
	rank, err := strconv.Atoi(args[0])
	if err != nil {
		return render.RemoveUsage(h.loc)
	}

	if err := h.svc.RemoveByRank(ctx, rank); err != nil {
		if errors.Is(err, domain.ErrOutOfRange) {
			return render.RankOutOfRange(h.loc)
		}
		log.Printf("remove birthday rank %d: %v", rank, err)
		return render.RemoveUsage(h.loc)
	}
	return render.Removed(h.loc, rank)
}
