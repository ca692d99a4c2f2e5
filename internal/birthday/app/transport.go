package app

import (
	"context"

	"github.com/louisbranch/birthdaybot/internal/birthday/command"
)

// Sender delivers rendered MarkdownV2 text to one chat. Delivery
// failures are logged by the caller and never retried here.
type Sender interface {
	SendMessage(ctx context.Context, chatID string, text string) error
}

// Transport is the chat collaborator the bot runs against. Update
// polling, rich-text rendering and network concerns all live behind
// this boundary; the bot only consumes inbound messages and hands back
// outbound text.
type Transport interface {
	Sender
	// Messages streams inbound chat messages until ctx is done. The
	// transport closes the channel when it stops.
	Messages(ctx context.Context) <-chan command.Message
}
