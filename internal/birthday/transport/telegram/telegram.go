// Package telegram adapts the Telegram Bot API to the bot's chat
// transport contract: long-polled inbound messages and MarkdownV2
// outbound sends.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/louisbranch/birthdaybot/internal/birthday/command"
)

const (
	defaultBaseURL     = "https://api.telegram.org"
	defaultPollTimeout = 30 * time.Second
	pollRetryDelay     = 5 * time.Second
)

// Config configures the Telegram Bot API client.
type Config struct {
	Token string
	// BaseURL overrides the API host, primarily for tests.
	BaseURL string
	// HTTPClient overrides the default client.
	HTTPClient *http.Client
	// PollTimeout is the getUpdates long-poll wait.
	PollTimeout time.Duration
}

// Client is a minimal Telegram Bot API transport.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	token       string
	pollTimeout time.Duration
}

// New constructs a Telegram transport from config.
func New(cfg Config) (*Client, error) {
	token := strings.TrimSpace(cfg.Token)
	if token == "" {
		return nil, fmt.Errorf("telegram token is required")
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	pollTimeout := cfg.PollTimeout
	if pollTimeout <= 0 {
		pollTimeout = defaultPollTimeout
	}
	return &Client{
		httpClient:  httpClient,
		baseURL:     baseURL,
		token:       token,
		pollTimeout: pollTimeout,
	}, nil
}

type update struct {
	UpdateID int64 `json:"update_id"`
	Message  *struct {
		Text string `json:"text"`
		From *struct {
			ID int64 `json:"id"`
		} `json:"from"`
		Chat struct {
			ID int64 `json:"id"`
		} `json:"chat"`
	} `json:"message"`
}

type apiResponse struct {
	OK          bool            `json:"ok"`
	Description string          `json:"description"`
	Result      json.RawMessage `json:"result"`
}

// Messages long-polls getUpdates and streams inbound chat messages
// until ctx is done. Poll failures are logged and retried after a
// short delay; the channel is closed when polling stops.
func (c *Client) Messages(ctx context.Context) <-chan command.Message {
	out := make(chan command.Message)
	go func() {
		defer close(out)
		var offset int64
		for {
			if ctx.Err() != nil {
				return
			}
			updates, err := c.getUpdates(ctx, offset)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				log.Printf("telegram getUpdates: %v", err)
				select {
				case <-ctx.Done():
					return
				case <-time.After(pollRetryDelay):
				}
				continue
			}
			for _, u := range updates {
				if u.UpdateID >= offset {
					offset = u.UpdateID + 1
				}
				if u.Message == nil || u.Message.From == nil {
					continue
				}
				msg := command.Message{
					CallerID: u.Message.From.ID,
					ChatID:   strconv.FormatInt(u.Message.Chat.ID, 10),
					Text:     u.Message.Text,
				}
				select {
				case <-ctx.Done():
					return
				case out <- msg:
				}
			}
		}
	}()
	return out
}

// SendMessage delivers MarkdownV2 text to one chat.
func (c *Client) SendMessage(ctx context.Context, chatID string, text string) error {
	payload := map[string]any{
		"chat_id":    chatID,
		"text":       text,
		"parse_mode": "MarkdownV2",
	}
	_, err := c.call(ctx, "sendMessage", payload)
	if err != nil {
		return fmt.Errorf("send message to %s: %w", chatID, err)
	}
	return nil
}

func (c *Client) getUpdates(ctx context.Context, offset int64) ([]update, error) {
	payload := map[string]any{
		"offset":  offset,
		"timeout": int(c.pollTimeout / time.Second),
	}
	result, err := c.call(ctx, "getUpdates", payload)
	if err != nil {
		return nil, err
	}
	var updates []update
	if err := json.Unmarshal(result, &updates); err != nil {
		return nil, fmt.Errorf("decode updates: %w", err)
	}
	return updates, nil
}

func (c *Client) call(ctx context.Context, method string, payload any) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", method, err)
	}
	url := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", method, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", method, err)
	}
	var decoded apiResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", method, err)
	}
	if !decoded.OK {
		return nil, fmt.Errorf("%s failed: %s", method, decoded.Description)
	}
	return decoded.Result, nil
}
