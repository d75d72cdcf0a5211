package notify

import (
	"context"
	"fmt"
	"io"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Sender delivers a plain-text digest somewhere.
type Sender interface {
	Send(ctx context.Context, text string) error
}

// TelegramSender posts digests to one Telegram chat.
type TelegramSender struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramSender authenticates the bot token against the Telegram API.
func NewTelegramSender(token string, chatID int64) (*TelegramSender, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("error creating Telegram bot: %w", err)
	}
	return &TelegramSender{api: api, chatID: chatID}, nil
}

func (s *TelegramSender) Send(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(s.chatID, text)
	msg.DisableWebPagePreview = true
	if _, err := s.api.Send(msg); err != nil {
		return fmt.Errorf("sending telegram message: %w", err)
	}
	return nil
}

// WriterSender prints the digest instead of sending it.
type WriterSender struct {
	W io.Writer
}

func (s WriterSender) Send(_ context.Context, text string) error {
	_, err := fmt.Fprintln(s.W, text)
	return err
}

// lazySender builds its underlying sender on first use, so commands that
// never notify do not contact the bot API.
type lazySender struct {
	once   sync.Once
	build  func() (Sender, error)
	sender Sender
	err    error
}

// Lazy defers build until the first Send. A build error is returned from
// every Send.
func Lazy(build func() (Sender, error)) Sender {
	return &lazySender{build: build}
}

func (l *lazySender) Send(ctx context.Context, text string) error {
	l.once.Do(func() {
		l.sender, l.err = l.build()
	})
	if l.err != nil {
		return l.err
	}
	return l.sender.Send(ctx, text)
}
