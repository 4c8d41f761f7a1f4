package notify

import (
	"context"
	"errors"
	"fmt"

	"notes-copilot/pkg/log"
	"notes-copilot/pkg/telegram"
)

// Log writes notifications to the logger at warn level.
type Log struct {
	l log.Logger
}

func NewLog(l log.Logger) *Log {
	return &Log{l: l}
}

func (n *Log) Notify(ctx context.Context, message string) error {
	n.l.Warn(ctx, "notification", "message", message)
	return nil
}

// Sender is the part of the Telegram bot used for notifications.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// Telegram delivers notifications to one chat through the Bot API.
type Telegram struct {
	sender Sender
	chatID int64
}

func NewTelegram(sender Sender, chatID int64) *Telegram {
	return &Telegram{sender: sender, chatID: chatID}
}

// NewTelegramBot is NewTelegram for a bot built from token.
func NewTelegramBot(token string, chatID int64) *Telegram {
	return NewTelegram(telegram.NewBot(token), chatID)
}

func (n *Telegram) Notify(ctx context.Context, message string) error {
	if err := n.sender.SendMessage(ctx, n.chatID, message); err != nil {
		return fmt.Errorf("notify: telegram: %w", err)
	}
	return nil
}

// Multi fans a notification out to every notifier. All notifiers are
// tried; their errors are joined.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, message string) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, message); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
