// Package notify pushes text notifications to the configured chat channel
// and formats the deadline reminder, order summary and order statistics
// messages.
package notify

import (
	"context"
	"fmt"

	"github.com/line/line-bot-sdk-go/v7/linebot"
)

// Sender pushes a single text payload to the configured channel.
type Sender interface {
	Push(ctx context.Context, text string) error
}

// LineSender delivers messages to a LINE group through the Messaging API.
type LineSender struct {
	bot *linebot.Client
	to  string
}

// NewLineSender creates a sender pushing to the given LINE group id.
func NewLineSender(channelSecret, channelToken, to string) (*LineSender, error) {
	bot, err := linebot.New(channelSecret, channelToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create line client: %w", err)
	}
	return &LineSender{bot: bot, to: to}, nil
}

// Push sends one text message.
func (s *LineSender) Push(ctx context.Context, text string) error {
	if _, err := s.bot.PushMessage(s.to, linebot.NewTextMessage(text)).WithContext(ctx).Do(); err != nil {
		return fmt.Errorf("failed to push line message: %w", err)
	}
	return nil
}
