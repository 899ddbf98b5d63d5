// Package notifier posts detected haiku back to the conversation they came
// from.
package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"haikubot/internal/metrics"
)

// ChatClient is the part of the chat platform API the notifier needs.
type ChatClient interface {
	UserRealName(ctx context.Context, userID string) (string, error)
	PostMessage(ctx context.Context, channel, text, threadTS string) error
}

// Notifier formats a haiku as an attributed quote and replies in thread.
type Notifier struct {
	chat    ChatClient
	metrics *metrics.Recorder
}

// New creates a notifier. rec may be nil.
func New(chat ChatClient, rec *metrics.Recorder) *Notifier {
	return &Notifier{chat: chat, metrics: rec}
}

// Format block-quotes every line of haiku and appends the author.
func Format(haiku, author string) string {
	haiku = strings.TrimRightFunc(haiku, unicode.IsSpace)
	return ">" + strings.ReplaceAll(haiku, "\n", "\n>") + "\n -" + author
}

// Notify looks up the author's name and posts the quote as a reply to the
// message at threadTS. It returns the posted text. A failed post is logged
// and not retried; only the profile lookup can fail the call.
func (n *Notifier) Notify(ctx context.Context, haiku, userID, channel, threadTS string) (string, error) {
	author, err := n.chat.UserRealName(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to look up author %s: %w", userID, err)
	}

	text := Format(haiku, author)
	if err := n.chat.PostMessage(ctx, channel, text, threadTS); err != nil {
		slog.Error("failed to post haiku", "channel", channel, "thread_ts", threadTS, "error", err)
		n.metrics.Notification(metrics.NotifyFailed)
		return text, nil
	}

	slog.Info("posted haiku", "channel", channel, "thread_ts", threadTS, "author", userID)
	n.metrics.Notification(metrics.NotifySent)
	return text, nil
}
