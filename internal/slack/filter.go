package slack

import "haikubot/internal/models"

// ShouldIgnore reports whether an event is out of scope for haiku detection.
func ShouldIgnore(e models.Event) bool {
	// ignore messages sent by bots, including this one
	if e.BotID != "" {
		return true
	}
	// ignore messages that don't include any text
	if e.Text == "" {
		return true
	}
	// ignore things that aren't messages
	if e.Type != models.EventTypeMessage {
		return true
	}
	// only respond in channels or group DMs
	return e.ChannelType != models.ChannelTypeChannel && e.ChannelType != models.ChannelTypeGroup
}
