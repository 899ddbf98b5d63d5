package models

// Envelope types sent to the events endpoint.
const (
	EnvelopeEventCallback   = "event_callback"
	EnvelopeURLVerification = "url_verification"
)

// Event and conversation types the haiku detector cares about.
const (
	EventTypeMessage   = "message"
	ChannelTypeChannel = "channel"
	ChannelTypeGroup   = "group"
)

// EventEnvelope is the outer JSON body of a Slack Events API request.
type EventEnvelope struct {
	Type      string `json:"type"`
	Token     string `json:"token,omitempty"`
	Challenge string `json:"challenge,omitempty"`
	TeamID    string `json:"team_id,omitempty"`
	EventID   string `json:"event_id,omitempty"`
	Event     Event  `json:"event"`
}

// Event is the inner event object.
type Event struct {
	Type        string `json:"type"`
	Channel     string `json:"channel"`
	ChannelType string `json:"channel_type"`
	Text        string `json:"text"`
	User        string `json:"user"`
	TS          string `json:"ts"`
	BotID       string `json:"bot_id,omitempty"`
}
