package model

import (
	"strings"

	"github.com/dt-bots/kotori/pkg/domain/types"
)

// EventSource tells which inbound path produced an event.
type EventSource string

const (
	// SourceSlashCommand is an explicit slash-command invocation carrying a
	// one-shot response URL.
	SourceSlashCommand EventSource = "slash_command"
	// SourceMessage is a passive message event delivered via the Events API.
	SourceMessage EventSource = "message"
)

// Event is the normalized form of one inbound webhook request. It is built
// once per request and discarded after handling; there is no cross-request
// state.
type Event struct {
	Command     types.CommandName
	Text        string
	ChannelID   types.ChannelID
	UserID      types.SlackUserID
	ResponseURL string
	Source      EventSource
}

// NewSlashCommandEvent builds an Event from slash-command form fields. The
// platform supplies the command token separately from the argument text.
func NewSlashCommandEvent(command, text, channelID, userID, responseURL string) *Event {
	return &Event{
		Command:     types.CommandName(command),
		Text:        text,
		ChannelID:   types.ChannelID(channelID),
		UserID:      types.SlackUserID(userID),
		ResponseURL: responseURL,
		Source:      SourceSlashCommand,
	}
}

// NewMessageEvent builds an Event from a message event. The command token, if
// any, is the first whitespace-delimited token of the text.
func NewMessageEvent(text, channelID, userID string) *Event {
	ev := &Event{
		Text:      text,
		ChannelID: types.ChannelID(channelID),
		UserID:    types.SlackUserID(userID),
		Source:    SourceMessage,
	}
	fields := strings.Fields(text)
	if len(fields) > 0 && strings.HasPrefix(fields[0], "/") {
		ev.Command = types.CommandName(fields[0])
	}
	return ev
}

// IsInteractive reports whether the event came from the interactive
// (slash-command) path. ResponseURL is set only on this path.
func (e *Event) IsInteractive() bool {
	return e.Source == SourceSlashCommand
}

// Args returns the argument text for the matched command. On the slash-command
// path the platform already separates it; on the message path it is everything
// after the command token.
func (e *Event) Args() string {
	if e.Source == SourceSlashCommand || e.Command == "" {
		return e.Text
	}
	fields := strings.Fields(e.Text)
	return strings.Join(fields[1:], " ")
}
