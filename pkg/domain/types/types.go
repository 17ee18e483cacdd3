package types

import "github.com/google/uuid"

// ChannelID represents a Slack channel identifier
type ChannelID string

// String returns the string representation
func (id ChannelID) String() string {
	return string(id)
}

// SlackUserID represents a Slack user identifier
type SlackUserID string

// String returns the string representation
func (id SlackUserID) String() string {
	return string(id)
}

// CommandName represents a command token such as "/weather"
type CommandName string

// String returns the string representation
func (n CommandName) String() string {
	return string(n)
}

// DispatchID identifies one background dispatch for log correlation
type DispatchID string

// NewDispatchID creates a new DispatchID
func NewDispatchID() DispatchID {
	return DispatchID(uuid.New().String())
}

// String returns the string representation
func (id DispatchID) String() string {
	return string(id)
}
