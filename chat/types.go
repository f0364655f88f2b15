// Copyright (C) 2023 Gobalsky Labs Limited
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package chat

import (
	"strings"

	"code.vegaprotocol.io/keybot/libs/jsonapi"
)

// Members types of a channel.
const (
	MembersTypeKBFS          = "kbfs"
	MembersTypeTeam          = "team"
	MembersTypeImpTeamNative = "impteamnative"
)

// Topic types of a channel.
const (
	TopicTypeChat = "chat"
	TopicTypeDev  = "dev"
)

// Channel identifies a conversation. For a conversation between users, the
// name is the comma-separated list of their usernames. For a team, it is the
// team name, and TopicName selects the channel within the team.
type Channel struct {
	Name        string `json:"name" mapstructure:"name"`
	Public      bool   `json:"public,omitempty" mapstructure:"public"`
	MembersType string `json:"members_type,omitempty" mapstructure:"members_type"`
	TopicType   string `json:"topic_type,omitempty" mapstructure:"topic_type"`
	TopicName   string `json:"topic_name,omitempty" mapstructure:"topic_name"`
}

// ChannelFor returns the channel of the conversation between the given users.
func ChannelFor(usernames ...string) Channel {
	return Channel{
		Name: strings.Join(usernames, ","),
	}
}

type Conversation struct {
	ID           string  `json:"id" mapstructure:"id"`
	Channel      Channel `json:"channel" mapstructure:"channel"`
	Unread       bool    `json:"unread" mapstructure:"unread"`
	ActiveAt     int64   `json:"active_at" mapstructure:"active_at"`
	ActiveAtMs   int64   `json:"active_at_ms" mapstructure:"active_at_ms"`
	MemberStatus string  `json:"member_status" mapstructure:"member_status"`

	// Extra holds the members returned by the API this type does not name.
	Extra map[string]interface{} `json:"-" mapstructure:",remain"`
}

func (c Conversation) MarshalJSON() ([]byte, error) {
	type conversation Conversation
	return jsonapi.MarshalWithExtra(conversation(c), c.Extra)
}

type Sender struct {
	UID        string `json:"uid" mapstructure:"uid"`
	Username   string `json:"username" mapstructure:"username"`
	DeviceID   string `json:"device_id" mapstructure:"device_id"`
	DeviceName string `json:"device_name" mapstructure:"device_name"`
}

type TextContent struct {
	Body string `json:"body" mapstructure:"body"`
}

// Content is the payload of a message. Only text messages are detailed, the
// other kinds are kept in Extra.
type Content struct {
	Type string       `json:"type" mapstructure:"type"`
	Text *TextContent `json:"text,omitempty" mapstructure:"text"`

	Extra map[string]interface{} `json:"-" mapstructure:",remain"`
}

func (c Content) MarshalJSON() ([]byte, error) {
	type content Content
	return jsonapi.MarshalWithExtra(content(c), c.Extra)
}

type Message struct {
	ID       int64   `json:"id" mapstructure:"id"`
	Channel  Channel `json:"channel" mapstructure:"channel"`
	Sender   Sender  `json:"sender" mapstructure:"sender"`
	SentAt   int64   `json:"sent_at" mapstructure:"sent_at"`
	SentAtMs int64   `json:"sent_at_ms" mapstructure:"sent_at_ms"`
	Content  Content `json:"content" mapstructure:"content"`
	Unread   bool    `json:"unread" mapstructure:"unread"`

	Extra map[string]interface{} `json:"-" mapstructure:",remain"`
}

func (m Message) MarshalJSON() ([]byte, error) {
	type message Message
	return jsonapi.MarshalWithExtra(message(m), m.Extra)
}

// MessageBody is the content of a message to send.
type MessageBody struct {
	Body string `json:"body"`
}

// Pagination selects a page of messages. The API returns the cursors of the
// surrounding pages along with each page.
type Pagination struct {
	Next     string `json:"next,omitempty" mapstructure:"next"`
	Previous string `json:"previous,omitempty" mapstructure:"previous"`
	Num      int    `json:"num,omitempty" mapstructure:"num"`
	Last     bool   `json:"last,omitempty" mapstructure:"last"`
}

type ListOptions struct {
	UnreadOnly bool   `json:"unread_only,omitempty"`
	TopicType  string `json:"topic_type,omitempty"`
}

type ReadOptions struct {
	Peek       bool        `json:"peek,omitempty"`
	UnreadOnly bool        `json:"unread_only,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type readParams struct {
	Channel Channel `json:"channel"`
	ReadOptions
}

type sendParams struct {
	Channel Channel     `json:"channel"`
	Message MessageBody `json:"message"`
}

type deleteParams struct {
	Channel   Channel `json:"channel"`
	MessageID int64   `json:"message_id"`
}

type listResult struct {
	Conversations []Conversation `mapstructure:"conversations"`
}

type readResult struct {
	Messages []struct {
		Msg Message `mapstructure:"msg"`
	} `mapstructure:"messages"`
	Pagination *Pagination `mapstructure:"pagination"`
}
