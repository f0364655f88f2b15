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
	"context"

	"code.vegaprotocol.io/keybot/libs/jsonapi"
	"code.vegaprotocol.io/keybot/session"
)

const apiName = "chat"

// Chat wraps the chat API of the platform. For more details about the API,
// see `keybase chat api`.
type Chat struct {
	session *session.Session
}

func New(s *session.Session) *Chat {
	return &Chat{
		session: s,
	}
}

// List returns the conversations of the current user. The options are
// optional.
func (c *Chat) List(ctx context.Context, opts *ListOptions) ([]Conversation, error) {
	if err := c.session.GuardInitialized(); err != nil {
		return nil, err
	}

	if opts == nil {
		opts = &ListOptions{}
	}

	res, err := c.run(ctx, "list", *opts)
	if err != nil {
		return nil, err
	}

	if jsonapi.IsEmpty(res) {
		return nil, session.NewEmptyResponseError(apiName, "list")
	}

	list := listResult{}
	if err := c.decode("list", res, &list); err != nil {
		return nil, err
	}

	if list.Conversations == nil {
		return []Conversation{}, nil
	}
	return list.Conversations, nil
}

// Read returns the messages of a channel, most recent first. The options are
// optional. Set Peek to leave the messages unread.
func (c *Chat) Read(ctx context.Context, channel Channel, opts *ReadOptions) ([]Message, error) {
	if err := c.session.GuardInitialized(); err != nil {
		return nil, err
	}

	params := readParams{
		Channel: channel,
	}
	if opts != nil {
		params.ReadOptions = *opts
	}

	res, err := c.run(ctx, "read", params)
	if err != nil {
		return nil, err
	}

	if jsonapi.IsEmpty(res) {
		return nil, session.NewEmptyResponseError(apiName, "read")
	}

	read := readResult{}
	if err := c.decode("read", res, &read); err != nil {
		return nil, err
	}

	messages := make([]Message, 0, len(read.Messages))
	for _, envelope := range read.Messages {
		messages = append(messages, envelope.Msg)
	}

	return messages, nil
}

// Send posts a message to a channel.
func (c *Chat) Send(ctx context.Context, channel Channel, message MessageBody) error {
	if err := c.session.GuardInitialized(); err != nil {
		return err
	}

	res, err := c.run(ctx, "send", sendParams{
		Channel: channel,
		Message: message,
	})
	if err != nil {
		return err
	}

	if jsonapi.IsEmpty(res) {
		return session.NewEmptyResponseError(apiName, "send")
	}

	return nil
}

// Delete removes a message from a channel. Only the messages sent by the
// current user can be deleted.
func (c *Chat) Delete(ctx context.Context, channel Channel, messageID int64) error {
	if err := c.session.GuardInitialized(); err != nil {
		return err
	}

	res, err := c.run(ctx, "delete", deleteParams{
		Channel:   channel,
		MessageID: messageID,
	})
	if err != nil {
		return err
	}

	if jsonapi.IsEmpty(res) {
		return session.NewEmptyResponseError(apiName, "delete")
	}

	return nil
}

func (c *Chat) run(ctx context.Context, method string, opts jsonapi.Options) (jsonapi.Result, error) {
	return c.session.RunAPICommand(ctx, jsonapi.Command{
		APIName: apiName,
		Method:  method,
		Options: opts,
	})
}

func (c *Chat) decode(method string, res jsonapi.Result, out interface{}) error {
	if err := jsonapi.Decode(res, out); err != nil {
		return session.NewTransportError(jsonapi.Command{APIName: apiName, Method: method}, err)
	}
	return nil
}
