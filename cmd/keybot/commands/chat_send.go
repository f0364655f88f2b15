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

package cmd

import (
	"context"
	"io"

	"code.vegaprotocol.io/keybot/bot"
	"code.vegaprotocol.io/keybot/chat"
	"code.vegaprotocol.io/keybot/cmd/keybot/commands/cli"
	"code.vegaprotocol.io/keybot/cmd/keybot/commands/flags"
	"code.vegaprotocol.io/keybot/cmd/keybot/commands/printer"

	"github.com/spf13/cobra"
)

var (
	chatSendLong = cli.LongDesc(`
		Send a text message to a channel.
	`)

	chatSendExample = cli.Examples(`
		# Send a message to another user
		{{.Software}} chat send --channel alice,bob "Hello Bob!"
	`)
)

type ChatSendHandler func(context.Context, chat.Channel, chat.MessageBody) error

func NewCmdChatSend(w io.Writer, rf *RootFlags) *cobra.Command {
	h := func(ctx context.Context, channel chat.Channel, message chat.MessageBody) error {
		_, err := withBot(ctx, rf, func(b *bot.Bot) (struct{}, error) {
			return struct{}{}, b.Chat.Send(ctx, channel, message)
		})
		return err
	}

	return BuildCmdChatSend(w, h, rf)
}

func BuildCmdChatSend(w io.Writer, handler ChatSendHandler, rf *RootFlags) *cobra.Command {
	f := &ChatSendFlags{}

	cmd := &cobra.Command{
		Use:     "send MESSAGE",
		Short:   "Send a message to a channel",
		Long:    chatSendLong,
		Example: chatSendExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := singleArg(args, "message")
			if err != nil {
				return err
			}
			f.Body = body

			channel, message, err := f.Validate()
			if err != nil {
				return err
			}

			if err := handler(cmd.Context(), channel, message); err != nil {
				return err
			}

			if rf.Output == flags.InteractiveOutput {
				p := printer.NewInteractivePrinter(w)
				p.Print(p.String().CheckMark().SuccessText("Message sent to ").BoldText(channelName(channel)).NextLine())
			}

			return nil
		},
	}

	f.Channel.register(cmd)

	return cmd
}

type ChatSendFlags struct {
	Channel ChannelFlags
	Body    string
}

func (f *ChatSendFlags) Validate() (chat.Channel, chat.MessageBody, error) {
	channel, err := f.Channel.Validate()
	if err != nil {
		return chat.Channel{}, chat.MessageBody{}, err
	}

	if len(f.Body) == 0 {
		return chat.Channel{}, chat.MessageBody{}, flags.ArgMustBeSpecifiedError("message")
	}

	return channel, chat.MessageBody{Body: f.Body}, nil
}
