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
	"time"

	"code.vegaprotocol.io/keybot/bot"
	"code.vegaprotocol.io/keybot/chat"
	"code.vegaprotocol.io/keybot/cmd/keybot/commands/cli"
	"code.vegaprotocol.io/keybot/cmd/keybot/commands/flags"
	"code.vegaprotocol.io/keybot/cmd/keybot/commands/printer"

	"github.com/spf13/cobra"
)

var (
	chatListLong = cli.LongDesc(`
		List the conversations of the user.
	`)

	chatListExample = cli.Examples(`
		# List all the conversations
		{{.Software}} chat list

		# List the conversations with unread messages
		{{.Software}} chat list --unread-only
	`)
)

type ChatListHandler func(context.Context, chat.ListOptions) ([]chat.Conversation, error)

func NewCmdChatList(w io.Writer, rf *RootFlags) *cobra.Command {
	h := func(ctx context.Context, opts chat.ListOptions) ([]chat.Conversation, error) {
		return withBot(ctx, rf, func(b *bot.Bot) ([]chat.Conversation, error) {
			return b.Chat.List(ctx, &opts)
		})
	}

	return BuildCmdChatList(w, h, rf)
}

func BuildCmdChatList(w io.Writer, handler ChatListHandler, rf *RootFlags) *cobra.Command {
	f := &ChatListFlags{}

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List the conversations",
		Long:    chatListLong,
		Example: chatListExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := f.Validate()
			if err != nil {
				return err
			}

			resp, err := handler(cmd.Context(), req)
			if err != nil {
				return err
			}

			switch rf.Output {
			case flags.InteractiveOutput:
				PrintChatListResponse(w, resp)
			case flags.JSONOutput:
				return printer.FprintJSON(w, resp)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&f.UnreadOnly,
		"unread-only",
		false,
		"Only list the conversations with unread messages",
	)
	cmd.Flags().StringVar(&f.TopicType,
		"topic-type",
		"",
		"Only list the conversations of this topic type: chat or dev",
	)

	return cmd
}

type ChatListFlags struct {
	UnreadOnly bool
	TopicType  string
}

func (f *ChatListFlags) Validate() (chat.ListOptions, error) {
	if err := validateOneOf("topic-type", f.TopicType, supportedTopicTypes); err != nil {
		return chat.ListOptions{}, err
	}

	return chat.ListOptions{
		UnreadOnly: f.UnreadOnly,
		TopicType:  f.TopicType,
	}, nil
}

func PrintChatListResponse(w io.Writer, conversations []chat.Conversation) {
	p := printer.NewInteractivePrinter(w)

	str := p.String()
	defer p.Print(str)

	if len(conversations) == 0 {
		str.BangMark().Text("No conversation found").NextLine()
		return
	}

	for _, conv := range conversations {
		str.ListItem().BoldText(channelName(conv.Channel))
		if conv.Unread {
			str.Text(" ").WarningText("(unread)")
		}
		if conv.ActiveAt != 0 {
			str.Text(" ").DimText("active " + time.Unix(conv.ActiveAt, 0).UTC().Format(time.RFC3339))
		}
		str.NextLine()
	}
}

func channelName(channel chat.Channel) string {
	if channel.TopicName != "" {
		return channel.Name + "#" + channel.TopicName
	}
	return channel.Name
}
