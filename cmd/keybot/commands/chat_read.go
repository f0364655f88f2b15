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
	chatReadLong = cli.LongDesc(`
		Read the messages of a channel, most recent first. Reading a channel
		marks its messages as read, unless --peek is set.
	`)

	chatReadExample = cli.Examples(`
		# Read the conversation between two users
		{{.Software}} chat read --channel alice,bob

		# Read the last 10 messages of a team channel without marking them as read
		{{.Software}} chat read --channel TEAM --members-type team --topic-name general --num 10 --peek
	`)
)

type ChatReadHandler func(context.Context, chat.Channel, *chat.ReadOptions) ([]chat.Message, error)

func NewCmdChatRead(w io.Writer, rf *RootFlags) *cobra.Command {
	h := func(ctx context.Context, channel chat.Channel, opts *chat.ReadOptions) ([]chat.Message, error) {
		return withBot(ctx, rf, func(b *bot.Bot) ([]chat.Message, error) {
			return b.Chat.Read(ctx, channel, opts)
		})
	}

	return BuildCmdChatRead(w, h, rf)
}

func BuildCmdChatRead(w io.Writer, handler ChatReadHandler, rf *RootFlags) *cobra.Command {
	f := &ChatReadFlags{}

	cmd := &cobra.Command{
		Use:     "read",
		Short:   "Read the messages of a channel",
		Long:    chatReadLong,
		Example: chatReadExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			channel, opts, err := f.Validate()
			if err != nil {
				return err
			}

			resp, err := handler(cmd.Context(), channel, opts)
			if err != nil {
				return err
			}

			switch rf.Output {
			case flags.InteractiveOutput:
				PrintChatReadResponse(w, resp)
			case flags.JSONOutput:
				return printer.FprintJSON(w, resp)
			}

			return nil
		},
	}

	f.Channel.register(cmd)
	cmd.Flags().BoolVar(&f.Peek,
		"peek",
		false,
		"Leave the messages unread",
	)
	cmd.Flags().BoolVar(&f.UnreadOnly,
		"unread-only",
		false,
		"Only read the unread messages",
	)
	cmd.Flags().IntVarP(&f.Num,
		"num", "n",
		0,
		"Maximum number of messages to read",
	)
	cmd.Flags().StringVar(&f.Next,
		"next",
		"",
		"Cursor of the next page, as returned by a previous read",
	)
	cmd.Flags().StringVar(&f.Previous,
		"previous",
		"",
		"Cursor of the previous page, as returned by a previous read",
	)

	return cmd
}

type ChatReadFlags struct {
	Channel    ChannelFlags
	Peek       bool
	UnreadOnly bool
	Num        int
	Next       string
	Previous   string
}

func (f *ChatReadFlags) Validate() (chat.Channel, *chat.ReadOptions, error) {
	channel, err := f.Channel.Validate()
	if err != nil {
		return chat.Channel{}, nil, err
	}

	if f.Num < 0 {
		return chat.Channel{}, nil, flags.MustBePositiveError("num")
	}

	if len(f.Next) != 0 && len(f.Previous) != 0 {
		return chat.Channel{}, nil, flags.MutuallyExclusiveError("next", "previous")
	}

	opts := &chat.ReadOptions{
		Peek:       f.Peek,
		UnreadOnly: f.UnreadOnly,
	}

	if f.Num != 0 || len(f.Next) != 0 || len(f.Previous) != 0 {
		opts.Pagination = &chat.Pagination{
			Num:      f.Num,
			Next:     f.Next,
			Previous: f.Previous,
		}
	}

	return channel, opts, nil
}

func PrintChatReadResponse(w io.Writer, messages []chat.Message) {
	p := printer.NewInteractivePrinter(w)

	str := p.String()
	defer p.Print(str)

	if len(messages) == 0 {
		str.BangMark().Text("No message found").NextLine()
		return
	}

	for _, msg := range messages {
		if msg.SentAt != 0 {
			str.DimText(time.Unix(msg.SentAt, 0).UTC().Format(time.RFC3339)).Text(" ")
		}
		str.BoldText(msg.Sender.Username).Text(": ")
		if msg.Content.Text != nil {
			str.Text(msg.Content.Text.Body)
		} else {
			str.DimText("<" + msg.Content.Type + ">")
		}
		str.NextLine()
	}
}
