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
	"strconv"

	"code.vegaprotocol.io/keybot/bot"
	"code.vegaprotocol.io/keybot/chat"
	"code.vegaprotocol.io/keybot/cmd/keybot/commands/cli"
	"code.vegaprotocol.io/keybot/cmd/keybot/commands/flags"
	"code.vegaprotocol.io/keybot/cmd/keybot/commands/printer"

	"github.com/spf13/cobra"
)

var (
	chatDeleteLong = cli.LongDesc(`
		Delete a message sent by the user. The message IDs are listed by
		the read command.
	`)

	chatDeleteExample = cli.Examples(`
		# Delete a message from a conversation
		{{.Software}} chat delete --channel alice,bob MESSAGE_ID
	`)
)

type ChatDeleteHandler func(context.Context, chat.Channel, int64) error

func NewCmdChatDelete(w io.Writer, rf *RootFlags) *cobra.Command {
	h := func(ctx context.Context, channel chat.Channel, messageID int64) error {
		_, err := withBot(ctx, rf, func(b *bot.Bot) (struct{}, error) {
			return struct{}{}, b.Chat.Delete(ctx, channel, messageID)
		})
		return err
	}

	return BuildCmdChatDelete(w, h, rf)
}

func BuildCmdChatDelete(w io.Writer, handler ChatDeleteHandler, rf *RootFlags) *cobra.Command {
	f := &ChatDeleteFlags{}

	cmd := &cobra.Command{
		Use:     "delete MESSAGE_ID",
		Short:   "Delete a message from a channel",
		Long:    chatDeleteLong,
		Example: chatDeleteExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			rawID, err := singleArg(args, "message ID")
			if err != nil {
				return err
			}
			f.RawMessageID = rawID

			channel, messageID, err := f.Validate()
			if err != nil {
				return err
			}

			if err := handler(cmd.Context(), channel, messageID); err != nil {
				return err
			}

			if rf.Output == flags.InteractiveOutput {
				p := printer.NewInteractivePrinter(w)
				p.Print(p.String().CheckMark().SuccessText("Message ").BoldText(rawID).SuccessText(" deleted from ").BoldText(channelName(channel)).NextLine())
			}

			return nil
		},
	}

	f.Channel.register(cmd)

	return cmd
}

type ChatDeleteFlags struct {
	Channel      ChannelFlags
	RawMessageID string
}

func (f *ChatDeleteFlags) Validate() (chat.Channel, int64, error) {
	channel, err := f.Channel.Validate()
	if err != nil {
		return chat.Channel{}, 0, err
	}

	if len(f.RawMessageID) == 0 {
		return chat.Channel{}, 0, flags.ArgMustBeSpecifiedError("message ID")
	}

	messageID, err := strconv.ParseInt(f.RawMessageID, 10, 64)
	if err != nil || messageID <= 0 {
		return chat.Channel{}, 0, flags.ArgMustBeIntegerError("message ID")
	}

	return channel, messageID, nil
}
