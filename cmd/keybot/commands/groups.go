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
	"io"

	"github.com/spf13/cobra"
)

func NewCmdWallet(w io.Writer, rf *RootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Manage the wallet of the user",
		Long:  "Manage the Stellar accounts of the user, and send payments to other users.",
	}

	cmd.AddCommand(NewCmdWalletBalances(w, rf))
	cmd.AddCommand(NewCmdWalletHistory(w, rf))
	cmd.AddCommand(NewCmdWalletDetails(w, rf))
	cmd.AddCommand(NewCmdWalletLookup(w, rf))
	cmd.AddCommand(NewCmdWalletSend(w, rf))
	cmd.AddCommand(NewCmdWalletCancel(w, rf))
	return cmd
}

func NewCmdChat(w io.Writer, rf *RootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Manage the conversations of the user",
		Long:  "List the conversations of the user, read and send messages.",
	}

	cmd.AddCommand(NewCmdChatList(w, rf))
	cmd.AddCommand(NewCmdChatRead(w, rf))
	cmd.AddCommand(NewCmdChatSend(w, rf))
	cmd.AddCommand(NewCmdChatDelete(w, rf))
	return cmd
}
