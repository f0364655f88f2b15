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

	"code.vegaprotocol.io/keybot/cmd/keybot/commands/flags"
	"code.vegaprotocol.io/keybot/cmd/keybot/commands/printer"
	"code.vegaprotocol.io/keybot/version"

	"github.com/spf13/cobra"
)

func NewCmdVersion(w io.Writer, rf *RootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of the software",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			info := version.GetInfo()

			switch rf.Output {
			case flags.InteractiveOutput:
				p := printer.NewInteractivePrinter(w)
				str := p.String().Text("keybot ").BoldText(info.Version)
				if info.Hash != "" {
					str.Text(" ").DimText("(" + info.Hash + ")")
				}
				p.Print(str.Text(" built with ").Text(info.GoVersion).NextLine())
			case flags.JSONOutput:
				return printer.FprintJSON(w, info)
			}

			return nil
		},
	}
}
