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
	"code.vegaprotocol.io/keybot/chat"
	"code.vegaprotocol.io/keybot/cmd/keybot/commands/flags"

	"github.com/spf13/cobra"
)

var (
	supportedMembersTypes = []string{chat.MembersTypeImpTeamNative, chat.MembersTypeTeam, chat.MembersTypeKBFS}
	supportedTopicTypes   = []string{chat.TopicTypeChat, chat.TopicTypeDev}
)

// ChannelFlags selects the channel of a chat command.
type ChannelFlags struct {
	Name        string
	Public      bool
	MembersType string
	TopicType   string
	TopicName   string
}

func (f *ChannelFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Name,
		"channel", "c",
		"",
		`Name of the channel, such as "alice,bob" for a conversation between users, or the team name`,
	)
	cmd.Flags().BoolVar(&f.Public,
		"public",
		false,
		"Select the public channel",
	)
	cmd.Flags().StringVar(&f.MembersType,
		"members-type",
		"",
		"Type of the channel members: impteamnative, team or kbfs",
	)
	cmd.Flags().StringVar(&f.TopicType,
		"topic-type",
		"",
		"Type of the channel topic: chat or dev",
	)
	cmd.Flags().StringVar(&f.TopicName,
		"topic-name",
		"",
		`Channel within a team, such as "general"`,
	)
}

func (f *ChannelFlags) Validate() (chat.Channel, error) {
	if len(f.Name) == 0 {
		return chat.Channel{}, flags.MustBeSpecifiedError("channel")
	}

	if err := validateOneOf("members-type", f.MembersType, supportedMembersTypes); err != nil {
		return chat.Channel{}, err
	}

	if err := validateOneOf("topic-type", f.TopicType, supportedTopicTypes); err != nil {
		return chat.Channel{}, err
	}

	return chat.Channel{
		Name:        f.Name,
		Public:      f.Public,
		MembersType: f.MembersType,
		TopicType:   f.TopicType,
		TopicName:   f.TopicName,
	}, nil
}

// validateOneOf accepts an empty value, or one of the supported values.
func validateOneOf(name, value string, supported []string) error {
	if len(value) == 0 {
		return nil
	}
	for _, s := range supported {
		if value == s {
			return nil
		}
	}
	return flags.UnsupportedFlagValueError(name, value, supported)
}
