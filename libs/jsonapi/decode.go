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

package jsonapi

import (
	"encoding/json"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Decode converts a raw result into the typed value pointed by out. Fields are
// matched on their `mapstructure` tag, then case-insensitively on their name.
// Fields tagged `mapstructure:",remain"` collect the members nothing else
// matched.
func Decode(result Result, out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("could not build the result decoder: %w", err)
	}

	if err := decoder.Decode(result); err != nil {
		return fmt.Errorf("the result does not match the expected shape: %w", err)
	}

	return nil
}

// MarshalWithExtra encodes v as a JSON object and adds the members of extra
// that v does not already define.
func MarshalWithExtra(v interface{}, extra map[string]interface{}) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	if len(extra) == 0 {
		return raw, nil
	}

	members := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &members); err != nil {
		return nil, err
	}

	for key, value := range extra {
		if _, ok := members[key]; ok {
			continue
		}
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		members[key] = encoded
	}

	return json.Marshal(members)
}
