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

package flags

import (
	"errors"
	"slices"
)

// Outputs selected with --output.
const (
	InteractiveOutput = "interactive"
	JSONOutput        = "json"
)

// ErrUnsupportedOutput is printed as is, since the output to print it in is
// unknown.
var ErrUnsupportedOutput = errors.New("unsupported output, expect interactive or json")

var AvailableOutputs = []string{InteractiveOutput, JSONOutput}

func ValidateOutput(output string) error {
	switch {
	case output == "":
		return MustBeSpecifiedError("output")
	case !slices.Contains(AvailableOutputs, output):
		return ErrUnsupportedOutput
	default:
		return nil
	}
}
