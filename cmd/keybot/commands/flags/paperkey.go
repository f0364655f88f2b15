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
	"fmt"
	"os"
	"strings"

	vgterm "code.vegaprotocol.io/keybot/libs/term"
)

var (
	ErrPaperkeyFileIsEmpty        = errors.New("the paper key is empty")
	ErrPaperkeyRequiredWithoutTTY = errors.New("--paperkey-file flag must be specified when no terminal is attached")
)

// GetPaperkey reads the paper key from the file at path. Without a file, it
// is prompted on the terminal.
func GetPaperkey(path string) (string, error) {
	if len(path) != 0 {
		return ReadPaperkeyFile(path)
	}

	if !vgterm.HasTTY() {
		return "", ErrPaperkeyRequiredWithoutTTY
	}

	paperkey, err := vgterm.ReadSecret(os.Stderr, "Enter the paper key: ")
	if err != nil {
		return "", err
	}

	paperkey = strings.TrimSpace(paperkey)
	if len(paperkey) == 0 {
		return "", ErrPaperkeyFileIsEmpty
	}

	return paperkey, nil
}

// ReadPaperkeyFile reads the paper key stored in the file at path. The
// surrounding spaces and line breaks are ignored.
func ReadPaperkeyFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read the paper key file: %w", err)
	}

	paperkey := strings.TrimSpace(string(raw))
	if len(paperkey) == 0 {
		return "", ErrPaperkeyFileIsEmpty
	}

	return paperkey, nil
}
