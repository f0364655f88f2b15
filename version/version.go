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

package version

import (
	"runtime"
	"runtime/debug"
)

var (
	cliVersionHash = ""
	// Set at build time with -ldflags "-X code.vegaprotocol.io/keybot/version.cliVersion=vX.Y.Z".
	cliVersion = "v0.1.0+dev"
)

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	modified := false
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			cliVersionHash = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if modified && cliVersionHash != "" {
		cliVersionHash += "-modified"
	}
}

// Info describes the running build.
type Info struct {
	Version   string `json:"version"`
	Hash      string `json:"hash"`
	GoVersion string `json:"goVersion"`
}

func Get() string {
	return cliVersion
}

func GetCommitHash() string {
	return cliVersionHash
}

func GetInfo() Info {
	return Info{
		Version:   Get(),
		Hash:      GetCommitHash(),
		GoVersion: runtime.Version(),
	}
}
