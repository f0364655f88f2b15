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

package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

type InteractivePrinter struct {
	writer    io.Writer
	profile   termenv.Profile
	checkMark string
	crossMark string
	bangMark  string
	arrow     string
}

func NewInteractivePrinter(w io.Writer) *InteractivePrinter {
	profile := termenv.EnvColorProfile()
	return &InteractivePrinter{
		writer:    w,
		profile:   profile,
		checkMark: termenv.String("✓ ").Foreground(profile.Color("2")).String(),
		crossMark: termenv.String("✗ ").Foreground(profile.Color("1")).String(),
		bangMark:  termenv.String("! ").Foreground(profile.Color("3")).String(),
		arrow:     termenv.String("➜ ").String(),
	}
}

func (p *InteractivePrinter) String() *FormattedString {
	return &FormattedString{
		printer: p,
	}
}

func (p *InteractivePrinter) Print(str *FormattedString) {
	_, _ = fmt.Fprint(p.writer, str.builder.String())
}

// FormattedString accumulates styled text until it is printed.
type FormattedString struct {
	printer *InteractivePrinter
	builder strings.Builder
}

func (s *FormattedString) Text(str string) *FormattedString {
	s.builder.WriteString(str)
	return s
}

func (s *FormattedString) SuccessText(str string) *FormattedString {
	return s.styled(str, "2")
}

func (s *FormattedString) DangerText(str string) *FormattedString {
	return s.styled(str, "1")
}

func (s *FormattedString) WarningText(str string) *FormattedString {
	return s.styled(str, "3")
}

func (s *FormattedString) BoldText(str string) *FormattedString {
	if s.printer.profile == termenv.Ascii {
		return s.Text(str)
	}
	s.builder.WriteString(termenv.String(str).Bold().String())
	return s
}

func (s *FormattedString) DimText(str string) *FormattedString {
	if s.printer.profile == termenv.Ascii {
		return s.Text(str)
	}
	s.builder.WriteString(termenv.String(str).Faint().String())
	return s
}

func (s *FormattedString) CheckMark() *FormattedString {
	s.builder.WriteString(s.printer.checkMark)
	return s
}

func (s *FormattedString) CrossMark() *FormattedString {
	s.builder.WriteString(s.printer.crossMark)
	return s
}

func (s *FormattedString) BangMark() *FormattedString {
	s.builder.WriteString(s.printer.bangMark)
	return s
}

func (s *FormattedString) ListItem() *FormattedString {
	s.builder.WriteString(s.printer.arrow)
	return s
}

func (s *FormattedString) Pad() *FormattedString {
	s.builder.WriteString("  ")
	return s
}

func (s *FormattedString) NextLine() *FormattedString {
	s.builder.WriteString("\n")
	return s
}

func (s *FormattedString) NextSection() *FormattedString {
	s.builder.WriteString("\n\n")
	return s
}

func (s *FormattedString) styled(str, color string) *FormattedString {
	s.builder.WriteString(termenv.String(str).Foreground(s.printer.profile.Color(color)).String())
	return s
}

// FprintJSON prints the data as an indented JSON document.
func FprintJSON(w io.Writer, data interface{}) error {
	buf, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("couldn't format JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(buf))
	return err
}
