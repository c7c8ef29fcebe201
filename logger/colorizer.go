// This file is part of Tek4404.
//
// Tek4404 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Tek4404 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Tek4404.  If not, see <https://www.gnu.org/licenses/>.

package logger

import (
	"io"
	"strings"

	"github.com/jetsetilly/tek4404/monitor/terminal/colorterm/easyterm/ansi"
)

// Colorizer applies basic coloring rules to logging output. Entries with a
// tag found in the Tags map are printed in the pen of that tag. Everything
// else is printed unchanged.
type Colorizer struct {
	out  io.Writer
	Tags map[string]string
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{
		out: out,
		Tags: map[string]string{
			"bus error": ansi.Pens["red"],
			"unmapped":  ansi.DimPens["yellow"],
			"romloader": ansi.DimPens["cyan"],
		},
	}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (int, error) {
	s := string(p)

	tag, _, ok := strings.Cut(s, ": ")
	if !ok {
		return c.out.Write(p)
	}

	pen, ok := c.Tags[tag]
	if !ok {
		return c.out.Write(p)
	}

	if _, err := io.WriteString(c.out, pen); err != nil {
		return 0, err
	}

	defer func() {
		_, _ = io.WriteString(c.out, ansi.NormalPen)
	}()

	return c.out.Write(p)
}
