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

package monitor

import (
	"bytes"
	"fmt"

	"github.com/jetsetilly/tek4404/monitor/terminal"
)

func (m *Monitor) printLine(style terminal.Style, s string, a ...any) {
	m.term.TermPrintLine(style, fmt.Sprintf(s, a...))
}

// styleWriter is an io.Writer that sends each complete line to the terminal
// with the specified style.
type styleWriter struct {
	term  terminal.Output
	style terminal.Style
	buf   []byte
}

func (w *styleWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.term.TermPrintLine(w.style, string(w.buf[:i]))
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

// Flush any partial line.
func (w *styleWriter) Flush() {
	if len(w.buf) > 0 {
		w.term.TermPrintLine(w.style, string(w.buf))
		w.buf = w.buf[:0]
	}
}
