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

package plainterm_test

import (
	"io"
	"strings"
	"testing"

	"github.com/jetsetilly/tek4404/monitor/terminal"
	"github.com/jetsetilly/tek4404/monitor/terminal/plainterm"
	"github.com/jetsetilly/tek4404/test"
)

func TestPlainTerminal(t *testing.T) {
	out := &test.CompareWriter{}
	pt := plainterm.NewPlainTerminal(strings.NewReader("read 100\r\nquit"), out)
	test.DemandSuccess(t, pt.Initialise())
	defer pt.CleanUp()

	test.ExpectFailure(t, pt.IsInteractive())
	test.ExpectFailure(t, pt.IsRealTerminal())

	s, err := pt.TermRead(terminal.Prompt{})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "read 100")

	s, err = pt.TermRead(terminal.Prompt{})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "quit")

	_, err = pt.TermRead(terminal.Prompt{})
	test.ExpectEquality(t, err, io.EOF)

	// no prompt is printed for non-interactive input
	test.ExpectSuccess(t, out.Compare(""))

	pt.TermPrintLine(terminal.StyleEcho, "READ 100")
	pt.TermPrintLine(terminal.StyleFeedback, "000100 -> 0000")
	pt.TermPrintLine(terminal.StyleError, "unknown command")
	pt.TermPrintLine(terminal.StyleFault, "bus error")
	test.ExpectSuccess(t, out.Compare("000100 -> 0000\n* unknown command\n! bus error\n"))

	out.Clear()
	pt.Silence(true)
	pt.TermPrintLine(terminal.StyleFeedback, "000100 -> 0000")
	pt.TermPrintLine(terminal.StyleError, "unknown command")
	test.ExpectSuccess(t, out.Compare("* unknown command\n"))
}
