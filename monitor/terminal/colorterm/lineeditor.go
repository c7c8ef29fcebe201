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

package colorterm

import (
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/jetsetilly/tek4404/monitor/terminal"
	"github.com/jetsetilly/tek4404/monitor/terminal/colorterm/easyterm"
	"github.com/jetsetilly/tek4404/monitor/terminal/colorterm/easyterm/ansi"
)

// LineEditor reads a line of input one rune at a time, providing cursor
// movement, command history and tab completion. The output is expected to be
// a terminal in raw mode.
type LineEditor struct {
	reader io.RuneReader
	output io.Writer

	history       []string
	tabCompletion terminal.TabCompletion

	// called when the user presses CTRL-Z
	OnSuspend func()
}

// NewLineEditor is the preferred method of initialisation for the LineEditor
// type.
func NewLineEditor(reader io.RuneReader, output io.Writer) *LineEditor {
	return &LineEditor{
		reader: reader,
		output: output,
	}
}

// SetTabCompletion sets the implementation used when the user presses the tab
// key. A nil value disables tab completion.
func (ed *LineEditor) SetTabCompletion(tc terminal.TabCompletion) {
	ed.tabCompletion = tc
}

// History returns a copy of the command history.
func (ed *LineEditor) History() []string {
	h := make([]string, len(ed.history))
	copy(h, ed.history)
	return h
}

// redraw the entire line and place the cursor
func (ed *LineEditor) redraw(prompt string, input []rune, cursor int) {
	fmt.Fprintf(ed.output, "\r%s%s%s%s%s", ansi.ClearLine, ansi.PenStyles["bold"], prompt, ansi.NormalPen, string(input))
	fmt.Fprintf(ed.output, "\r%s", ansi.CursorMove(utf8.RuneCountInString(prompt)+cursor))
}

// ReadLine returns the line of input typed by the user. Returns io.EOF if the
// user presses CTRL-D on an empty line and terminal.ErrUserInterrupt if the
// user presses CTRL-C.
func (ed *LineEditor) ReadLine(prompt string) (string, error) {
	var input []rune
	cursor := 0
	history := len(ed.history)

	// the latest input when we scroll through history. we don't want to lose
	// what we've typed in case the user wants to resume where we left off
	var buffInput []rune

	for {
		ed.redraw(prompt, input, cursor)

		r, _, err := ed.reader.ReadRune()
		if err != nil {
			return "", err
		}

		switch r {
		case easyterm.KeyTab:
			if ed.tabCompletion != nil {
				s := []rune(ed.tabCompletion.Complete(string(input[:cursor])))
				input = append(s, input[cursor:]...)
				cursor = len(s)
			}

		case easyterm.KeyInterrupt:
			io.WriteString(ed.output, "\r\n")
			return "", terminal.ErrUserInterrupt

		case easyterm.KeyEOF:
			if len(input) == 0 {
				io.WriteString(ed.output, "\r\n")
				return "", io.EOF
			}

		case easyterm.KeySuspend:
			if ed.OnSuspend != nil {
				ed.OnSuspend()
			}

		case easyterm.KeyCarriageReturn, '\n':
			s := string(input)
			if len(input) > 0 {
				if len(ed.history) == 0 || ed.history[len(ed.history)-1] != s {
					ed.history = append(ed.history, s)
				}
			}
			io.WriteString(ed.output, "\r\n")
			return s, nil

		case easyterm.KeyEsc:
			r, _, err := ed.reader.ReadRune()
			if err != nil {
				return "", err
			}
			if r != easyterm.EscCursor {
				continue
			}

			r, _, err = ed.reader.ReadRune()
			if err != nil {
				return "", err
			}

			switch r {
			case easyterm.CursorUp:
				if history > 0 {
					if history == len(ed.history) {
						buffInput = append(buffInput[:0], input...)
					}
					history--
					input = []rune(ed.history[history])
					cursor = len(input)
				}
			case easyterm.CursorDown:
				if history < len(ed.history)-1 {
					history++
					input = []rune(ed.history[history])
					cursor = len(input)
				} else if history == len(ed.history)-1 {
					history++
					input = append([]rune{}, buffInput...)
					cursor = len(input)
				}
			case easyterm.CursorForward:
				if cursor < len(input) {
					cursor++
				}
			case easyterm.CursorBackward:
				if cursor > 0 {
					cursor--
				}
			case easyterm.CursorHome:
				cursor = 0
			case easyterm.CursorEnd:
				cursor = len(input)
			case easyterm.CursorDelete:
				// delete is sent as ESC [ 3 ~
				r, _, err = ed.reader.ReadRune()
				if err != nil {
					return "", err
				}
				if r == '~' && cursor < len(input) {
					input = append(input[:cursor], input[cursor+1:]...)
					history = len(ed.history)
				}
			}

		case easyterm.KeyBackspace, easyterm.KeyDelete:
			if cursor > 0 {
				input = append(input[:cursor-1], input[cursor:]...)
				cursor--
				history = len(ed.history)
			}

		default:
			if unicode.IsPrint(r) {
				input = append(input[:cursor], append([]rune{r}, input[cursor:]...)...)
				cursor++
				history = len(ed.history)
			}
		}
	}
}
