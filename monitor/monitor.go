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
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/tek4404/hardware"
	"github.com/jetsetilly/tek4404/monitor/dbgmem"
	"github.com/jetsetilly/tek4404/monitor/terminal"
	"github.com/jetsetilly/tek4404/script"
)

// Monitor is the interactive front-end to a Tek4404 instance.
type Monitor struct {
	tek  *hardware.Tek4404
	dbg  dbgmem.DbgMem
	term terminal.Terminal

	// created on first use by the SCRIPT command
	scr       *script.Script
	scrOutput *styleWriter
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(tek *hardware.Tek4404, term terminal.Terminal) *Monitor {
	return &Monitor{
		tek:  tek,
		dbg:  dbgmem.DbgMem{Tek: tek},
		term: term,
	}
}

// Start the monitor's input loop. The function returns when the QUIT command
// is entered, when the input is exhausted or when the user interrupts input.
func (m *Monitor) Start() error {
	err := m.term.Initialise()
	if err != nil {
		return fmt.Errorf("monitor: %w", err)
	}
	defer m.term.CleanUp()

	defer func() {
		if m.scr != nil {
			m.scr.Close()
		}
	}()

	m.term.RegisterTabCompletion(NewTabCompletion())

	for {
		m.updateStatus()

		input, err := m.term.TermRead(m.prompt())
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, terminal.ErrUserInterrupt) {
				return nil
			}
			return fmt.Errorf("monitor: %w", err)
		}

		err = m.Execute(input)
		if err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			m.printLine(terminal.StyleError, "%v", err)
		}
	}
}

func (m *Monitor) prompt() terminal.Prompt {
	return terminal.Prompt{
		Content: fmt.Sprintf("ctrl=%02x fc=%d", m.tek.ATU.Control().Value(), m.tek.CPU.FunctionCode()),
		Boot:    m.tek.ATU.Boot(),
		Pending: m.tek.CPU.Pending(),
	}
}

func (m *Monitor) updateStatus() {
	if st, ok := m.term.(terminal.Status); ok {
		st.SetStatus(m.tek.String())
	}
}

// Execute a single line of input. Returns ErrQuit if the line is the QUIT
// command.
func (m *Monitor) Execute(input string) error {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil
	}

	tokens[0] = strings.ToUpper(tokens[0])
	m.term.TermPrintLine(terminal.StyleEcho, strings.Join(tokens, " "))

	def, ok := definitions[tokens[0]]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, tokens[0])
	}

	args := tokens[1:]
	if len(args) < def.minArgs || len(args) > def.maxArgs {
		return fmt.Errorf("%w: %s", ErrArguments, def.usage)
	}

	return m.execute(tokens[0], args)
}
