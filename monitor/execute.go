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
	"strconv"
	"strings"

	"github.com/jetsetilly/tek4404/hardware/memory/bus"
	"github.com/jetsetilly/tek4404/hardware/memory/memorymap"
	"github.com/jetsetilly/tek4404/logger"
	"github.com/jetsetilly/tek4404/monitor/dbgmem"
	"github.com/jetsetilly/tek4404/monitor/terminal"
	"github.com/jetsetilly/tek4404/paths"
	"github.com/jetsetilly/tek4404/prefs"
	"github.com/jetsetilly/tek4404/script"
)

// the optional width argument at index n
func width(args []string, n int) (dbgmem.Width, error) {
	if len(args) <= n {
		return dbgmem.Word, nil
	}
	return dbgmem.ParseWidth(args[n])
}

// parse a hexadecimal value that must fit in the number of bits
func value(s string, bits int) (uint32, error) {
	v, err := dbgmem.ParseAddress(s)
	if err != nil {
		return 0, err
	}
	if v >= 1<<bits {
		return 0, fmt.Errorf("value too large (%s)", s)
	}
	return v, nil
}

func (m *Monitor) printAccess(ai *dbgmem.AddressInfo) {
	if ai.Fault != nil {
		m.printLine(terminal.StyleFault, "%s", ai)
		return
	}
	m.printLine(terminal.StyleFeedback, "%s", ai)
}

func (m *Monitor) execute(cmd string, args []string) error {
	switch cmd {
	case KeywordRead, KeywordPeek:
		addr, err := dbgmem.ParseAddress(args[0])
		if err != nil {
			return err
		}
		w, err := width(args, 1)
		if err != nil {
			return err
		}

		var ai *dbgmem.AddressInfo
		if cmd == KeywordRead {
			ai, err = m.dbg.Read(addr, w)
		} else {
			ai, err = m.dbg.Peek(addr, w)
			if errors.Is(err, bus.ErrUnmapped) {
				err = nil
			}
		}
		if err != nil {
			return err
		}
		m.printAccess(ai)

	case KeywordWrite, KeywordPoke:
		addr, err := dbgmem.ParseAddress(args[0])
		if err != nil {
			return err
		}
		w, err := width(args, 2)
		if err != nil {
			return err
		}
		bits := 16
		if w == dbgmem.Byte {
			bits = 8
		}
		v, err := value(args[1], bits)
		if err != nil {
			return err
		}

		var ai *dbgmem.AddressInfo
		if cmd == KeywordWrite {
			ai, err = m.dbg.Write(addr, uint16(v), w)
		} else {
			ai, err = m.dbg.Poke(addr, uint16(v), w)
		}
		if err != nil {
			return err
		}
		m.printAccess(ai)

	case KeywordTranslate:
		addr, err := dbgmem.ParseAddress(args[0])
		if err != nil {
			return err
		}
		read := true
		if len(args) > 1 {
			switch strings.ToUpper(args[1]) {
			case "READ":
			case "WRITE":
				read = false
			default:
				return fmt.Errorf("unrecognised access (%s)", args[1])
			}
		}
		ai, err := m.dbg.GetAddressInfo(addr, dbgmem.Byte, read)
		if err != nil {
			return err
		}
		m.printLine(terminal.StyleFeedback, "%s", ai)

	case KeywordMap:
		s := m.tek.ATU.Table.String()
		if s == "" {
			m.printLine(terminal.StyleFeedback, "page table is empty")
			return nil
		}
		for _, l := range strings.Split(strings.TrimSuffix(s, "\n"), "\n") {
			m.printLine(terminal.StyleFeedback, "%s", l)
		}

	case KeywordEntry:
		idx, err := value(args[0], memorymap.PageBits)
		if err != nil {
			return err
		}
		if len(args) > 1 {
			v, err := value(args[1], 16)
			if err != nil {
				return err
			}
			m.tek.ATU.Table.Write(idx, uint16(v), bus.MaskWord)
		}
		e := m.tek.ATU.Table.Entry(idx)
		m.printLine(terminal.StyleFeedback, "entry %03x: %04x %s", idx, uint16(e), e)

	case KeywordControl:
		if len(args) > 0 {
			v, err := value(args[0], 8)
			if err != nil {
				return err
			}
			m.tek.ATU.Write(memorymap.MapControlRegister, uint16(v)<<8, bus.MaskHigh)
		}
		m.printLine(terminal.StyleFeedback, "%s", m.tek.ATU)

	case KeywordFC:
		if len(args) > 0 {
			v, err := value(args[0], 3)
			if err != nil {
				return err
			}
			m.tek.CPU.SetFunctionCode(bus.FunctionCode(v))
		}
		fc := m.tek.CPU.FunctionCode()
		m.printLine(terminal.StyleFeedback, "function code: %d (%s)", fc, fc)

	case KeywordFault:
		if m.tek.CPU.Pulses() == 0 {
			m.printLine(terminal.StyleFeedback, "no bus errors")
			return nil
		}
		state := "acknowledged"
		if m.tek.CPU.Pending() {
			state = "pending"
		}
		m.printLine(terminal.StyleFault, "%s [%s] (total %d)", m.tek.CPU.Detail(), state, m.tek.CPU.Pulses())

	case KeywordAck:
		f, ok := m.tek.CPU.Acknowledge()
		if !ok {
			m.printLine(terminal.StyleFeedback, "no pending bus error")
			return nil
		}
		m.printLine(terminal.StyleFeedback, "acknowledged: %s", f)

	case KeywordReset:
		m.tek.Reset()
		m.printLine(terminal.StyleFeedback, "machine reset")

	case KeywordMemMap:
		for _, l := range strings.Split(strings.TrimSuffix(memorymap.Summary(), "\n"), "\n") {
			m.printLine(terminal.StyleFeedback, "%s", l)
		}

	case KeywordLog:
		w := &styleWriter{term: m.term, style: terminal.StyleLog}
		defer w.Flush()

		if len(args) == 0 {
			logger.Write(w)
			return nil
		}
		if strings.ToUpper(args[0]) == "CLEAR" {
			logger.Clear()
			return nil
		}
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return fmt.Errorf("log: not a valid number of entries (%s)", args[0])
		}
		logger.Tail(w, n)

	case KeywordMemViz:
		fn := fmt.Sprintf("%s.dot", paths.UniqueFilename("memviz", "atu"))
		if len(args) > 0 {
			fn = args[0]
		}
		err := m.memviz(fn)
		if err != nil {
			return err
		}
		m.printLine(terminal.StyleFeedback, "ATU state written to %s", fn)

	case KeywordScript:
		if m.scr == nil {
			m.scrOutput = &styleWriter{term: m.term, style: terminal.StyleScript}
			m.scr = script.NewScript(m.tek, m.scrOutput)
		}
		defer m.scrOutput.Flush()
		return m.scr.RunFile(args[0])

	case KeywordPrefs:
		return m.prefs(args)

	case KeywordHelp:
		if len(args) == 0 {
			m.printLine(terminal.StyleHelp, "%s", strings.Join(Commands, " "))
			return nil
		}
		c := strings.ToUpper(args[0])
		h, ok := Help[c]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
		}
		m.printLine(terminal.StyleHelp, "%s", h)
		m.printLine(terminal.StyleHelp, "usage: %s", definitions[c].usage)

	case KeywordQuit:
		return ErrQuit
	}

	return nil
}

func (m *Monitor) prefs(args []string) error {
	p := m.tek.Env.Prefs

	if len(args) == 0 {
		for _, l := range strings.Split(strings.TrimSuffix(p.String(), "\n"), "\n") {
			m.printLine(terminal.StyleFeedback, "%s", l)
		}
		return nil
	}

	var toggle *prefs.Bool

	switch strings.ToUpper(args[0]) {
	case "SAVE":
		err := p.Save()
		if err != nil {
			return err
		}
		m.printLine(terminal.StyleFeedback, "preferences saved")
		return nil
	case "LOAD":
		err := p.Load()
		if err != nil {
			return err
		}
		m.printLine(terminal.StyleFeedback, "preferences loaded")
		return nil
	case "RANDSTATE":
		toggle = &p.RandomState
	case "LOGFAULTS":
		toggle = &p.LogFaults
	case "LOGUNMAPPED":
		toggle = &p.LogUnmapped
	default:
		return fmt.Errorf("prefs: unrecognised option (%s)", args[0])
	}

	err := toggle.Set(!toggle.Get().(bool))
	if err != nil {
		return err
	}
	m.printLine(terminal.StyleFeedback, "%s: %s", strings.ToLower(args[0]), toggle)

	return nil
}
