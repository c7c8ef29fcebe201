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

package script

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/tek4404/hardware"
	"github.com/jetsetilly/tek4404/monitor/dbgmem"
	lua "github.com/yuin/gopher-lua"
)

// Script is a Lua state bound to a Tek4404 instance.
type Script struct {
	tek    *hardware.Tek4404
	dbg    dbgmem.DbgMem
	output io.Writer

	L *lua.LState
}

// NewScript is the preferred method of initialisation for the Script type.
// Output from the Lua print function is sent to the io.Writer.
func NewScript(tek *hardware.Tek4404, output io.Writer) *Script {
	scr := &Script{
		tek:    tek,
		dbg:    dbgmem.DbgMem{Tek: tek},
		output: output,
		L:      lua.NewState(),
	}

	for name, fn := range map[string]lua.LGFunction{
		"print":     scr.print,
		"read":      scr.read,
		"write":     scr.write,
		"peek":      scr.peek,
		"poke":      scr.poke,
		"translate": scr.translate,
		"control":   scr.control,
		"entry":     scr.entry,
		"fc":        scr.fc,
		"fault":     scr.fault,
		"ack":       scr.ack,
		"reset":     scr.reset,
		"boot":      scr.boot,
		"log":       scr.log,
	} {
		scr.L.SetGlobal(name, scr.L.NewFunction(fn))
	}

	return scr
}

// Close the Lua state. The Script should not be used after Close().
func (scr *Script) Close() {
	scr.L.Close()
}

// RunFile loads and runs the named Lua file.
func (scr *Script) RunFile(filename string) error {
	err := scr.L.DoFile(filename)
	if err != nil {
		return fmt.Errorf("script: %w", err)
	}
	return nil
}

// RunString runs the Lua source.
func (scr *Script) RunString(source string) error {
	err := scr.L.DoString(source)
	if err != nil {
		return fmt.Errorf("script: %w", err)
	}
	return nil
}

// the arguments to a Lua function joined with a single space
func joinArgs(L *lua.LState) string {
	var s []string
	for i := 1; i <= L.GetTop(); i++ {
		s = append(s, L.ToStringMeta(L.Get(i)).String())
	}
	return strings.Join(s, " ")
}

func (scr *Script) print(L *lua.LState) int {
	fmt.Fprintln(scr.output, joinArgs(L))
	return 0
}
