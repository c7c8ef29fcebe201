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
	"github.com/jetsetilly/tek4404/hardware/memory/bus"
	"github.com/jetsetilly/tek4404/hardware/memory/memorymap"
	"github.com/jetsetilly/tek4404/logger"
	"github.com/jetsetilly/tek4404/monitor/dbgmem"
	lua "github.com/yuin/gopher-lua"
)

// argument n as an unsigned value. raises a Lua error if the argument is not
// a number or is negative
func checkUint(L *lua.LState, n int) uint32 {
	v := L.CheckInt64(n)
	if v < 0 || v > 0xffffffff {
		L.ArgError(n, "value out of range")
	}
	return uint32(v)
}

// argument n as a value for the data bus. raises a Lua error if the value
// does not fit in a word
func checkData(L *lua.LState, n int) uint16 {
	v := checkUint(L, n)
	if v > 0xffff {
		L.ArgError(n, "value too large for data bus")
	}
	return uint16(v)
}

// the optional width argument at n
func optWidth(L *lua.LState, n int) dbgmem.Width {
	w, err := dbgmem.ParseWidth(L.OptString(n, "w"))
	if err != nil {
		L.ArgError(n, err.Error())
	}
	return w
}

func (scr *Script) read(L *lua.LState) int {
	ai, err := scr.dbg.Read(checkUint(L, 1), optWidth(L, 2))
	if err != nil {
		L.RaiseError("read: %v", err)
		return 0
	}
	L.Push(lua.LNumber(ai.Data))
	L.Push(lua.LBool(ai.Fault != nil))
	return 2
}

func (scr *Script) write(L *lua.LState) int {
	ai, err := scr.dbg.Write(checkUint(L, 1), checkData(L, 2), optWidth(L, 3))
	if err != nil {
		L.RaiseError("write: %v", err)
		return 0
	}
	L.Push(lua.LBool(ai.Fault != nil))
	return 1
}

func (scr *Script) peek(L *lua.LState) int {
	ai, err := scr.dbg.Peek(checkUint(L, 1), optWidth(L, 2))
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LNumber(ai.Data))
	return 1
}

func (scr *Script) poke(L *lua.LState) int {
	_, err := scr.dbg.Poke(checkUint(L, 1), checkData(L, 2), optWidth(L, 3))
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LTrue)
	return 1
}

func (scr *Script) translate(L *lua.LState) int {
	ai, err := scr.dbg.GetAddressInfo(checkUint(L, 1), dbgmem.Byte, L.OptBool(2, true))
	if err != nil {
		L.RaiseError("translate: %v", err)
		return 0
	}
	L.Push(lua.LNumber(ai.Destination))
	L.Push(lua.LString(ai.Route.String()))
	L.Push(lua.LString(ai.Area))
	return 3
}

func (scr *Script) control(L *lua.LState) int {
	if L.GetTop() >= 1 {
		v := checkUint(L, 1)
		if v > 0xff {
			L.ArgError(1, "value too large for register")
			return 0
		}
		scr.tek.ATU.Write(memorymap.MapControlRegister, uint16(v)<<8, bus.MaskHigh)
	}
	L.Push(lua.LNumber(scr.tek.ATU.Control().Value()))
	return 1
}

func (scr *Script) entry(L *lua.LState) int {
	idx := checkUint(L, 1)
	if idx >= memorymap.PageTableEntries {
		L.ArgError(1, "no such page table entry")
		return 0
	}
	if L.GetTop() >= 2 {
		scr.tek.ATU.Table.Write(idx, checkData(L, 2), bus.MaskWord)
	}
	L.Push(lua.LNumber(scr.tek.ATU.Table.Read(idx)))
	return 1
}

func (scr *Script) fc(L *lua.LState) int {
	if L.GetTop() >= 1 {
		scr.tek.CPU.SetFunctionCode(bus.FunctionCode(checkUint(L, 1)))
	}
	L.Push(lua.LNumber(scr.tek.CPU.FunctionCode()))
	return 1
}

// a Lua table describing the fault
func (scr *Script) faultTable(L *lua.LState, f bus.Fault) *lua.LTable {
	tbl := L.NewTable()
	L.SetField(tbl, "address", lua.LNumber(f.Address))
	L.SetField(tbl, "kind", lua.LString(f.Kind.String()))
	L.SetField(tbl, "fc", lua.LNumber(f.FC))
	L.SetField(tbl, "pending", lua.LBool(scr.tek.CPU.Pending()))
	L.SetField(tbl, "pulses", lua.LNumber(scr.tek.CPU.Pulses()))
	return tbl
}

func (scr *Script) fault(L *lua.LState) int {
	if scr.tek.CPU.Pulses() == 0 {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(scr.faultTable(L, scr.tek.CPU.Detail()))
	return 1
}

func (scr *Script) ack(L *lua.LState) int {
	f, ok := scr.tek.CPU.Acknowledge()
	L.Push(lua.LBool(ok))
	if !ok {
		return 1
	}
	L.Push(scr.faultTable(L, f))
	return 2
}

func (scr *Script) reset(L *lua.LState) int {
	scr.tek.Reset()
	return 0
}

func (scr *Script) boot(L *lua.LState) int {
	L.Push(lua.LBool(scr.tek.ATU.Boot()))
	return 1
}

func (scr *Script) log(L *lua.LState) int {
	logger.Log(scr.tek.Env, "script", joinArgs(L))
	return 0
}
