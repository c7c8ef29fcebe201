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

package bus

import "fmt"

// FunctionCode is the value of the FC0-FC2 lines during a bus cycle.
type FunctionCode uint8

// List of defined function codes. Codes 0 and 4 are reserved.
const (
	UserData          FunctionCode = 1
	UserProgram       FunctionCode = 2
	SupervisorData    FunctionCode = 5
	SupervisorProgram FunctionCode = 6
	CPUSpace          FunctionCode = 7
)

func (fc FunctionCode) String() string {
	switch fc {
	case UserData:
		return "user data"
	case UserProgram:
		return "user program"
	case SupervisorData:
		return "supervisor data"
	case SupervisorProgram:
		return "supervisor program"
	case CPUSpace:
		return "cpu space"
	}
	return fmt.Sprintf("reserved (%d)", uint8(fc))
}

// Supervisor returns true if the function code indicates supervisor state.
func (fc FunctionCode) Supervisor() bool {
	return fc&0x04 == 0x04
}

// Fault records the details of a bus error as latched by the CPU.
type Fault struct {
	// the faulting logical byte address
	Address uint32

	Kind AccessKind
	FC   FunctionCode
}

func (f Fault) String() string {
	return fmt.Sprintf("%s at %06x (%s)", f.Kind, f.Address, f.FC)
}
