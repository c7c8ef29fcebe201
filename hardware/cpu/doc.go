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

// Package cpu models the parts of the 68010 that face the memory system. The
// instruction set is not emulated.
//
// The BusErrorInput type is the CPU's side of the bus error signal. It is
// given to the address translation unit (see the atu package) which calls
// BusError() whenever an access arrives in the invalid window. The BusError()
// function asserts and clears the bus error line, latches the details of the
// fault and marks the fault as pending. Whoever is driving the bus (the
// monitor or a script) should call Acknowledge() once the fault has been
// handled.
//
// The function code of the current bus cycle must be set with
// SetFunctionCode() before the access is made.
package cpu
