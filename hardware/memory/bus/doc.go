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

// Package bus defines the memory bus concept. The Tek4404 has a 16 bit data
// bus and no A0 line, so every address passed over a bus is a word offset:
// the byte address shifted right by one. Byte-wide accesses select a lane of
// the data bus with a mask (see MaskHigh and MaskLow).
//
// The CPUBus interface is the bus as seen by the CPU. Accesses over the CPUBus
// have side effects: registers change state and invalid addresses raise bus
// errors.
//
// The DebugBus interface is for debuggers and other tooling. Peek and Poke
// never have side effects.
//
// The Fault and FunctionCode types describe the bus error signal that is
// driven back to the CPU when an access cannot be completed.
package bus
