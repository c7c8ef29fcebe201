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

// Package dbgmem is a front-end to the Tek4404 memory for the monitor and the
// scripting engine. It accepts byte addresses in the CPU's logical address
// space and converts them to the word offsets and lane masks used by the
// hardware packages.
//
// Read and Write behave exactly as a CPU access would, including any bus
// error that the access raises. Peek and Poke do not raise bus errors and do
// not trigger register side effects.
package dbgmem
