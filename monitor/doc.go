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

// Package monitor implements an interactive command line for examining and
// driving the Tek4404 memory system. Commands are read from a
// terminal.Terminal implementation and the results are sent back to the same
// terminal.
//
// Addresses given to the monitor are byte addresses in the CPU's logical
// address space and all numbers are interpreted as hexadecimal. The HELP
// command lists the available commands.
package monitor
