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

// Package script runs Lua scripts against a Tek4404 instance. Scripts can read
// and write the logical address space as the CPU would, inspect and change the
// page table and map control register, and examine bus errors raised by their
// accesses.
//
// The functions available to a script are:
//
//	read(addr [, width])           returns value and true if a bus error was raised
//	write(addr, value [, width])   returns true if a bus error was raised
//	peek(addr [, width])           returns value, or nil and an error message
//	poke(addr, value [, width])    returns true, or nil and an error message
//	translate(addr [, read])       returns destination, route name and area name
//	control([value])               writes the map control register and returns its value
//	entry(index [, value])         sets the page table entry and returns its value
//	fc([code])                     sets the function code and returns its value
//	fault()                        returns the most recent bus error or nil
//	ack()                          acknowledges a pending bus error
//	reset()                        resets the machine
//	boot()                         returns true if in boot mode
//	log(...)                       adds an entry to the central log
//
// Addresses are byte addresses. The width argument is "b" or "w" and defaults
// to a word access. The print function writes to the output given to
// NewScript().
package script
