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

import "errors"

// Sentinel errors returned by DebugBus implementations.
var (
	// the offset is not decoded to any device
	ErrUnmapped = errors.New("unmapped address")

	// registers can not be changed without side effects
	ErrPokeRegister = errors.New("cannot poke register")
)

// DebugBus defines the meta-operations for all memory areas. Think of these
// functions as "debugging" functions, that is operations outside of the normal
// operation of the machine.
//
// Neither function will change the state of a register or raise a bus error.
type DebugBus interface {
	Peek(offset uint32) (uint16, error)
	Poke(offset uint32, data uint16, mask uint16) error
}
