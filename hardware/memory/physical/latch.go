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

package physical

import (
	"github.com/jetsetilly/tek4404/hardware/memory/bus"
)

// Latch is a write-only byte register on the high lane of the data bus. Reads
// return zero.
type Latch struct {
	label string
	value uint8

	// called with the new value after every write. can be nil
	onWrite func(uint8)
}

// NewLatch is the preferred method of initialisation for the Latch type.
func NewLatch(label string, onWrite func(uint8)) *Latch {
	return &Latch{
		label:   label,
		onWrite: onWrite,
	}
}

// Label implements the Device interface.
func (l *Latch) Label() string {
	return l.label
}

// Value returns the last value written to the latch.
func (l *Latch) Value() uint8 {
	return l.value
}

// Read implements the Device interface.
func (l *Latch) Read(_ uint32, _ uint16) uint16 {
	return 0
}

// Write implements the Device interface. Writes that do not include the high
// lane have no effect.
func (l *Latch) Write(_ uint32, data uint16, mask uint16) {
	if mask&bus.MaskHigh == 0 {
		return
	}
	l.value = uint8(data >> 8)
	if l.onWrite != nil {
		l.onWrite(l.value)
	}
}

// Peek implements the Device interface. The latch is write-only and so the
// value is always zero.
func (l *Latch) Peek(_ uint32) (uint16, error) {
	return 0, nil
}

// Poke implements the Device interface.
func (l *Latch) Poke(_ uint32, _ uint16, _ uint16) error {
	return bus.ErrPokeRegister
}
