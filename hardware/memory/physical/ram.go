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
	"github.com/jetsetilly/tek4404/hardware/instance"
	"github.com/jetsetilly/tek4404/hardware/memory/bus"
)

// RAM is a block of read/write memory. Byte writes only change the selected
// lane of a word.
type RAM struct {
	env   *instance.Instance
	label string
	data  []uint16
}

// NewRAM is the preferred method of initialisation for the RAM type. The size
// is in words.
func NewRAM(env *instance.Instance, label string, size uint32) *RAM {
	return &RAM{
		env:   env,
		label: label,
		data:  make([]uint16, size),
	}
}

// Label implements the Device interface.
func (r *RAM) Label() string {
	return r.label
}

// Size returns the number of words in the RAM.
func (r *RAM) Size() int {
	return len(r.data)
}

// Reset contents of RAM. The contents are zeroed unless the
// hardware.randstate preference is set.
func (r *RAM) Reset() {
	if r.env.Prefs.RandomState.Get().(bool) {
		for i := range r.data {
			r.data[i] = uint16(r.env.Prefs.RandSrc.Intn(0x10000))
		}
		return
	}
	clear(r.data)
}

// Read implements the Device interface.
func (r *RAM) Read(offset uint32, _ uint16) uint16 {
	return r.data[int(offset)%len(r.data)]
}

// Write implements the Device interface.
func (r *RAM) Write(offset uint32, data uint16, mask uint16) {
	idx := int(offset) % len(r.data)
	r.data[idx] = bus.Merge(r.data[idx], data, mask)
}

// Peek implements the Device interface.
func (r *RAM) Peek(offset uint32) (uint16, error) {
	return r.Read(offset, bus.MaskWord), nil
}

// Poke implements the Device interface.
func (r *RAM) Poke(offset uint32, data uint16, mask uint16) error {
	r.Write(offset, data, mask)
	return nil
}
