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
	"fmt"

	"github.com/jetsetilly/tek4404/hardware/instance"
	"github.com/jetsetilly/tek4404/hardware/memory/bus"
	"github.com/jetsetilly/tek4404/hardware/memory/memorymap"
	"github.com/jetsetilly/tek4404/logger"
)

// ROM is the boot ROM. The contents can be changed with Poke() but never with
// Write().
type ROM struct {
	env  *instance.Instance
	data []uint16
}

// NewROM is the preferred method of initialisation for the ROM type. The data
// must be exactly memorymap.SizeROM words.
func NewROM(env *instance.Instance, data []uint16) (*ROM, error) {
	if len(data) != int(memorymap.SizeROM) {
		return nil, fmt.Errorf("physical: boot rom must be %d words (not %d)", memorymap.SizeROM, len(data))
	}
	r := &ROM{
		env:  env,
		data: make([]uint16, len(data)),
	}
	copy(r.data, data)
	return r, nil
}

// Label implements the Device interface.
func (r *ROM) Label() string {
	return "Boot ROM"
}

// BootRead returns the word in the ROM at the offset. The offset is masked to
// the size of the ROM. Used to service reads while the machine is in boot
// mode.
func (r *ROM) BootRead(offset uint32) uint16 {
	return r.data[offset&memorymap.MaskROM]
}

// Read implements the Device interface.
func (r *ROM) Read(offset uint32, _ uint16) uint16 {
	return r.BootRead(offset)
}

// Write implements the Device interface. Writes to ROM are ignored.
func (r *ROM) Write(offset uint32, data uint16, mask uint16) {
	logger.Logf(r.env, "rom", "ignored write of %04x to %06x", data&mask, (memorymap.OriginROM+offset)<<1)
}

// Peek implements the Device interface.
func (r *ROM) Peek(offset uint32) (uint16, error) {
	return r.BootRead(offset), nil
}

// Poke implements the Device interface.
func (r *ROM) Poke(offset uint32, data uint16, mask uint16) error {
	idx := offset & memorymap.MaskROM
	r.data[idx] = bus.Merge(r.data[idx], data, mask)
	return nil
}
