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
	"strings"

	"github.com/jetsetilly/tek4404/hardware/instance"
	"github.com/jetsetilly/tek4404/hardware/memory/bus"
	"github.com/jetsetilly/tek4404/hardware/memory/memorymap"
	"github.com/jetsetilly/tek4404/logger"
)

// Bus is the physical address space. It implements both the bus.CPUBus and
// bus.DebugBus interfaces.
type Bus struct {
	env *instance.Instance

	// in order of attachment. earlier attachments take precedence
	attached []attachment
}

// NewBus is the preferred method of initialisation for the Bus type. No
// devices are attached.
func NewBus(env *instance.Instance) *Bus {
	return &Bus{
		env: env,
	}
}

// Attach device to bus. The device will decode every offset between origin
// and memtop (inclusive). The mirror mask is applied to the relative offset
// before it is passed to the device.
func (b *Bus) Attach(origin uint32, memtop uint32, mirror uint32, dev Device) error {
	if memtop < origin {
		return fmt.Errorf("physical: %s: memtop is less than origin", dev.Label())
	}
	if memtop > memorymap.PhysicalMask {
		return fmt.Errorf("physical: %s: memtop is outside of physical address space", dev.Label())
	}
	for _, a := range b.attached {
		if origin <= a.memtop && memtop >= a.origin {
			return fmt.Errorf("physical: %s: overlaps with %s", dev.Label(), a.dev.Label())
		}
	}

	b.attached = append(b.attached, attachment{
		origin: origin,
		memtop: memtop,
		mirror: mirror,
		dev:    dev,
	})

	return nil
}

func (b *Bus) decode(offset uint32) (attachment, bool) {
	offset &= memorymap.PhysicalMask
	for _, a := range b.attached {
		if a.decodes(offset) {
			return a, true
		}
	}
	return attachment{}, false
}

// Read implements the bus.CPUBus interface.
func (b *Bus) Read(offset uint32, mask uint16) uint16 {
	offset &= memorymap.PhysicalMask
	if a, ok := b.decode(offset); ok {
		return a.dev.Read(a.relative(offset), mask)
	}
	if b.env.Prefs.LogUnmapped.Get().(bool) {
		logger.Logf(b.env, "unmapped", "read of %06x", offset<<1)
	}
	return 0
}

// Write implements the bus.CPUBus interface.
func (b *Bus) Write(offset uint32, data uint16, mask uint16) {
	offset &= memorymap.PhysicalMask
	if a, ok := b.decode(offset); ok {
		a.dev.Write(a.relative(offset), data, mask)
		return
	}
	if b.env.Prefs.LogUnmapped.Get().(bool) {
		logger.Logf(b.env, "unmapped", "write of %04x to %06x", data&mask, offset<<1)
	}
}

// Peek implements the bus.DebugBus interface.
func (b *Bus) Peek(offset uint32) (uint16, error) {
	offset &= memorymap.PhysicalMask
	if a, ok := b.decode(offset); ok {
		return a.dev.Peek(a.relative(offset))
	}
	return 0, fmt.Errorf("physical: %w: %06x", bus.ErrUnmapped, offset<<1)
}

// Poke implements the bus.DebugBus interface.
func (b *Bus) Poke(offset uint32, data uint16, mask uint16) error {
	offset &= memorymap.PhysicalMask
	if a, ok := b.decode(offset); ok {
		return a.dev.Poke(a.relative(offset), data, mask)
	}
	return fmt.Errorf("physical: %w: %06x", bus.ErrUnmapped, offset<<1)
}

// Reset every attached device that has state to reset.
func (b *Bus) Reset() {
	for _, a := range b.attached {
		if r, ok := a.dev.(resetter); ok {
			r.Reset()
		}
	}
}

// Area returns the label of the device that decodes the offset. Returns the
// empty string if the offset is unmapped.
func (b *Bus) Area(offset uint32) string {
	if a, ok := b.decode(offset); ok {
		return a.dev.Label()
	}
	return ""
}

// String returns a summary of the attached devices. Addresses are byte
// addresses.
func (b *Bus) String() string {
	s := strings.Builder{}
	for _, a := range b.attached {
		s.WriteString(fmt.Sprintf("%06x -> %06x\t%s", a.origin<<1, (a.memtop<<1)|1, a.dev.Label()))
		if a.mirror != a.memtop-a.origin && a.memtop != a.origin {
			s.WriteString(fmt.Sprintf(" (mirrored every %x)", (a.mirror+1)<<1))
		}
		s.WriteString("\n")
	}
	return s.String()
}
