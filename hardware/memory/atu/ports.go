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

package atu

import "github.com/jetsetilly/tek4404/hardware/memory/bus"

// ControlPort is the map control register as seen from the physical bus. The
// register is a single byte on the high lane.
type ControlPort struct {
	atu *ATU
}

// ControlPort returns the device that should be attached to the physical bus
// at the map control register.
func (atu *ATU) ControlPort() *ControlPort {
	return &ControlPort{atu: atu}
}

// Label returns the name of the register.
func (p *ControlPort) Label() string {
	return "Map Control"
}

// Read returns the readable bits of the map control register.
func (p *ControlPort) Read(_ uint32, _ uint16) uint16 {
	return uint16(p.atu.control.value) << 8
}

// Write updates the map control register. Writes that do not include the
// high lane have no effect.
func (p *ControlPort) Write(_ uint32, data uint16, mask uint16) {
	if mask&bus.MaskHigh == 0 {
		return
	}
	p.atu.control.write(uint8(data >> 8))
}

// Peek returns the same value as Read.
func (p *ControlPort) Peek(offset uint32) (uint16, error) {
	return p.Read(offset, bus.MaskWord), nil
}

// Poke is not allowed.
func (p *ControlPort) Poke(_ uint32, _ uint16, _ uint16) error {
	return bus.ErrPokeRegister
}

// BootTriggerPort is the sound register as seen from the physical bus. Any
// write to the high lane of the register takes the ATU out of boot mode.
type BootTriggerPort struct {
	atu  *ATU
	sink func(uint8)
}

// BootTriggerPort returns the device that should be attached to the physical
// bus at the sound register. The sink function receives every byte written to
// the register and can be nil.
func (atu *ATU) BootTriggerPort(sink func(uint8)) *BootTriggerPort {
	return &BootTriggerPort{atu: atu, sink: sink}
}

// Label returns the name of the register.
func (p *BootTriggerPort) Label() string {
	return "Sound"
}

// Read returns zero. The register is write-only.
func (p *BootTriggerPort) Read(_ uint32, _ uint16) uint16 {
	return 0
}

// Write passes the byte to the sink and leaves boot mode.
func (p *BootTriggerPort) Write(_ uint32, data uint16, mask uint16) {
	if mask&bus.MaskHigh == 0 {
		return
	}
	if p.sink != nil {
		p.sink(uint8(data >> 8))
	}
	p.atu.boot = false
}

// Peek returns zero. The register is write-only.
func (p *BootTriggerPort) Peek(_ uint32) (uint16, error) {
	return 0, nil
}

// Poke is not allowed.
func (p *BootTriggerPort) Poke(_ uint32, _ uint16, _ uint16) error {
	return bus.ErrPokeRegister
}
