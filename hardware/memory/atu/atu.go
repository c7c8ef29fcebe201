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

import (
	"fmt"

	"github.com/jetsetilly/tek4404/hardware/memory/bus"
	"github.com/jetsetilly/tek4404/hardware/memory/memorymap"
)

// Physical is the bus below the ATU.
type Physical interface {
	bus.CPUBus
	bus.DebugBus
}

// BootImage is the source of words while the machine is in boot mode.
type BootImage interface {
	BootRead(offset uint32) uint16
}

// FaultReceiver is the CPU side of the bus error signal.
type FaultReceiver interface {
	// the function code of the current bus cycle
	FunctionCode() bus.FunctionCode

	// signal a bus error. the receiver is responsible for asserting and
	// clearing the bus error line and for latching the fault details
	BusError(bus.Fault)
}

// ATU is the address translation unit. It implements the bus.CPUBus and
// bus.DebugBus interfaces.
type ATU struct {
	phys Physical
	rom  BootImage
	cpu  FaultReceiver

	Table PageTable

	control Control

	// reads are serviced by the boot ROM while boot is true
	boot bool
}

// NewATU is the preferred method of initialisation for the ATU type. The ATU
// is reset before it is returned.
func NewATU(phys Physical, rom BootImage, cpu FaultReceiver) *ATU {
	atu := &ATU{
		phys: phys,
		rom:  rom,
		cpu:  cpu,
	}
	atu.Reset()
	return atu
}

func (atu *ATU) String() string {
	boot := "off"
	if atu.boot {
		boot = "on"
	}
	return fmt.Sprintf("boot=%s %s", boot, atu.control)
}

// Reset puts the ATU into boot mode with translation disabled and the page
// table view deselected. Every page table entry is cleared.
func (atu *ATU) Reset() {
	atu.boot = true
	atu.control.write(0)
	atu.Table.Reset()
}

// Boot returns true if the ATU is in boot mode.
func (atu *ATU) Boot() bool {
	return atu.boot
}

// Control returns a copy of the current map control state.
func (atu *ATU) Control() Control {
	return atu.control
}

// fault signals a bus error if the physical offset is in the invalid window.
// the logical offset is reported in the fault.
func (atu *ATU) fault(logical uint32, physical uint32, kind bus.AccessKind) {
	if !memorymap.IsInvalid(physical) {
		return
	}
	atu.cpu.BusError(bus.Fault{
		Address: logical << 1,
		Kind:    kind,
		FC:      atu.cpu.FunctionCode(),
	})
}

// Read implements the bus.CPUBus interface.
func (atu *ATU) Read(offset uint32, mask uint16) uint16 {
	offset &= memorymap.LogicalMask

	route, dest := atu.Route(offset, true)
	switch route {
	case RouteBoot:
		return atu.rom.BootRead(dest)
	case RouteTable:
		return atu.Table.Read(dest)
	}

	atu.fault(offset, dest, bus.Read)
	return atu.phys.Read(dest, mask)
}

// Write implements the bus.CPUBus interface.
func (atu *ATU) Write(offset uint32, data uint16, mask uint16) {
	offset &= memorymap.LogicalMask

	route, dest := atu.Route(offset, false)
	if route == RouteTable {
		atu.Table.Write(dest, data, mask)
		return
	}

	atu.fault(offset, dest, bus.Write)
	atu.phys.Write(dest, data, mask)
}

// Peek implements the bus.DebugBus interface.
func (atu *ATU) Peek(offset uint32) (uint16, error) {
	route, dest := atu.Route(offset, true)
	switch route {
	case RouteBoot:
		return atu.rom.BootRead(dest), nil
	case RouteTable:
		return atu.Table.Read(dest), nil
	}
	return atu.phys.Peek(dest)
}

// Poke implements the bus.DebugBus interface.
func (atu *ATU) Poke(offset uint32, data uint16, mask uint16) error {
	route, dest := atu.Route(offset, false)
	if route == RouteTable {
		atu.Table.Write(dest, data, mask)
		return nil
	}
	return atu.phys.Poke(dest, data, mask)
}
