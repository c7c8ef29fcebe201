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

package dbgmem

import (
	"errors"
	"fmt"

	"github.com/jetsetilly/tek4404/hardware"
	"github.com/jetsetilly/tek4404/hardware/memory/atu"
	"github.com/jetsetilly/tek4404/hardware/memory/bus"
	"github.com/jetsetilly/tek4404/hardware/memory/memorymap"
)

// DbgMem is a front-end to the memory of a Tek4404 instance.
type DbgMem struct {
	Tek *hardware.Tek4404
}

// GetAddressInfo describes how the byte address will be routed for a read or
// a write. The returned AddressInfo does not contain any data.
func (dbg DbgMem) GetAddressInfo(address uint32, width Width, read bool) (*AddressInfo, error) {
	offset, _, _, err := lane(address, width)
	if err != nil {
		return nil, err
	}

	ai := &AddressInfo{
		Address: address,
		Width:   width,
	}

	var dest uint32
	ai.Route, dest = dbg.Tek.ATU.Route(offset, read)

	switch ai.Route {
	case atu.RouteBoot:
		ai.Destination = dest << 1
		ai.Area = dbg.Tek.ROM.Label()
	case atu.RouteTable:
		ai.Destination = dest
		ai.Area = "Page Table"
	default:
		ai.Destination = dest << 1
		ai.Area = dbg.Tek.Phys.Area(dest)
		if ai.Area == "" {
			_, area := memorymap.MapAddress(dest)
			ai.Area = area.String()
		}
	}

	return ai, nil
}

// watch calls f and records any bus error that f raises
func (dbg DbgMem) watch(ai *AddressInfo, f func()) {
	pulses := dbg.Tek.CPU.Pulses()
	f()
	if dbg.Tek.CPU.Pulses() != pulses {
		d := dbg.Tek.CPU.Detail()
		ai.Fault = &d
	}
}

// Read the byte address as the CPU would. Bus errors raised by the access are
// recorded in the returned AddressInfo.
func (dbg DbgMem) Read(address uint32, width Width) (*AddressInfo, error) {
	ai, err := dbg.GetAddressInfo(address, width, true)
	if err != nil {
		return nil, err
	}

	offset, mask, shift, _ := lane(address, width)

	dbg.watch(ai, func() {
		ai.Data = (dbg.Tek.ATU.Read(offset, mask) & mask) >> shift
	})
	ai.Accessed = true

	return ai, nil
}

// Write data to the byte address as the CPU would. Bus errors raised by the
// access are recorded in the returned AddressInfo.
func (dbg DbgMem) Write(address uint32, data uint16, width Width) (*AddressInfo, error) {
	ai, err := dbg.GetAddressInfo(address, width, false)
	if err != nil {
		return nil, err
	}

	offset, mask, shift, _ := lane(address, width)
	if width == Byte && data > 0xff {
		return nil, fmt.Errorf("dbgmem: value too large for byte (%x)", data)
	}

	dbg.watch(ai, func() {
		dbg.Tek.ATU.Write(offset, data<<shift, mask)
	})
	ai.Data = data
	ai.Accessed = true

	return ai, nil
}

// Peek returns the contents of the byte address without side effects.
//
// Peeking an unmapped address returns both the AddressInfo, with Unmapped set
// and the data a live read would see, and an error wrapping bus.ErrUnmapped.
func (dbg DbgMem) Peek(address uint32, width Width) (*AddressInfo, error) {
	ai, err := dbg.GetAddressInfo(address, width, true)
	if err != nil {
		return nil, err
	}

	offset, mask, shift, _ := lane(address, width)

	v, err := dbg.Tek.ATU.Peek(offset)
	if err != nil && !errors.Is(err, bus.ErrUnmapped) {
		return nil, fmt.Errorf("dbgmem: %w", err)
	}
	ai.Data = (v & mask) >> shift
	ai.Accessed = true

	if err != nil {
		ai.Unmapped = true
		return ai, fmt.Errorf("dbgmem: %w", err)
	}

	return ai, nil
}

// Poke changes the contents of the byte address without side effects.
func (dbg DbgMem) Poke(address uint32, data uint16, width Width) (*AddressInfo, error) {
	ai, err := dbg.GetAddressInfo(address, width, false)
	if err != nil {
		return nil, err
	}

	offset, mask, shift, _ := lane(address, width)
	if width == Byte && data > 0xff {
		return nil, fmt.Errorf("dbgmem: value too large for byte (%x)", data)
	}

	err = dbg.Tek.ATU.Poke(offset, data<<shift, mask)
	if err != nil {
		return nil, fmt.Errorf("dbgmem: %w", err)
	}
	ai.Data = data
	ai.Accessed = true

	return ai, nil
}
