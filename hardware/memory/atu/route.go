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

import "github.com/jetsetilly/tek4404/hardware/memory/memorymap"

// Route describes how a logical access reaches its destination.
type Route int

// List of valid Route values.
const (
	RouteBoot Route = iota
	RouteDirect
	RouteTable
	RouteTranslated
)

func (r Route) String() string {
	switch r {
	case RouteBoot:
		return "boot rom"
	case RouteDirect:
		return "direct"
	case RouteTable:
		return "page table"
	case RouteTranslated:
		return "translated"
	}
	return "unknown"
}

// Route returns the route a logical access would take with the current boot
// flag and map control state. The destination offset is a physical offset
// for RouteDirect and RouteTranslated, a page table index for RouteTable and
// a boot ROM offset for RouteBoot.
func (atu *ATU) Route(offset uint32, read bool) (Route, uint32) {
	offset &= memorymap.LogicalMask

	if atu.boot && read {
		return RouteBoot, offset & memorymap.MaskROM
	}

	if offset < memorymap.Split {
		return RouteDirect, offset
	}

	if atu.control.view {
		return RouteTable, memorymap.PageOf(offset)
	}

	return RouteTranslated, atu.Translate(offset)
}

// Translate returns the physical offset for a logical offset in the high
// range. When translation is disabled the logical offset is returned masked
// to the width of the physical address space.
//
// Out of range page numbers are not checked.
func (atu *ATU) Translate(offset uint32) uint32 {
	if !atu.control.Enabled() {
		return offset & memorymap.PhysicalMask
	}
	e := atu.Table.Entry(memorymap.PageOf(offset))
	return (e.PhysicalPage() << memorymap.PageBits) | (offset & memorymap.PageMask)
}
