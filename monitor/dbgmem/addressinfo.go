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
	"fmt"
	"strings"

	"github.com/jetsetilly/tek4404/hardware/memory/atu"
	"github.com/jetsetilly/tek4404/hardware/memory/bus"
)

// AddressInfo is returned by the dbgmem functions. The String() function
// provides a normalised presentation of the information.
type AddressInfo struct {
	// the logical byte address as given by the user
	Address uint32
	Width   Width

	// how the ATU routes the address and the resulting destination. the
	// destination is a byte address in the physical address space unless the
	// route is the page table, in which case it is the entry index
	Route       atu.Route
	Destination uint32
	Area        string

	// the data at the address. if Accessed is false then Data is not valid
	Accessed bool
	Data     uint16

	// the address is not backed by any device. only set by Peek
	Unmapped bool

	// non-nil if the access raised a bus error
	Fault *bus.Fault
}

func (ai AddressInfo) String() string {
	s := strings.Builder{}

	s.WriteString(fmt.Sprintf("%06x", ai.Address))

	switch ai.Route {
	case atu.RouteTable:
		s.WriteString(fmt.Sprintf(" [entry %03x]", ai.Destination))
	case atu.RouteDirect:
	default:
		s.WriteString(fmt.Sprintf(" [%s %06x]", ai.Route, ai.Destination))
	}

	if ai.Area != "" {
		s.WriteString(fmt.Sprintf(" (%s)", ai.Area))
	}

	if ai.Accessed {
		if ai.Width == Byte {
			s.WriteString(fmt.Sprintf(" -> %02x", ai.Data))
		} else {
			s.WriteString(fmt.Sprintf(" -> %04x", ai.Data))
		}
	}

	if ai.Unmapped {
		s.WriteString(" unmapped")
	}

	if ai.Fault != nil {
		s.WriteString(fmt.Sprintf(" BUS ERROR: %s", ai.Fault))
	}

	return s.String()
}
