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

package memorymap

import (
	"fmt"
	"strings"
)

// Summary returns a single multiline string detailing all the areas in the
// physical address space. Addresses in the summary are byte addresses.
func Summary() string {
	var area, current Area
	var a, sa uint32

	s := strings.Builder{}

	_, current = MapAddress(0)

	for a = 1; a <= PhysicalMask; a++ {
		_, area = MapAddress(a)

		if area != current {
			s.WriteString(fmt.Sprintf("%06x -> %06x\t%s\n", sa<<1, (a<<1)-1, current))
			current = area
			sa = a
		}
	}

	s.WriteString(fmt.Sprintf("%06x -> %06x\t%s\n", sa<<1, (a<<1)-1, current))

	return s.String()
}
