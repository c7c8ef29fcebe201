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

package bus

// Data bus lane masks. The 68010 places the even byte of a word on the high
// half of the data bus.
const (
	MaskWord uint16 = 0xffff
	MaskHigh uint16 = 0xff00
	MaskLow  uint16 = 0x00ff
)

// Merge combines data into the existing value according to the lane mask.
// Bits not covered by the mask are preserved.
func Merge(existing uint16, data uint16, mask uint16) uint16 {
	return (existing &^ mask) | (data & mask)
}

// CPUBus defines the operations for the memory system when accessed from the
// CPU. Accesses have side effects.
type CPUBus interface {
	Read(offset uint32, mask uint16) uint16
	Write(offset uint32, data uint16, mask uint16)
}

// AccessKind indicates the direction of a bus cycle. The values match the
// R/W line of the 68010.
type AccessKind int

// List of valid AccessKind values.
const (
	Write AccessKind = 0
	Read  AccessKind = 1
)

func (k AccessKind) String() string {
	if k == Read {
		return "read"
	}
	return "write"
}
