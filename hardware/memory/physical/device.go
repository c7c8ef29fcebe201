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

// Device is implemented by every type that can be attached to the physical
// bus. The offset argument to every function is relative to the origin of the
// device.
type Device interface {
	Label() string
	Read(offset uint32, mask uint16) uint16
	Write(offset uint32, data uint16, mask uint16)
	Peek(offset uint32) (uint16, error)
	Poke(offset uint32, data uint16, mask uint16) error
}

// resetter is implemented by devices whose state should be reset when the bus
// is reset.
type resetter interface {
	Reset()
}

// attachment is a device and where it has been attached.
type attachment struct {
	origin uint32
	memtop uint32
	mirror uint32
	dev    Device
}

func (a attachment) decodes(offset uint32) bool {
	return offset >= a.origin && offset <= a.memtop
}

func (a attachment) relative(offset uint32) uint32 {
	return (offset - a.origin) & a.mirror
}
