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

// Package physical implements the physical address space of the Tek4404.
//
// The Bus type decodes a physical word offset to one of the attached devices.
// Devices are attached with an origin, a memtop and a mirror mask. The offset
// passed to a device is relative to the origin with the mirror mask applied.
//
// Offsets that are not decoded to any device are unmapped. Reads of unmapped
// offsets return zero and writes are ignored. Unmapped accesses are logged if
// the physical.logunmapped preference is set.
//
// The bus errors raised by the invalid window are not the concern of this
// package. See the atu package.
package physical
