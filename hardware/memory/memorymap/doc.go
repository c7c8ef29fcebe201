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

// Package memorymap describes the layout of the Tek4404 physical and logical
// address spaces. All values are word offsets (byte address >> 1).
//
// The MapAddress() function should be used to find the area an offset falls
// within and to remove any mirroring:
//
//	ma, area := memorymap.MapAddress(offset)
//
// The Summary() function returns a listing of the physical areas and is
// useful for reference.
package memorymap
