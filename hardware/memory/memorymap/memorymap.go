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

// Area represents the different areas of physical memory.
type Area int

func (a Area) String() string {
	switch a {
	case MainRAM:
		return "Main RAM"
	case Invalid:
		return "Invalid"
	case VRAM:
		return "Video RAM"
	case ROM:
		return "Boot ROM"
	case DebugRAM:
		return "Debug RAM"
	case MapControl:
		return "Map Control"
	case Sound:
		return "Sound"
	case Diag:
		return "Diagnostic"
	}

	return "undefined"
}

// The different memory areas in the Tek4404.
const (
	Undefined Area = iota
	MainRAM
	Invalid
	VRAM
	ROM
	DebugRAM
	MapControl
	Sound
	Diag
)

// The origin and memory top for each area of physical memory. Memtop is
// inclusive.
const (
	OriginMainRAM = uint32(0x000000)
	MemtopMainRAM = uint32(0x0fffff)

	// accesses to the invalid window raise a bus error
	OriginInvalid = uint32(0x100000)
	MemtopInvalid = uint32(0x2fffff)

	OriginVRAM = uint32(0x300000)
	MemtopVRAM = uint32(0x30ffff)

	// the ROM occupies 0x4000 words and is mirrored once
	OriginROM = uint32(0x3a0000)
	MemtopROM = uint32(0x3a7fff)
	MaskROM   = uint32(0x003fff)

	// the debug RAM occupies 0x800 words and is mirrored throughout its area
	OriginDebugRAM = uint32(0x3b0000)
	MemtopDebugRAM = uint32(0x3b7fff)
	MaskDebugRAM   = uint32(0x0007ff)

	MapControlRegister = uint32(0x3c0000)
	SoundRegister      = uint32(0x3c4000)
	DiagRegister       = uint32(0x3d8000)
)

// Sizes of the memory areas in words.
const (
	SizeMainRAM  = MemtopMainRAM - OriginMainRAM + 1
	SizeVRAM     = MemtopVRAM - OriginVRAM + 1
	SizeROM      = MaskROM + 1
	SizeDebugRAM = MaskDebugRAM + 1
)

// PhysicalMask keeps only the bits of a physical offset. The physical
// address space is 23 bits wide (in bytes).
const PhysicalMask = uint32(0x3fffff)

// Layout of the logical address space.
const (
	// the logical address space is 24 bits wide (in bytes)
	LogicalMask = uint32(0x7fffff)

	// offsets at or above the split are translated or reach the page table
	Split = uint32(0x400000)

	// a page is 2K words
	PageBits = 11
	PageMask = uint32(0x7ff)

	// number of entries in the page table
	PageTableEntries = 2048
)

// MapAddress returns the area that the physical offset falls within and the
// offset with any mirroring removed.
func MapAddress(offset uint32) (uint32, Area) {
	offset &= PhysicalMask

	switch {
	case offset <= MemtopMainRAM:
		return offset, MainRAM
	case offset <= MemtopInvalid:
		return offset, Invalid
	case offset >= OriginVRAM && offset <= MemtopVRAM:
		return offset, VRAM
	case offset >= OriginROM && offset <= MemtopROM:
		return OriginROM | (offset & MaskROM), ROM
	case offset >= OriginDebugRAM && offset <= MemtopDebugRAM:
		return OriginDebugRAM | (offset & MaskDebugRAM), DebugRAM
	case offset == MapControlRegister:
		return offset, MapControl
	case offset == SoundRegister:
		return offset, Sound
	case offset == DiagRegister:
		return offset, Diag
	}

	return offset, Undefined
}

// IsArea returns true if the offset is in the specified area.
func IsArea(offset uint32, area Area) bool {
	_, a := MapAddress(offset)
	return area == a
}

// IsInvalid returns true if the physical offset is in the invalid window.
func IsInvalid(offset uint32) bool {
	return offset >= OriginInvalid && offset <= MemtopInvalid
}

// PageOf returns the page number of the logical offset.
func PageOf(offset uint32) uint32 {
	return (offset >> PageBits) & PageMask
}
