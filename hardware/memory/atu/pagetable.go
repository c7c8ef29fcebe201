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
	"strings"

	"github.com/jetsetilly/tek4404/hardware/memory/bus"
	"github.com/jetsetilly/tek4404/hardware/memory/memorymap"
)

// Entry is a single entry in the page table.
type Entry uint16

// PhysicalPage returns the physical page number of the entry.
func (e Entry) PhysicalPage() uint32 {
	return uint32(e) & memorymap.PageMask
}

// Process returns the process tag of the entry.
func (e Entry) Process() uint8 {
	return uint8(e>>11) & 0x07
}

// WriteEnable returns true if the write-enable bit is set.
func (e Entry) WriteEnable() bool {
	return e&0x4000 == 0x4000
}

// Dirty returns true if the dirty bit is set.
func (e Entry) Dirty() bool {
	return e&0x8000 == 0x8000
}

func (e Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("page %03x pid %d", e.PhysicalPage(), e.Process()))
	if e.WriteEnable() {
		s.WriteString(" WE")
	}
	if e.Dirty() {
		s.WriteString(" D")
	}
	return s.String()
}

// PageTable holds one entry for every page of the high logical range.
type PageTable struct {
	entries [memorymap.PageTableEntries]uint16
}

// Read returns the raw entry at the index. The index is masked to the size
// of the table.
func (pt *PageTable) Read(index uint32) uint16 {
	return pt.entries[index&memorymap.PageMask]
}

// Write merges data into the entry at the index according to the lane mask.
// There is no validation of the new value.
func (pt *PageTable) Write(index uint32, data uint16, mask uint16) {
	idx := index & memorymap.PageMask
	pt.entries[idx] = bus.Merge(pt.entries[idx], data, mask)
}

// Entry returns the decoded entry at the index.
func (pt *PageTable) Entry(index uint32) Entry {
	return Entry(pt.Read(index))
}

// Reset clears every entry in the table.
func (pt *PageTable) Reset() {
	clear(pt.entries[:])
}

// String lists every non-zero entry in the table.
func (pt *PageTable) String() string {
	s := strings.Builder{}
	for i, v := range pt.entries {
		if v == 0 {
			continue
		}
		logical := (memorymap.Split | uint32(i)<<memorymap.PageBits) << 1
		s.WriteString(fmt.Sprintf("%03x %06x: %04x %s\n", i, logical, v, Entry(v)))
	}
	return s.String()
}
