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

package monitor

import (
	"fmt"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/tek4404/hardware/memory/atu"
	"github.com/jetsetilly/tek4404/hardware/memory/bus"
	"github.com/jetsetilly/tek4404/hardware/memory/memorymap"
)

// entryViz is a page table entry as shown by the MEMVIZ command
type entryViz struct {
	Index    uint32
	Logical  uint32
	Physical uint32
	Entry    atu.Entry
}

// atuViz is the ATU state as shown by the MEMVIZ command. the page table is
// reduced to the non-zero entries
type atuViz struct {
	Boot         bool
	Control      atu.Control
	FunctionCode bus.FunctionCode
	Fault        *bus.Fault
	Entries      []entryViz
}

func (m *Monitor) snapshot() *atuViz {
	v := &atuViz{
		Boot:         m.tek.ATU.Boot(),
		Control:      m.tek.ATU.Control(),
		FunctionCode: m.tek.CPU.FunctionCode(),
	}

	if m.tek.CPU.Pending() {
		f := m.tek.CPU.Detail()
		v.Fault = &f
	}

	for i := uint32(0); i < memorymap.PageTableEntries; i++ {
		e := m.tek.ATU.Table.Entry(i)
		if e == 0 {
			continue
		}
		v.Entries = append(v.Entries, entryViz{
			Index:    i,
			Logical:  (memorymap.Split | i<<memorymap.PageBits) << 1,
			Physical: e.PhysicalPage() << (memorymap.PageBits + 1),
			Entry:    e,
		})
	}

	return v
}

// memviz writes a graphviz description of the ATU state to the named file
func (m *Monitor) memviz(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("memviz: %w", err)
	}
	defer f.Close()

	memviz.Map(f, m.snapshot())

	return nil
}
