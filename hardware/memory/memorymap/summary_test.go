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

package memorymap_test

import (
	"testing"

	"github.com/jetsetilly/tek4404/hardware/memory/memorymap"
	"github.com/jetsetilly/tek4404/test"
)

const validMemMap = `000000 -> 1fffff	Main RAM
200000 -> 5fffff	Invalid
600000 -> 61ffff	Video RAM
620000 -> 73ffff	undefined
740000 -> 74ffff	Boot ROM
750000 -> 75ffff	undefined
760000 -> 76ffff	Debug RAM
770000 -> 77ffff	undefined
780000 -> 780001	Map Control
780002 -> 787fff	undefined
788000 -> 788001	Sound
788002 -> 7affff	undefined
7b0000 -> 7b0001	Diagnostic
7b0002 -> 7fffff	undefined
`

func TestSummary(t *testing.T) {
	test.ExpectEquality(t, memorymap.Summary(), validMemMap)
}

func TestMapAddress(t *testing.T) {
	ma, area := memorymap.MapAddress(0x3a4001)
	test.ExpectEquality(t, area, memorymap.ROM)
	test.ExpectEquality(t, ma, 0x3a0001)

	ma, area = memorymap.MapAddress(0x3b7fff)
	test.ExpectEquality(t, area, memorymap.DebugRAM)
	test.ExpectEquality(t, ma, 0x3b07ff)

	_, area = memorymap.MapAddress(0x2fffff)
	test.ExpectEquality(t, area, memorymap.Invalid)

	_, area = memorymap.MapAddress(0x3c0001)
	test.ExpectEquality(t, area, memorymap.Undefined)

	test.ExpectSuccess(t, memorymap.IsInvalid(0x100000))
	test.ExpectFailure(t, memorymap.IsInvalid(0x0fffff))
	test.ExpectFailure(t, memorymap.IsInvalid(0x300000))
	test.ExpectSuccess(t, memorymap.IsArea(0x3c4000, memorymap.Sound))
}

func TestPageOf(t *testing.T) {
	test.ExpectEquality(t, memorymap.PageOf(0x402abc), 0x005)
	test.ExpectEquality(t, memorymap.PageOf(0x7fffff), 0x7ff)
	test.ExpectEquality(t, memorymap.PageOf(0x0007ff), 0x000)
}
