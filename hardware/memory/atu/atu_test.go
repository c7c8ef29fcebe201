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

package atu_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/tek4404/hardware/instance"
	"github.com/jetsetilly/tek4404/hardware/memory/atu"
	"github.com/jetsetilly/tek4404/hardware/memory/bus"
	"github.com/jetsetilly/tek4404/hardware/memory/memorymap"
	"github.com/jetsetilly/tek4404/hardware/memory/physical"
	"github.com/jetsetilly/tek4404/hardware/preferences"
	"github.com/jetsetilly/tek4404/test"
)

// receiver records every bus error
type receiver struct {
	fc     bus.FunctionCode
	faults []bus.Fault
}

func (r *receiver) FunctionCode() bus.FunctionCode {
	return r.fc
}

func (r *receiver) BusError(f bus.Fault) {
	r.faults = append(r.faults, f)
}

type rig struct {
	atu   *atu.ATU
	phys  *physical.Bus
	cpu   *receiver
	sound []uint8
}

func newRig(t *testing.T) *rig {
	t.Helper()

	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	env, err := instance.NewInstance(instance.Test, p)
	test.DemandSuccess(t, err)

	r := &rig{
		phys: physical.NewBus(env),
		cpu:  &receiver{fc: bus.SupervisorData},
	}

	ram := physical.NewRAM(env, "Main RAM", memorymap.SizeMainRAM)
	test.DemandSuccess(t, r.phys.Attach(memorymap.OriginMainRAM, memorymap.MemtopMainRAM, memorymap.SizeMainRAM-1, ram))

	vram := physical.NewRAM(env, "Video RAM", memorymap.SizeVRAM)
	test.DemandSuccess(t, r.phys.Attach(memorymap.OriginVRAM, memorymap.MemtopVRAM, memorymap.SizeVRAM-1, vram))

	data := make([]uint16, memorymap.SizeROM)
	for i := range data {
		data[i] = 0xb000 | uint16(i&0x0fff)
	}
	rom, err := physical.NewROM(env, data)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, r.phys.Attach(memorymap.OriginROM, memorymap.MemtopROM, memorymap.MaskROM, rom))

	r.atu = atu.NewATU(r.phys, rom, r.cpu)

	test.DemandSuccess(t, r.phys.Attach(memorymap.MapControlRegister, memorymap.MapControlRegister, 0, r.atu.ControlPort()))
	test.DemandSuccess(t, r.phys.Attach(memorymap.SoundRegister, memorymap.SoundRegister, 0,
		r.atu.BootTriggerPort(func(v uint8) { r.sound = append(r.sound, v) })))

	return r
}

// leave boot mode by writing to the sound register
func (r *rig) leaveBoot() {
	r.atu.Write(memorymap.SoundRegister, 0x9f00, bus.MaskHigh)
}

// write a value to the map control register
func (r *rig) mapControl(v uint8) {
	r.atu.Write(memorymap.MapControlRegister, uint16(v)<<8, bus.MaskHigh)
}

func TestReset(t *testing.T) {
	r := newRig(t)
	test.ExpectSuccess(t, r.atu.Boot())
	test.ExpectFailure(t, r.atu.Control().Enabled())
	test.ExpectFailure(t, r.atu.Control().View())
	test.ExpectEquality(t, r.atu.String(), "boot=on ctrl=00 enabled=false pid=0 view=false")

	r.leaveBoot()
	r.mapControl(0x37)
	r.atu.Table.Write(10, 0xffff, bus.MaskWord)
	test.ExpectFailure(t, r.atu.Boot())

	r.atu.Reset()
	test.ExpectSuccess(t, r.atu.Boot())
	test.ExpectEquality(t, r.atu.Control().Value(), 0)
	test.ExpectFailure(t, r.atu.Control().View())
	test.ExpectEquality(t, r.atu.Table.Read(10), 0)
}

func TestBelowSplitIsIdentity(t *testing.T) {
	r := newRig(t)
	r.leaveBoot()

	// fill the page table with entries that would move pages if they were used
	for i := range uint32(memorymap.PageTableEntries) {
		r.atu.Table.Write(i, 0x07ff-uint16(i), bus.MaskWord)
	}

	for _, ctrl := range []uint8{0x00, 0x10, 0x20, 0x30, 0x17} {
		r.mapControl(ctrl)
		for _, offset := range []uint32{0x000000, 0x001234, 0x0fffff, 0x300010} {
			v := uint16(offset) ^ uint16(ctrl)
			r.atu.Write(offset, v, bus.MaskWord)
			pv, err := r.phys.Peek(offset)
			test.ExpectSuccess(t, err, ctrl, offset)
			test.ExpectEquality(t, pv, v, ctrl, offset)
			test.ExpectEquality(t, r.atu.Read(offset, bus.MaskWord), v, ctrl, offset)
		}
	}

	test.ExpectEquality(t, len(r.cpu.faults), 0)
}

func TestHighRangeDisabled(t *testing.T) {
	r := newRig(t)
	r.leaveBoot()

	// identity when the view is not selected
	test.DemandSuccess(t, r.phys.Poke(0x001234, 0x5678, bus.MaskWord))
	test.ExpectEquality(t, r.atu.Read(memorymap.Split|0x001234, bus.MaskWord), 0x5678)

	route, dest := r.atu.Route(memorymap.Split|0x001234, true)
	test.ExpectEquality(t, route, atu.RouteTranslated)
	test.ExpectEquality(t, dest, 0x001234)

	// the page table when the view is selected
	r.mapControl(0x20)
	test.ExpectSuccess(t, r.atu.Control().View())
	r.atu.Write(memorymap.Split|0x001234, 0x4321, bus.MaskWord)
	test.ExpectEquality(t, r.atu.Table.Read(memorymap.PageOf(0x001234)), 0x4321)

	// main RAM is not affected by writes to the view
	pv, _ := r.phys.Peek(0x001234)
	test.ExpectEquality(t, pv, 0x5678)

	route, dest = r.atu.Route(memorymap.Split|0x001234, true)
	test.ExpectEquality(t, route, atu.RouteTable)
	test.ExpectEquality(t, dest, 0x002)

	// every offset in a page reaches the same entry
	test.ExpectEquality(t, r.atu.Read(memorymap.Split|0x0010ff, bus.MaskWord), 0x4321)

	// the view bit is not readable
	test.ExpectEquality(t, r.atu.Read(memorymap.MapControlRegister, bus.MaskWord), 0x0000)
}

func TestTranslation(t *testing.T) {
	r := newRig(t)
	r.leaveBoot()

	r.atu.Table.Write(5, 0x0003, bus.MaskWord)
	r.mapControl(0x10)
	test.ExpectSuccess(t, r.atu.Control().Enabled())

	logical := memorymap.Split | 5<<memorymap.PageBits | 0x123
	test.ExpectEquality(t, r.atu.Translate(logical), 3<<memorymap.PageBits|0x123)

	r.atu.Write(logical, 0xcafe, bus.MaskWord)
	pv, err := r.phys.Peek(3<<memorymap.PageBits | 0x123)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pv, 0xcafe)
	test.ExpectEquality(t, r.atu.Read(logical, bus.MaskWord), 0xcafe)

	// the other fields of the entry are not consulted
	r.atu.Table.Write(5, 0xf803, bus.MaskWord)
	test.ExpectEquality(t, r.atu.Translate(logical), 3<<memorymap.PageBits|0x123)

	// byte wide writes through translation
	r.atu.Write(logical, 0x0011, bus.MaskLow)
	test.ExpectEquality(t, r.atu.Read(logical, bus.MaskWord), 0xca11)

	// translation to video RAM
	r.atu.Table.Write(6, uint16(memorymap.OriginVRAM>>memorymap.PageBits), bus.MaskWord)
	r.atu.Write(memorymap.Split|6<<memorymap.PageBits, 0x8001, bus.MaskWord)
	pv, _ = r.phys.Peek(memorymap.OriginVRAM)
	test.ExpectEquality(t, pv, 0x8001)

	test.ExpectEquality(t, len(r.cpu.faults), 0)
}

func TestPageTableMaskedWrites(t *testing.T) {
	r := newRig(t)
	r.leaveBoot()
	r.mapControl(0x20)

	logical := memorymap.Split | 9<<memorymap.PageBits
	r.atu.Write(logical, 0x1234, bus.MaskWord)
	r.atu.Write(logical, 0xff00, bus.MaskHigh)
	test.ExpectEquality(t, r.atu.Read(logical, bus.MaskWord), 0xff34)
	r.atu.Write(logical, 0x00aa, bus.MaskLow)
	test.ExpectEquality(t, r.atu.Table.Read(9), 0xffaa)
}

func TestInvalidWindow(t *testing.T) {
	r := newRig(t)
	r.leaveBoot()

	// direct read
	test.ExpectEquality(t, r.atu.Read(memorymap.OriginInvalid, bus.MaskWord), 0)
	test.DemandEquality(t, len(r.cpu.faults), 1)
	test.ExpectEquality(t, r.cpu.faults[0], bus.Fault{Address: 0x200000, Kind: bus.Read, FC: bus.SupervisorData})

	// direct write at the top of the window
	r.cpu.fc = bus.UserData
	r.atu.Write(memorymap.MemtopInvalid, 0xffff, bus.MaskLow)
	test.DemandEquality(t, len(r.cpu.faults), 2)
	test.ExpectEquality(t, r.cpu.faults[1], bus.Fault{Address: 0x5ffffe, Kind: bus.Write, FC: bus.UserData})

	// just outside of the window
	r.atu.Read(memorymap.OriginInvalid-1, bus.MaskWord)
	r.atu.Read(memorymap.MemtopInvalid+1, bus.MaskWord)
	test.ExpectEquality(t, len(r.cpu.faults), 2)

	// high range identity, translation disabled
	r.atu.Read(memorymap.Split|memorymap.OriginInvalid, bus.MaskWord)
	test.DemandEquality(t, len(r.cpu.faults), 3)
	test.ExpectEquality(t, r.cpu.faults[2].Address, (memorymap.Split|memorymap.OriginInvalid)<<1)

	// translated into the window. the fault reports the logical address
	r.atu.Table.Write(7, uint16(memorymap.OriginInvalid>>memorymap.PageBits), bus.MaskWord)
	r.mapControl(0x10)
	logical := memorymap.Split | 7<<memorymap.PageBits | 0x10
	r.atu.Write(logical, 0x1234, bus.MaskWord)
	test.DemandEquality(t, len(r.cpu.faults), 4)
	test.ExpectEquality(t, r.cpu.faults[3], bus.Fault{Address: logical << 1, Kind: bus.Write, FC: bus.UserData})

	// the page table view is never in the window
	r.mapControl(0x20)
	r.atu.Read(logical, bus.MaskWord)
	test.ExpectEquality(t, len(r.cpu.faults), 4)
}

func TestInvalidWindowDuringBoot(t *testing.T) {
	r := newRig(t)

	// reads are served by the boot ROM
	r.atu.Read(memorymap.OriginInvalid, bus.MaskWord)
	test.ExpectEquality(t, len(r.cpu.faults), 0)

	// writes are not
	r.atu.Write(memorymap.OriginInvalid, 0, bus.MaskWord)
	test.ExpectEquality(t, len(r.cpu.faults), 1)
}

func TestPeekPoke(t *testing.T) {
	r := newRig(t)

	// boot mode survives a poke of the sound register
	err := r.atu.Poke(memorymap.SoundRegister, 0xff00, bus.MaskHigh)
	test.ExpectSuccess(t, errors.Is(err, bus.ErrPokeRegister))
	test.ExpectSuccess(t, r.atu.Boot())
	test.ExpectEquality(t, len(r.sound), 0)

	// peek in boot mode returns what a read would return
	pv, err := r.atu.Peek(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pv, r.atu.Read(0, bus.MaskWord))

	r.leaveBoot()
	test.ExpectEquality(t, len(r.sound), 1)
	test.ExpectEquality(t, r.sound[0], 0x9f)

	// the control register can not be poked
	err = r.atu.Poke(memorymap.MapControlRegister, 0x3000, bus.MaskHigh)
	test.ExpectSuccess(t, errors.Is(err, bus.ErrPokeRegister))
	test.ExpectEquality(t, r.atu.Control().Value(), 0)
	test.ExpectFailure(t, r.atu.Control().View())

	// but it can be peeked
	r.mapControl(0x13)
	pv, err = r.atu.Peek(memorymap.MapControlRegister)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pv, 0x1300)

	// invalid window never faults
	_, err = r.atu.Peek(memorymap.OriginInvalid)
	test.ExpectSuccess(t, errors.Is(err, bus.ErrUnmapped))
	err = r.atu.Poke(memorymap.OriginInvalid, 0, bus.MaskWord)
	test.ExpectSuccess(t, errors.Is(err, bus.ErrUnmapped))
	test.ExpectEquality(t, len(r.cpu.faults), 0)

	// poke and peek through translation
	r.atu.Table.Write(1, 0x0010, bus.MaskWord)
	logical := memorymap.Split | 1<<memorymap.PageBits | 0x02
	test.ExpectSuccess(t, r.atu.Poke(logical, 0xabcd, bus.MaskWord))
	pv, _ = r.phys.Peek(0x10<<memorymap.PageBits | 0x02)
	test.ExpectEquality(t, pv, 0xabcd)
	pv, err = r.atu.Peek(logical)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pv, 0xabcd)

	// poke and peek of the page table view
	r.mapControl(0x20)
	test.ExpectSuccess(t, r.atu.Poke(logical, 0x0020, bus.MaskWord))
	test.ExpectEquality(t, r.atu.Table.Read(1), 0x0020)
	pv, _ = r.atu.Peek(logical)
	test.ExpectEquality(t, pv, 0x0020)
	test.ExpectEquality(t, r.atu.Control().Value(), 0)
	test.ExpectSuccess(t, r.atu.Control().View())
}

func TestBootScenario(t *testing.T) {
	r := newRig(t)

	test.DemandSuccess(t, r.phys.Poke(0, 0x1111, bus.MaskWord))

	// the first word of the boot ROM
	test.ExpectEquality(t, r.atu.Read(0, bus.MaskWord), 0xb000)

	// every read is serviced by the boot ROM whatever the control state
	r.mapControl(0x30)
	test.ExpectEquality(t, r.atu.Read(memorymap.Split|0x4005, bus.MaskWord), 0xb005)
	r.mapControl(0x00)

	// writes are not intercepted
	r.atu.Write(0x0002, 0x2222, bus.MaskWord)
	pv, _ := r.phys.Peek(0x0002)
	test.ExpectEquality(t, pv, 0x2222)

	// low lane write to the sound register does nothing
	r.atu.Write(memorymap.SoundRegister, 0x00ff, bus.MaskLow)
	test.ExpectSuccess(t, r.atu.Boot())

	r.leaveBoot()
	test.ExpectFailure(t, r.atu.Boot())
	test.ExpectEquality(t, r.atu.Read(0, bus.MaskWord), 0x1111)

	// reset restores boot mode
	r.atu.Reset()
	test.ExpectEquality(t, r.atu.Read(0, bus.MaskWord), 0xb000)
}

func TestViewScenario(t *testing.T) {
	r := newRig(t)
	r.leaveBoot()

	// select the view and write entry 5
	r.mapControl(0x20)
	entry5 := memorymap.Split | 5<<memorymap.PageBits
	r.atu.Write(entry5, 0x8421, bus.MaskWord)
	test.ExpectEquality(t, r.atu.Read(entry5, bus.MaskWord), 0x8421)

	e := r.atu.Table.Entry(5)
	test.ExpectEquality(t, e.PhysicalPage(), 0x421)
	test.ExpectSuccess(t, e.Dirty())
	test.ExpectFailure(t, e.WriteEnable())

	// deselect view and enable translation
	r.mapControl(0x10)
	test.ExpectEquality(t, r.atu.Translate(entry5|0x0042), 0x421<<memorymap.PageBits|0x0042)

	// physical page 0x421 is in the invalid window
	r.atu.Write(entry5|0x0042, 0x7777, bus.MaskWord)
	test.ExpectEquality(t, r.atu.Read(entry5|0x0042, bus.MaskWord), 0)
	test.ExpectEquality(t, len(r.cpu.faults), 2)
	test.ExpectEquality(t, r.cpu.faults[0].Kind, bus.Write)
	test.ExpectEquality(t, r.cpu.faults[1].Kind, bus.Read)
}
