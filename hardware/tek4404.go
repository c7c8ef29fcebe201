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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/tek4404/hardware/cpu"
	"github.com/jetsetilly/tek4404/hardware/instance"
	"github.com/jetsetilly/tek4404/hardware/memory/atu"
	"github.com/jetsetilly/tek4404/hardware/memory/bus"
	"github.com/jetsetilly/tek4404/hardware/memory/memorymap"
	"github.com/jetsetilly/tek4404/hardware/memory/physical"
	"github.com/jetsetilly/tek4404/logger"
)

// Tek4404 is the main container for the emulated components of the machine.
type Tek4404 struct {
	Env *instance.Instance

	Phys     *physical.Bus
	RAM      *physical.RAM
	VRAM     *physical.RAM
	DebugRAM *physical.RAM
	ROM      *physical.ROM
	Diag     *physical.Latch

	ATU *atu.ATU
	CPU *cpu.BusErrorInput

	// the most recent value written to the sound register and the number of
	// writes since reset
	Sound       uint8
	SoundWrites int
}

// NewTek4404 creates a new Tek4404 and everything associated with the
// hardware. The rom argument can be nil, in which case the boot ROM is
// filled with zeros.
//
// The machine is reset before it is returned.
func NewTek4404(env *instance.Instance, rom []uint16) (*Tek4404, error) {
	var err error

	tek := &Tek4404{
		Env: env,
	}

	if rom == nil {
		logger.Log(env, "tek4404", "no boot rom")
		rom = make([]uint16, memorymap.SizeROM)
	}

	tek.ROM, err = physical.NewROM(env, rom)
	if err != nil {
		return nil, fmt.Errorf("tek4404: %w", err)
	}

	tek.Phys = physical.NewBus(env)
	tek.RAM = physical.NewRAM(env, "Main RAM", memorymap.SizeMainRAM)
	tek.VRAM = physical.NewRAM(env, "Video RAM", memorymap.SizeVRAM)
	tek.DebugRAM = physical.NewRAM(env, "Debug RAM", memorymap.SizeDebugRAM)
	tek.Diag = physical.NewLatch("Diagnostic", nil)

	tek.CPU = cpu.NewBusErrorInput(env)
	tek.ATU = atu.NewATU(tek.Phys, tek.ROM, tek.CPU)

	attach := []struct {
		origin uint32
		memtop uint32
		mirror uint32
		dev    physical.Device
	}{
		{memorymap.OriginMainRAM, memorymap.MemtopMainRAM, memorymap.SizeMainRAM - 1, tek.RAM},
		{memorymap.OriginVRAM, memorymap.MemtopVRAM, memorymap.SizeVRAM - 1, tek.VRAM},
		{memorymap.OriginROM, memorymap.MemtopROM, memorymap.MaskROM, tek.ROM},
		{memorymap.OriginDebugRAM, memorymap.MemtopDebugRAM, memorymap.MaskDebugRAM, tek.DebugRAM},
		{memorymap.MapControlRegister, memorymap.MapControlRegister, 0, tek.ATU.ControlPort()},
		{memorymap.SoundRegister, memorymap.SoundRegister, 0, tek.ATU.BootTriggerPort(tek.sound)},
		{memorymap.DiagRegister, memorymap.DiagRegister, 0, tek.Diag},
	}

	for _, a := range attach {
		err = tek.Phys.Attach(a.origin, a.memtop, a.mirror, a.dev)
		if err != nil {
			return nil, fmt.Errorf("tek4404: %w", err)
		}
	}

	tek.Reset()

	return tek, nil
}

// sound is the sink for the sound register.
func (tek *Tek4404) sound(v uint8) {
	if tek.ATU.Boot() {
		logger.Log(tek.Env, "tek4404", "leaving boot mode")
	}
	tek.Sound = v
	tek.SoundWrites++
}

// Reset emulates the reset line of the machine:
//
//	RAM is cleared (or randomised)
//	the bus error input is cleared
//	the ATU enters boot mode and the page table is cleared
//	zero is written to the diagnostic and map control registers
func (tek *Tek4404) Reset() {
	tek.Phys.Reset()
	tek.CPU.Reset()
	tek.ATU.Reset()
	tek.Phys.Write(memorymap.DiagRegister, 0x0000, bus.MaskHigh)
	tek.Phys.Write(memorymap.MapControlRegister, 0x0000, bus.MaskHigh)
	tek.Sound = 0
	tek.SoundWrites = 0
}

func (tek *Tek4404) String() string {
	return fmt.Sprintf("%s %s", tek.ATU, tek.CPU)
}
