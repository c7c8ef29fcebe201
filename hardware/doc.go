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

// Package hardware is the base package for the Tek4404 emulation. It and its
// sub-packages contain everything required for the memory system of the
// machine: the physical bus, the boot ROM, the address translation unit and
// the CPU's bus error input.
//
// The Tek4404 type wires the components together. An instance is created
// with NewTek4404():
//
//	env, _ := instance.NewInstance(instance.Main, nil)
//	rom, _ := romloader.Load("tek_u158.bin", "tek_u163.bin")
//	tek, _ := hardware.NewTek4404(env, rom)
//
// Logical accesses are made through the ATU field. The machine starts in boot
// mode.
package hardware
