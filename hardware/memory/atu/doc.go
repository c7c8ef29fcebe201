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

// Package atu implements the address translation unit of the Tek4404.
//
// The ATU sits between the CPU and the physical bus. Every logical access is
// routed in one of four ways:
//
//	boot mode and a read		the word is taken from the boot ROM
//	offset below the split		passed directly to the physical bus
//	offset above, view selected	the page table itself
//	offset above, view not selected	translated by the page table
//
// Translation, when enabled, replaces the logical page number with the
// physical page number held in the table entry for that page. The remaining
// fields of an entry (process, write-enable and dirty) are not consulted.
//
// An access that arrives in the invalid window of the physical address space
// raises a bus error on the FaultReceiver given to NewATU(). The access is
// still completed. Peek() and Poke() never raise bus errors and never change
// the map control register or the boot flag.
//
// The map control register and the boot trigger (the sound register) are
// devices on the physical bus. They are created by the ControlPort() and
// BootTriggerPort() functions and must be attached to the physical bus by the
// caller.
package atu
