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

import "fmt"

// Control is the state of the map control register.
type Control struct {
	// the bits of the register that can be read back
	value uint8

	// page table view select
	view bool
}

// bits of the map control register
const (
	controlProcess = 0x07
	controlStored  = 0x1f
	controlEnable  = 0x10
	controlView    = 0x20
)

func (c *Control) write(data uint8) {
	c.view = data&controlView == controlView
	c.value = data & controlStored
}

// Value returns the readable bits of the register. The view select bit is not
// included.
func (c Control) Value() uint8 {
	return c.value
}

// Enabled returns true if translation is enabled.
func (c Control) Enabled() bool {
	return c.value&controlEnable == controlEnable
}

// Process returns the current process id.
func (c Control) Process() uint8 {
	return c.value & controlProcess
}

// View returns true if the page table view is selected.
func (c Control) View() bool {
	return c.view
}

func (c Control) String() string {
	return fmt.Sprintf("ctrl=%02x enabled=%v pid=%d view=%v", c.value, c.Enabled(), c.Process(), c.view)
}
