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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/tek4404/hardware/instance"
	"github.com/jetsetilly/tek4404/hardware/memory/bus"
	"github.com/jetsetilly/tek4404/logger"
)

// BusErrorInput implements the atu.FaultReceiver interface.
type BusErrorInput struct {
	env *instance.Instance

	fc bus.FunctionCode

	// state of the BERR line. true only for the duration of the BusError()
	// function
	line bool

	// number of times the line has been asserted since the last reset
	pulses int

	// detail registers as latched by the most recent bus error
	detail bus.Fault

	// a bus error has occurred and has not been acknowledged
	pending bool

	// called after the detail registers have been latched and while the line
	// is asserted. can be nil
	onAssert func(bus.Fault)
}

// NewBusErrorInput is the preferred method of initialisation for the
// BusErrorInput type. The initial function code is supervisor program.
func NewBusErrorInput(env *instance.Instance) *BusErrorInput {
	return &BusErrorInput{
		env: env,
		fc:  bus.SupervisorProgram,
	}
}

func (be *BusErrorInput) String() string {
	if !be.pending {
		return fmt.Sprintf("fc=%d pulses=%d", be.fc, be.pulses)
	}
	return fmt.Sprintf("fc=%d pulses=%d pending: %s", be.fc, be.pulses, be.detail)
}

// Reset clears the pulse count and any pending fault. The function code is
// set to supervisor program.
func (be *BusErrorInput) Reset() {
	be.fc = bus.SupervisorProgram
	be.line = false
	be.pulses = 0
	be.detail = bus.Fault{}
	be.pending = false
}

// SetFunctionCode sets the function code for subsequent bus cycles.
func (be *BusErrorInput) SetFunctionCode(fc bus.FunctionCode) {
	be.fc = fc & 0x07
}

// FunctionCode implements the atu.FaultReceiver interface.
func (be *BusErrorInput) FunctionCode() bus.FunctionCode {
	return be.fc
}

// OnAssert sets the function to be called whenever the bus error line is
// asserted.
func (be *BusErrorInput) OnAssert(f func(bus.Fault)) {
	be.onAssert = f
}

// BusError implements the atu.FaultReceiver interface.
func (be *BusErrorInput) BusError(f bus.Fault) {
	be.line = true
	be.detail = f
	be.pending = true
	be.pulses++

	if be.env.Prefs.LogFaults.Get().(bool) {
		logger.Log(be.env, "bus error", f)
	}

	if be.onAssert != nil {
		be.onAssert(f)
	}

	be.line = false
}

// Line returns the current state of the bus error line.
func (be *BusErrorInput) Line() bool {
	return be.line
}

// Detail returns the detail registers latched by the most recent bus error.
func (be *BusErrorInput) Detail() bus.Fault {
	return be.detail
}

// Pending returns true if a bus error has occurred and has not yet been
// acknowledged.
func (be *BusErrorInput) Pending() bool {
	return be.pending
}

// Acknowledge a pending bus error. Returns the detail of the acknowledged
// fault and false if there was no pending bus error.
func (be *BusErrorInput) Acknowledge() (bus.Fault, bool) {
	if !be.pending {
		return bus.Fault{}, false
	}
	be.pending = false
	return be.detail, true
}

// Pulses returns the number of times the bus error line has been asserted
// since the last reset.
func (be *BusErrorInput) Pulses() int {
	return be.pulses
}
