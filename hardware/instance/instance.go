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

// Package instance defines those parts of the emulation that might change from
// instance to instance of the Tek4404 type, but is not actually the machine
// itself.
package instance

import (
	"github.com/jetsetilly/tek4404/hardware/preferences"
)

// Label indicates the context of the instance.
type Label string

// List of valid Label values.
const (
	Main   Label = ""
	Script Label = "script"
	Test   Label = "test"
)

// Instance defines those parts of the emulation that might change between
// different instantiations of the Tek4404 type.
type Instance struct {
	Label Label

	// the preferences of the running instance. this instance can be shared
	// with other running instances of the emulation.
	Prefs *preferences.Preferences
}

// NewInstance is the preferred method of initialisation for the Instance type.
//
// The prefs argument can be nil, in which case a new prefs instance will be
// created from the default preferences file.
func NewInstance(label Label, prefs *preferences.Preferences) (*Instance, error) {
	ins := &Instance{
		Label: label,
	}

	if prefs == nil {
		var err error
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	ins.Prefs = prefs

	return ins, nil
}

// AllowLogging implements the logger.Permission interface. Only the main
// instance and scripted instances are allowed to log.
func (ins *Instance) AllowLogging() bool {
	return ins.Label != Test
}

// Normalise ensures the instance is in a known default state.
func (ins *Instance) Normalise() {
	ins.Prefs.SetDefaults()
	ins.Prefs.Reseed(1)
}
