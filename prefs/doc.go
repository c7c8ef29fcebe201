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

// Package prefs facilitates the storage of preferential values in the
// tek4404 system. It is the underlying engine of the hardware preferences
// (see the hardware/preferences package).
//
// Preference values are stored in a Disk instance. Each value is added to
// the Disk with Add() along with a unique key. Keys are "dotted" strings
// with the first part of the key indicating the subsystem the value belongs
// to. For example:
//
//	physical.logunmapped
//
// Values are saved as text, one key/value pair per line, separated by the
// string " :: ". The first line of the file is a warning not to edit the file
// by hand.
//
// More than one Disk instance can share the same file. Saving one Disk will
// not clobber the values saved by another Disk instance.
//
// Preferences can also be specified on the command line (see the
// PushCommandLineStack() function). Command line values take precedence over
// those loaded from disk but they are never saved.
package prefs
