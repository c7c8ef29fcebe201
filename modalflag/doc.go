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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Whereas flag.FlagSet is given the arguments to parse when Parse() is
// called, modalflag is first given the arguments with NewArgs() and then
// Parse() is called with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("MONITOR", "SCRIPT")
//	_, _ = md.Parse()
//
// After Parse(), the Mode() function returns the selected sub-mode. The first
// sub-mode in the list is the default and is selected if the first non-flag
// argument is not a sub-mode. The arguments after the mode selector can then
// be parsed for a new set of flags by calling NewMode() followed by Parse()
// again:
//
//	switch md.Mode() {
//	case "SCRIPT":
//		md.NewMode()
//		term := md.AddChoice("term", "PLAIN", []string{"PLAIN", "COLOR"}, "terminal type")
//		p, err := md.Parse()
//		switch p {
//		case modalflag.ParseError:
//			return err
//		case modalflag.ParseHelp:
//			return nil
//		}
//		runScript(*term, md.RemainingArgs())
//	}
//
// Modes can be chained together as deeply as required. Sub-mode comparisons
// are case insensitive.
package modalflag
