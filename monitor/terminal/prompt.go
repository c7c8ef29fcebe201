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

package terminal

import "strings"

// Prompt specifies the prompt text.
type Prompt struct {
	Content string

	// the ATU is in boot mode
	Boot bool

	// a bus error is waiting to be acknowledged
	Pending bool
}

// String returns the prompt with "standard" decoration.
func (p Prompt) String() string {
	s := strings.Builder{}
	s.WriteString("[ ")
	if p.Boot {
		s.WriteString("(boot) ")
	}
	s.WriteString(strings.TrimSpace(p.Content))
	s.WriteString(" ]")
	if p.Pending {
		s.WriteString(" !")
	}
	s.WriteString(" > ")
	return s.String()
}
