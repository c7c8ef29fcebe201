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

package monitor

import (
	"strings"
	"time"
)

// the maximum time between two calls to Complete() for the second call to
// cycle through the options
const cycleDuration = 500 * time.Millisecond

// TabCompletion keeps track of the most recent completion attempt so that
// repeated requests cycle through the possible completions.
type TabCompletion struct {
	options    []string
	lastOption int

	// the string most recently returned by Complete()
	lastGuess string

	lastCompletionTime time.Time
}

// NewTabCompletion is the preferred method of initialisation for TabCompletion.
func NewTabCompletion() *TabCompletion {
	return &TabCompletion{
		options: make([]string, 0, len(Commands)),
	}
}

// Complete implements the terminal.TabCompletion interface. The last word in
// the input is expanded to the closest match in the list of keywords allowed
// at that position.
func (tc *TabCompletion) Complete(input string) string {
	p := strings.Split(input, " ")

	if input == tc.lastGuess && time.Since(tc.lastCompletionTime) < cycleDuration {
		if len(tc.options) <= 1 {
			return input
		}

		// remove the trailing space and the previous completion
		p = p[:len(p)-1]
		tc.lastOption++
		if tc.lastOption >= len(tc.options) {
			tc.lastOption = 0
		}
	} else {
		tc.options = tc.options[:0]
		tc.lastOption = 0

		var candidates []string
		if len(p) == 1 {
			candidates = Commands
		} else if def, ok := definitions[strings.ToUpper(p[0])]; ok {
			candidates = def.options
		}

		trigger := strings.ToUpper(p[len(p)-1])
		for _, c := range candidates {
			if strings.HasPrefix(c, trigger) {
				tc.options = append(tc.options, c)
			}
		}

		if len(tc.options) == 0 {
			return input
		}
	}

	p[len(p)-1] = tc.options[tc.lastOption]
	tc.lastGuess = strings.Join(p, " ") + " "
	tc.lastCompletionTime = time.Now()

	return tc.lastGuess
}
