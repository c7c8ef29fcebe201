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

package dbgmem

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/tek4404/hardware/memory/bus"
)

// Width of a debugger access.
type Width int

// List of valid Width values.
const (
	Word Width = iota
	Byte
)

func (w Width) String() string {
	if w == Byte {
		return "byte"
	}
	return "word"
}

// ParseWidth converts the single letter width argument used by the monitor.
// An empty string is a word access.
func ParseWidth(s string) (Width, error) {
	switch strings.ToUpper(s) {
	case "", "W":
		return Word, nil
	case "B":
		return Byte, nil
	}
	return Word, fmt.Errorf("dbgmem: unrecognised width (%s)", s)
}

// Sentinel errors returned when an address cannot be used for an access of
// the requested width.
var (
	ErrOddAddress = errors.New("word access at odd address")
	ErrAddress    = errors.New("address outside of logical address space")
)

// MaxAddress is the highest byte address on the CPU's 24 bit address bus.
const MaxAddress = 0xffffff

// ParseAddress interprets s as a hexadecimal number. The number can be
// prefixed with 0x or $.
func ParseAddress(s string) (uint32, error) {
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	s = strings.TrimPrefix(s, "$")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("dbgmem: %w", err)
	}
	return uint32(v), nil
}

// lane returns the word offset and lane mask for an access at the byte
// address. The shift value is the number of bits the data must be moved to
// sit in the lane.
func lane(address uint32, width Width) (offset uint32, mask uint16, shift uint, err error) {
	if address > MaxAddress {
		return 0, 0, 0, fmt.Errorf("dbgmem: %w: %06x", ErrAddress, address)
	}

	offset = address >> 1

	if width == Word {
		if address&0x01 == 0x01 {
			return 0, 0, 0, fmt.Errorf("dbgmem: %w: %06x", ErrOddAddress, address)
		}
		return offset, bus.MaskWord, 0, nil
	}

	// the even byte is on the upper data lane
	if address&0x01 == 0x00 {
		return offset, bus.MaskHigh, 8, nil
	}
	return offset, bus.MaskLow, 0, nil
}
