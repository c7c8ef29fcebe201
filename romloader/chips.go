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

package romloader

import (
	"crypto/sha1"
	"fmt"
	"hash/crc32"
)

// ChipSize is the size in bytes of each of the two boot ROM chips.
const ChipSize = 0x4000

// Chip describes one of the boot ROM chips.
type Chip struct {
	Label string
	CRC32 uint32
	SHA1  string
}

// the known good dumps of the two chips
var (
	U158 = Chip{
		Label: "tek_u158.bin",
		CRC32: 0x9939e660,
		SHA1:  "66b4309e93e4ff20c1295dc2ec2a8d6389b2578c",
	}
	U163 = Chip{
		Label: "tek_u163.bin",
		CRC32: 0xa82dcbb1,
		SHA1:  "a7e4545e9ea57619faacc1556fa346b18f870084",
	}
)

// Verify compares the data with the known good dump of the chip. Returns nil
// if the data matches.
func (c Chip) Verify(data []byte) error {
	if crc := crc32.ChecksumIEEE(data); crc != c.CRC32 {
		return fmt.Errorf("%s: crc32 is %08x (expected %08x)", c.Label, crc, c.CRC32)
	}
	if sum := fmt.Sprintf("%x", sha1.Sum(data)); sum != c.SHA1 {
		return fmt.Errorf("%s: sha1 is %s (expected %s)", c.Label, sum, c.SHA1)
	}
	return nil
}
