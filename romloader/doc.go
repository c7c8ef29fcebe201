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

// Package romloader loads the Tek4404 boot ROM.
//
// The boot ROM is made up of two 16K byte EPROMs. The U158 chip supplies the
// even (high) byte of every word and the U163 chip supplies the odd (low)
// byte. The two dumps can be loaded separately with Load() or as a single
// pre-interleaved image with LoadInterleaved(). Filenames can be local files
// or HTTP URLs.
//
//	rom, err := romloader.Load("roms/tek_u158.bin", "roms/tek_u163.bin")
//
// The result is a slice of words suitable for the physical.NewROM() function.
//
// Each chip is checked against the CRC32 and SHA1 values of the known good
// dump. A mismatch is logged but is not an error. An image of the wrong size
// is an error.
package romloader
