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
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/jetsetilly/tek4404/logger"
)

// ErrSize is returned when ROM data is not the expected size.
var ErrSize = errors.New("romloader: incorrect size")

// Load the two boot ROM chips and interleave them.
func Load(even string, odd string) ([]uint16, error) {
	e, err := fetch(even)
	if err != nil {
		return nil, err
	}
	o, err := fetch(odd)
	if err != nil {
		return nil, err
	}
	return FromBytes(e, o)
}

// LoadInterleaved loads a boot ROM image in which the bytes of the two chips
// have already been interleaved.
func LoadInterleaved(filename string) ([]uint16, error) {
	d, err := fetch(filename)
	if err != nil {
		return nil, err
	}
	return FromInterleaved(d)
}

// FromBytes creates the boot ROM from the data of the two chips.
func FromBytes(even []byte, odd []byte) ([]uint16, error) {
	if len(even) != ChipSize {
		return nil, fmt.Errorf("%w: %s is %d bytes", ErrSize, U158.Label, len(even))
	}
	if len(odd) != ChipSize {
		return nil, fmt.Errorf("%w: %s is %d bytes", ErrSize, U163.Label, len(odd))
	}

	for _, v := range []struct {
		chip Chip
		data []byte
	}{
		{chip: U158, data: even},
		{chip: U163, data: odd},
	} {
		if err := v.chip.Verify(v.data); err != nil {
			logger.Log(logger.Allow, "romloader", err)
		}
	}

	rom := make([]uint16, ChipSize)
	for i := range rom {
		rom[i] = uint16(even[i])<<8 | uint16(odd[i])
	}

	return rom, nil
}

// FromInterleaved creates the boot ROM from data in which the bytes of the
// two chips alternate. Words are big-endian.
func FromInterleaved(data []byte) ([]uint16, error) {
	if len(data) != ChipSize*2 {
		return nil, fmt.Errorf("%w: interleaved image is %d bytes", ErrSize, len(data))
	}

	even := make([]byte, ChipSize)
	odd := make([]byte, ChipSize)
	for i := range ChipSize {
		even[i] = data[i*2]
		odd[i] = data[i*2+1]
	}

	return FromBytes(even, odd)
}

// fetch the data from a local file or over HTTP.
func fetch(filename string) ([]byte, error) {
	scheme := "file"
	if u, err := url.Parse(filename); err == nil && u.Scheme != "" {
		scheme = u.Scheme
	}

	switch scheme {
	case "http", "https":
		resp, err := http.Get(filename)
		if err != nil {
			return nil, fmt.Errorf("romloader: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("romloader: %s: %s", filename, resp.Status)
		}

		d, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("romloader: %w", err)
		}
		return d, nil

	case "file":
		d, err := os.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("romloader: %w", err)
		}
		return d, nil
	}

	return nil, fmt.Errorf("romloader: unsupported URL scheme (%s)", scheme)
}
