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

package romloader_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/tek4404/logger"
	"github.com/jetsetilly/tek4404/romloader"
	"github.com/jetsetilly/tek4404/test"
)

func chips() ([]byte, []byte) {
	even := make([]byte, romloader.ChipSize)
	odd := make([]byte, romloader.ChipSize)
	for i := range even {
		even[i] = byte(i >> 8)
		odd[i] = byte(i)
	}
	return even, odd
}

func TestFromBytes(t *testing.T) {
	even, odd := chips()

	logger.Clear()
	defer logger.Clear()

	rom, err := romloader.FromBytes(even, odd)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(rom), romloader.ChipSize)
	test.ExpectEquality(t, rom[0], 0x0000)
	test.ExpectEquality(t, rom[0x1234], 0x1234)
	test.ExpectEquality(t, rom[0x3fff], 0x3fff)

	// the test data is not the known good dump
	w := &test.CompareWriter{}
	logger.Write(w)
	test.ExpectSuccess(t, w.Contains("romloader: tek_u158.bin: crc32 is"))
	test.ExpectSuccess(t, w.Contains("romloader: tek_u163.bin: crc32 is"))
}

func TestSize(t *testing.T) {
	even, odd := chips()

	_, err := romloader.FromBytes(even[:10], odd)
	test.ExpectSuccess(t, errors.Is(err, romloader.ErrSize))
	_, err = romloader.FromBytes(even, append(odd, 0))
	test.ExpectSuccess(t, errors.Is(err, romloader.ErrSize))
	_, err = romloader.FromInterleaved(even)
	test.ExpectSuccess(t, errors.Is(err, romloader.ErrSize))
}

func TestFromInterleaved(t *testing.T) {
	data := make([]byte, romloader.ChipSize*2)
	data[0] = 0x12
	data[1] = 0x34
	data[len(data)-2] = 0xab
	data[len(data)-1] = 0xcd

	rom, err := romloader.FromInterleaved(data)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, rom[0], 0x1234)
	test.ExpectEquality(t, rom[romloader.ChipSize-1], 0xabcd)
}

func TestVerify(t *testing.T) {
	even, _ := chips()
	test.ExpectFailure(t, romloader.U158.Verify(even))

	c := romloader.Chip{Label: "test", CRC32: 0, SHA1: "da39a3ee5e6b4b0d3255bfef95601890afd80709"}
	test.ExpectSuccess(t, c.Verify([]byte{}))

	c.SHA1 = "0000"
	test.ExpectFailure(t, c.Verify([]byte{}))
}

func TestLoad(t *testing.T) {
	even, odd := chips()

	dir := t.TempDir()
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "even"), even, 0o644))
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "odd"), odd, 0o644))

	rom, err := romloader.Load(filepath.Join(dir, "even"), filepath.Join(dir, "odd"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, rom[0x0102], 0x0102)

	_, err = romloader.Load(filepath.Join(dir, "missing"), filepath.Join(dir, "odd"))
	test.ExpectFailure(t, err)

	_, err = romloader.Load("ftp://example.com/even", filepath.Join(dir, "odd"))
	test.ExpectFailure(t, err)
}

func TestLoadHTTP(t *testing.T) {
	data := make([]byte, romloader.ChipSize*2)
	data[2] = 0x4e
	data[3] = 0x71

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rom.bin" {
			http.NotFound(w, r)
			return
		}
		w.Write(data)
	}))
	defer srv.Close()

	rom, err := romloader.LoadInterleaved(srv.URL + "/rom.bin")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, rom[1], 0x4e71)

	_, err = romloader.LoadInterleaved(srv.URL + "/missing.bin")
	test.ExpectFailure(t, err)
}
