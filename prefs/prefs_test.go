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

package prefs_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/jetsetilly/tek4404/prefs"
	"github.com/jetsetilly/tek4404/test"
)

func prefsFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "prefs")
}

func cmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading prefs file: %v", err)
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := prefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("TRUE"))
	test.ExpectSuccess(t, dsk.Save())
	cmpFile(t, fn, "test :: true\ntestB :: true\n")

	test.ExpectSuccess(t, w.Set("nonsense"))
	test.ExpectEquality(t, w.Get().(bool), false)

	test.ExpectFailure(t, v.Set(1.5))
}

func TestString(t *testing.T) {
	fn := prefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, v.Set("bar"))
	test.ExpectSuccess(t, dsk.Save())
	cmpFile(t, fn, "foo :: bar\n")
}

func TestInt(t *testing.T) {
	fn := prefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectSuccess(t, w.Set("0x20"))
	test.ExpectEquality(t, w.Get().(int), 32)

	// string that cannot be converted leaves the value untouched
	test.ExpectFailure(t, w.Set("foo"))
	test.ExpectEquality(t, w.Get().(int), 32)

	test.ExpectSuccess(t, dsk.Save())
	cmpFile(t, fn, "number :: 10\nnumberB :: 32\n")
}

func TestGeneric(t *testing.T) {
	fn := prefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var w, h int

	v := prefs.NewGeneric(
		func(s string) error {
			_, err := fmt.Sscanf(s, "%d,%d", &w, &h)
			return err
		},
		func() string {
			return fmt.Sprintf("%d,%d", w, h)
		},
	)

	test.ExpectSuccess(t, dsk.Add("generic", v))

	w = 1
	h = 2
	test.ExpectSuccess(t, dsk.Save())
	cmpFile(t, fn, "generic :: 1,2\n")

	w = 0
	h = 0
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, w, 1)
	test.ExpectEquality(t, h, 2)
}

func TestSharedFile(t *testing.T) {
	fn := prefsFile(t)

	dskA, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	dskB, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var a prefs.Bool
	var b prefs.String
	test.ExpectSuccess(t, dskA.Add("physical.logunmapped", &a))
	test.ExpectSuccess(t, dskB.Add("monitor.prompt", &b))

	test.ExpectSuccess(t, a.Set(true))
	test.ExpectSuccess(t, dskA.Save())
	test.ExpectSuccess(t, b.Set("> "))
	test.ExpectSuccess(t, dskB.Save())

	// saving dskB did not clobber dskA's entry
	cmpFile(t, fn, "monitor.prompt :: > \nphysical.logunmapped :: true\n")
}

func TestLoad(t *testing.T) {
	fn := prefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("value", &v))

	err = dsk.Load(false)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, prefs.NoPrefsFile))

	// first use creates the file
	test.ExpectSuccess(t, v.Set(99))
	test.ExpectSuccess(t, dsk.Load(true))
	cmpFile(t, fn, "value :: 99\n")

	test.ExpectSuccess(t, v.Set(1))
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, v.Get().(int), 99)

	test.ExpectSuccess(t, dsk.Reset())
	test.ExpectEquality(t, v.Get().(int), 0)
}

func TestLoadInvalidFile(t *testing.T) {
	fn := prefsFile(t)
	test.DemandSuccess(t, os.WriteFile(fn, []byte("hello\nvalue :: 1\n"), 0o644))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("value", &v))
	test.ExpectFailure(t, dsk.Load(false))
	test.ExpectEquality(t, v.Get().(int), 0)
}

func TestCommandLineOverride(t *testing.T) {
	fn := prefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	prefs.PushCommandLineStack("override::true")
	defer prefs.PopCommandLineStack()

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("override", &v))
	test.ExpectEquality(t, v.Get().(bool), true)
}

func TestHooks(t *testing.T) {
	var v prefs.Int

	var post int
	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(int64) < 0 {
			return errors.New("negative")
		}
		return nil
	})
	v.SetHookPost(func(nv prefs.Value) error {
		post = int(nv.(int64))
		return nil
	})

	test.ExpectSuccess(t, v.Set(5))
	test.ExpectEquality(t, post, 5)
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get().(int), 5)
}

func TestMaxStringLength(t *testing.T) {
	var s prefs.String

	s.SetMaxLen(5)
	test.ExpectSuccess(t, s.Set("123456789"))
	test.ExpectEquality(t, s.String(), "12345")

	s.SetMaxLen(3)
	test.ExpectEquality(t, s.String(), "123")

	s.SetMaxLen(0)
	test.ExpectSuccess(t, s.Set(strconv.Itoa(123456789)))
	test.ExpectEquality(t, s.String(), "123456789")
}
