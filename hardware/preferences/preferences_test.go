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

package preferences_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/tek4404/hardware/preferences"
	"github.com/jetsetilly/tek4404/prefs"
	"github.com/jetsetilly/tek4404/test"
)

func TestPreferencesFirstUse(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	p, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.RandomState.Get().(bool), false)
	test.ExpectEquality(t, p.LogFaults.Get().(bool), false)
	test.ExpectEquality(t, p.LogUnmapped.Get().(bool), false)

	// file is created on first use
	data, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(string(data), prefs.WarningBoilerPlate))
	test.ExpectSuccess(t, strings.Contains(string(data), "physical.logunmapped :: false"))
}

func TestPreferencesSaveLoad(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	p, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.LogFaults.Set(true))
	test.ExpectSuccess(t, p.Save())

	q, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.LogFaults.Get().(bool), true)

	q.SetDefaults()
	test.ExpectEquality(t, q.LogFaults.Get().(bool), false)
}

func TestPreferencesCommandLine(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	prefs.PushCommandLineStack("hardware.randstate::true")
	defer prefs.PopCommandLineStack()

	p, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.RandomState.Get().(bool), true)
}

func TestReseed(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	p, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)

	p.Reseed(1234)
	test.ExpectEquality(t, p.RandSeed, int64(1234))
	a := p.RandSrc.Int63()

	p.Reseed(1234)
	test.ExpectEquality(t, p.RandSrc.Int63(), a)
}
