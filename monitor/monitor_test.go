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

package monitor_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/tek4404/hardware"
	"github.com/jetsetilly/tek4404/hardware/instance"
	"github.com/jetsetilly/tek4404/hardware/preferences"
	"github.com/jetsetilly/tek4404/monitor"
	"github.com/jetsetilly/tek4404/monitor/terminal/plainterm"
	"github.com/jetsetilly/tek4404/test"
)

func newTek(t *testing.T) *hardware.Tek4404 {
	t.Helper()
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	env, err := instance.NewInstance(instance.Test, p)
	test.DemandSuccess(t, err)
	tek, err := hardware.NewTek4404(env, nil)
	test.DemandSuccess(t, err)
	return tek
}

// run the monitor with the input lines and return the output
func run(t *testing.T, tek *hardware.Tek4404, lines ...string) string {
	t.Helper()
	out := &test.CompareWriter{}
	term := plainterm.NewPlainTerminal(strings.NewReader(strings.Join(lines, "\n")), out)
	mon := monitor.NewMonitor(tek, term)
	test.DemandSuccess(t, mon.Start())
	return out.String()
}

func TestSession(t *testing.T) {
	tek := newTek(t)

	out := run(t, tek,
		"write 788000 0 b",
		"read 100",
		"write 100 beef",
		"read 100",
		"READ 101 B",
		"read 200000",
		"fault",
		"ack",
		"ack",
		"bogus",
		"read",
		"translate 800000",
		"control 10",
		"entry 0 2",
		"translate 800010",
		"map",
		"fc 1",
		"",
		"quit",
		"read 100",
	)

	expected := []string{
		"788000 (Sound) -> 00",
		"000100 (Main RAM) -> 0000",
		"000100 (Main RAM) -> beef",
		"000100 (Main RAM) -> beef",
		"000101 (Main RAM) -> ef",
		"! 200000 (Invalid) -> 0000 BUS ERROR: read at 200000 (supervisor program)",
		"! read at 200000 (supervisor program) [pending] (total 1)",
		"acknowledged: read at 200000 (supervisor program)",
		"no pending bus error",
		"* unknown command: BOGUS",
		"* wrong number of arguments: READ <address> [B|W]",
		"800000 [translated 000000] (Main RAM)",
		"boot=off ctrl=10 enabled=true pid=0 view=false",
		"entry 000: 0002 page 002 pid 0",
		"800010 [translated 002010] (Main RAM)",
		"000 800000: 0002 page 002 pid 0",
		"function code: 1 (user data)",
	}

	test.ExpectEquality(t, out, strings.Join(expected, "\n")+"\n")
	test.ExpectSuccess(t, tek.ATU.Control().Enabled())
	test.ExpectEquality(t, tek.Sound, 0x00)
	test.ExpectEquality(t, tek.SoundWrites, 1)
}

func TestPeekPoke(t *testing.T) {
	tek := newTek(t)

	out := run(t, tek,
		"peek 0",
		"poke 780000 1 b",
		"poke 10 1ff b",
		"poke 10 ab b",
		"peek 10",
		"peek 11 w",
		"read 10 x",
	)

	expected := []string{
		"000000 [boot rom 000000] (Boot ROM) -> 0000",
		"* dbgmem: cannot poke register",
		"* value too large (1ff)",
		"000010 (Main RAM) -> ab",
		"000010 [boot rom 000010] (Boot ROM) -> 0000",
		"* dbgmem: word access at odd address: 000011",
		"* dbgmem: unrecognised width (x)",
	}

	test.ExpectEquality(t, out, strings.Join(expected, "\n")+"\n")

	// boot mode does not affect writes
	v, err := tek.Phys.Peek(0x000008)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0xab00)
}

func TestPeekUnmapped(t *testing.T) {
	tek := newTek(t)

	out := run(t, tek,
		"write 788000 0 b",
		"peek 200000",
	)

	test.ExpectSuccess(t, strings.HasSuffix(out, "200000 (Invalid) -> 0000 unmapped\n"))
	test.ExpectEquality(t, strings.Contains(out, "* "), false)
	test.ExpectEquality(t, tek.CPU.Pulses(), 0)
}

func TestExecute(t *testing.T) {
	tek := newTek(t)
	out := &test.CompareWriter{}
	term := plainterm.NewPlainTerminal(strings.NewReader(""), out)
	test.DemandSuccess(t, term.Initialise())
	mon := monitor.NewMonitor(tek, term)

	test.ExpectSuccess(t, errors.Is(mon.Execute("quit"), monitor.ErrQuit))
	test.ExpectSuccess(t, errors.Is(mon.Execute("xyzzy"), monitor.ErrUnknownCommand))
	test.ExpectSuccess(t, errors.Is(mon.Execute("map 1"), monitor.ErrArguments))
	test.ExpectSuccess(t, mon.Execute("  "))

	test.ExpectSuccess(t, mon.Execute("help"))
	test.ExpectSuccess(t, out.Contains("READ WRITE PEEK POKE"))

	out.Clear()
	test.ExpectSuccess(t, mon.Execute("help entry"))
	test.ExpectSuccess(t, out.Compare("Display or change a page table entry\nusage: ENTRY <index> [value]\n"))
	test.ExpectFailure(t, mon.Execute("help xyzzy"))

	out.Clear()
	test.ExpectSuccess(t, mon.Execute("map"))
	test.ExpectSuccess(t, out.Compare("page table is empty\n"))

	out.Clear()
	test.ExpectSuccess(t, mon.Execute("fault"))
	test.ExpectSuccess(t, out.Compare("no bus errors\n"))

	out.Clear()
	test.ExpectSuccess(t, mon.Execute("memmap"))
	test.ExpectSuccess(t, out.Contains("000000 -> 1fffff\tMain RAM\n"))
	test.ExpectSuccess(t, out.Contains("200000 -> 5fffff\tInvalid\n"))

	out.Clear()
	test.ExpectSuccess(t, mon.Execute("prefs logfaults"))
	test.ExpectSuccess(t, out.Compare("logfaults: true\n"))
	test.ExpectSuccess(t, tek.Env.Prefs.LogFaults.Get().(bool))
	test.ExpectFailure(t, mon.Execute("prefs bogus"))

	test.ExpectSuccess(t, mon.Execute("write 788000 0 b"))
	test.ExpectSuccess(t, mon.Execute("control 35"))
	test.ExpectSuccess(t, tek.ATU.Control().View())
	test.ExpectSuccess(t, mon.Execute("write 800002 1234"))
	test.ExpectEquality(t, tek.ATU.Table.Read(0), 0x1234)

	test.ExpectSuccess(t, mon.Execute("reset"))
	test.ExpectSuccess(t, tek.ATU.Boot())
	test.ExpectEquality(t, tek.ATU.Table.Read(0), 0x0000)

	test.ExpectFailure(t, mon.Execute("log x"))
	test.ExpectSuccess(t, mon.Execute("log clear"))
	test.ExpectSuccess(t, mon.Execute("log 5"))
}

func TestScriptCommand(t *testing.T) {
	tek := newTek(t)

	fn := filepath.Join(t.TempDir(), "boot.lua")
	err := os.WriteFile(fn, []byte("write(0x788000, 0x02, 'b')\nprint('done', boot())\n"), 0o644)
	test.DemandSuccess(t, err)

	out := run(t, tek, "script "+fn, "script "+filepath.Join(t.TempDir(), "missing.lua"))
	test.ExpectSuccess(t, strings.HasPrefix(out, "done false\n* script: "))
	test.ExpectEquality(t, tek.Sound, 0x02)
}

func TestMemViz(t *testing.T) {
	tek := newTek(t)
	fn := filepath.Join(t.TempDir(), "atu.dot")

	out := run(t, tek, "write 788000 0 b", "control 20", "write 800000 3", "memviz "+fn)
	test.ExpectSuccess(t, strings.HasSuffix(out, "ATU state written to "+fn+"\n"))

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "digraph"))
}

func TestTabCompletion(t *testing.T) {
	tc := monitor.NewTabCompletion()
	test.ExpectEquality(t, tc.Complete("tra"), "TRANSLATE ")
	test.ExpectEquality(t, tc.Complete("read 100 "), "read 100 B ")
	test.ExpectEquality(t, tc.Complete("read 100 B "), "read 100 W ")
	test.ExpectEquality(t, tc.Complete("help en"), "help ENTRY ")
	test.ExpectEquality(t, tc.Complete("xyzzy"), "xyzzy")
	test.ExpectEquality(t, tc.Complete("map x"), "map x")
}
