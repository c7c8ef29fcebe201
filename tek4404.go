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

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/tek4404/hardware"
	"github.com/jetsetilly/tek4404/hardware/instance"
	"github.com/jetsetilly/tek4404/hardware/memory/memorymap"
	"github.com/jetsetilly/tek4404/hardware/preferences"
	"github.com/jetsetilly/tek4404/logger"
	"github.com/jetsetilly/tek4404/modalflag"
	"github.com/jetsetilly/tek4404/monitor"
	"github.com/jetsetilly/tek4404/monitor/terminal"
	"github.com/jetsetilly/tek4404/monitor/terminal/colorterm"
	"github.com/jetsetilly/tek4404/monitor/terminal/gocuiterm"
	"github.com/jetsetilly/tek4404/monitor/terminal/plainterm"
	"github.com/jetsetilly/tek4404/prefs"
	"github.com/jetsetilly/tek4404/romloader"
	"github.com/jetsetilly/tek4404/script"
	"github.com/jetsetilly/tek4404/statsview"
	"github.com/jetsetilly/tek4404/version"
	"golang.org/x/term"
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch the mode specified in the arguments and return the exit value for
// the process
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("MONITOR", "SCRIPT", "MEMMAP", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "MONITOR":
		err = monitorMode(md)

	case "SCRIPT":
		err = scriptMode(md)

	case "MEMMAP":
		err = memmapMode(md)

	case "VERSION":
		err = versionMode(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

// flags common to the modes that create a Tek4404 instance
type machineFlags struct {
	even      *string
	odd       *string
	rom       *string
	prefs     *string
	log       *bool
	statsview *bool
}

func addMachineFlags(md *modalflag.Modes) *machineFlags {
	return &machineFlags{
		even:      md.AddString("even", "", "boot rom image for the even byte lane (U158)"),
		odd:       md.AddString("odd", "", "boot rom image for the odd byte lane (U163)"),
		rom:       md.AddString("rom", "", "interleaved boot rom image"),
		prefs:     md.AddString("prefs", "", "preferences for this session, eg. \"hardware.logfaults::true\""),
		log:       md.AddBool("log", false, "echo debugging log to stdout"),
		statsview: md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address)),
	}
}

func (f *machineFlags) create(output io.Writer) (*hardware.Tek4404, error) {
	if *f.log {
		logger.SetEcho(logger.NewColorizer(output))
	}

	if *f.statsview {
		statsview.Launch(output)
	}

	if *f.prefs != "" {
		prefs.PushCommandLineStack(*f.prefs)
	}

	p, err := preferences.NewPreferences()
	if err != nil {
		return nil, err
	}

	if *f.prefs != "" {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			fmt.Fprintf(output, "! unused preferences: %s\n", unused)
		}
	}

	env, err := instance.NewInstance(instance.Main, p)
	if err != nil {
		return nil, err
	}

	var rom []uint16

	switch {
	case *f.rom != "":
		if *f.even != "" || *f.odd != "" {
			return nil, fmt.Errorf("-rom cannot be used with -even or -odd")
		}
		rom, err = romloader.LoadInterleaved(*f.rom)
	case *f.even != "" && *f.odd != "":
		rom, err = romloader.Load(*f.even, *f.odd)
	case *f.even != "" || *f.odd != "":
		return nil, fmt.Errorf("both -even and -odd boot rom images are required")
	}
	if err != nil {
		return nil, err
	}

	return hardware.NewTek4404(env, rom)
}

func monitorMode(md *modalflag.Modes) error {
	md.NewMode()

	mf := addMachineFlags(md)
	termType := md.AddChoice("term", "COLOR", []string{"PLAIN", "COLOR", "GOCUI"}, "terminal type to use in monitor mode")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	tek, err := mf.create(md.Output)
	if err != nil {
		return err
	}

	// the color and gocui terminals require a real terminal
	if *termType != "PLAIN" && !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintf(md.Output, "! stdin is not a terminal, using PLAIN terminal\n")
		*termType = "PLAIN"
	}

	var trm terminal.Terminal

	switch *termType {
	case "COLOR":
		trm = &colorterm.ColorTerminal{}
	case "GOCUI":
		trm = &gocuiterm.GocuiTerminal{}
	default:
		trm = plainterm.NewPlainTerminal(nil, nil)
	}

	return monitor.NewMonitor(tek, trm).Start()
}

func scriptMode(md *modalflag.Modes) error {
	md.NewMode()

	mf := addMachineFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("lua script required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	tek, err := mf.create(md.Output)
	if err != nil {
		return err
	}

	scr := script.NewScript(tek, md.Output)
	defer scr.Close()

	return scr.RunFile(md.GetArg(0))
}

func memmapMode(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fmt.Fprint(md.Output, memorymap.Summary())

	return nil
}

func versionMode(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *revision {
		fmt.Fprintln(md.Output, version.Current().Detail())
	} else {
		fmt.Fprintln(md.Output, version.Current())
	}

	return nil
}
