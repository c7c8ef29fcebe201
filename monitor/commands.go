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

import "errors"

// Sentinel errors returned by Execute().
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrArguments      = errors.New("wrong number of arguments")
	ErrQuit           = errors.New("quit")
)

// List of monitor keywords.
const (
	KeywordRead      = "READ"
	KeywordWrite     = "WRITE"
	KeywordPeek      = "PEEK"
	KeywordPoke      = "POKE"
	KeywordTranslate = "TRANSLATE"
	KeywordMap       = "MAP"
	KeywordEntry     = "ENTRY"
	KeywordControl   = "CONTROL"
	KeywordFC        = "FC"
	KeywordFault     = "FAULT"
	KeywordAck       = "ACK"
	KeywordReset     = "RESET"
	KeywordMemMap    = "MEMMAP"
	KeywordLog       = "LOG"
	KeywordMemViz    = "MEMVIZ"
	KeywordScript    = "SCRIPT"
	KeywordPrefs     = "PREFS"
	KeywordHelp      = "HELP"
	KeywordQuit      = "QUIT"
)

// Commands is the list of top-level commands.
var Commands = []string{
	KeywordRead,
	KeywordWrite,
	KeywordPeek,
	KeywordPoke,
	KeywordTranslate,
	KeywordMap,
	KeywordEntry,
	KeywordControl,
	KeywordFC,
	KeywordFault,
	KeywordAck,
	KeywordReset,
	KeywordMemMap,
	KeywordLog,
	KeywordMemViz,
	KeywordScript,
	KeywordPrefs,
	KeywordHelp,
	KeywordQuit,
}

// the arguments accepted by a command
type definition struct {
	minArgs int
	maxArgs int
	usage   string

	// keywords that can be tab completed in the argument position
	options []string
}

var widths = []string{"B", "W"}

var definitions = map[string]definition{
	KeywordRead:      {1, 2, "READ <address> [B|W]", widths},
	KeywordWrite:     {2, 3, "WRITE <address> <value> [B|W]", widths},
	KeywordPeek:      {1, 2, "PEEK <address> [B|W]", widths},
	KeywordPoke:      {2, 3, "POKE <address> <value> [B|W]", widths},
	KeywordTranslate: {1, 2, "TRANSLATE <address> [READ|WRITE]", []string{"READ", "WRITE"}},
	KeywordMap:       {0, 0, "MAP", nil},
	KeywordEntry:     {1, 2, "ENTRY <index> [value]", nil},
	KeywordControl:   {0, 1, "CONTROL [value]", nil},
	KeywordFC:        {0, 1, "FC [code]", nil},
	KeywordFault:     {0, 0, "FAULT", nil},
	KeywordAck:       {0, 0, "ACK", nil},
	KeywordReset:     {0, 0, "RESET", nil},
	KeywordMemMap:    {0, 0, "MEMMAP", nil},
	KeywordLog:       {0, 1, "LOG [CLEAR|<number>]", []string{"CLEAR"}},
	KeywordMemViz:    {0, 1, "MEMVIZ [file]", nil},
	KeywordScript:    {1, 1, "SCRIPT <file>", nil},
	KeywordPrefs:     {0, 1, "PREFS [SAVE|LOAD|RANDSTATE|LOGFAULTS|LOGUNMAPPED]", []string{"SAVE", "LOAD", "RANDSTATE", "LOGFAULTS", "LOGUNMAPPED"}},
	KeywordHelp:      {0, 1, "HELP [command]", Commands},
	KeywordQuit:      {0, 0, "QUIT", nil},
}

// Help contains the help text for each command.
var Help = map[string]string{
	KeywordRead:      "Read from the logical address as the CPU would. Bus errors are reported",
	KeywordWrite:     "Write to the logical address as the CPU would. Bus errors are reported",
	KeywordPeek:      "Inspect the logical address without side effects",
	KeywordPoke:      "Change the logical address without side effects. Registers cannot be poked",
	KeywordTranslate: "Show how the logical address is routed by the ATU",
	KeywordMap:       "List the non-zero entries in the page table",
	KeywordEntry:     "Display or change a page table entry",
	KeywordControl:   "Display or write the map control register",
	KeywordFC:        "Display or change the function code presented by the CPU",
	KeywordFault:     "Display the most recent bus error",
	KeywordAck:       "Acknowledge a pending bus error",
	KeywordReset:     "Reset the machine. The ATU returns to boot mode",
	KeywordMemMap:    "Display the physical memory map",
	KeywordLog:       "Display the log, the most recent entries of the log or clear the log",
	KeywordMemViz:    "Write a graphviz description of the ATU state to the file. A unique filename is used if none is given",
	KeywordScript:    "Run the Lua script",
	KeywordPrefs:     "Display, save or load the hardware preferences, or toggle a preference",
	KeywordHelp:      "Display help about a command",
	KeywordQuit:      "Leave the monitor",
}
