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

package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// ApplicationName is used when referring to the application in output.
const ApplicationName = "Tek4404"

// number is set by the linker for release builds.
var number string

// Info describes the build that is running.
type Info struct {
	// Version is the release number, or "unreleased" for a build from a vcs
	// checkout, or "local" when there is no vcs information at all
	Version string

	// Revision is the vcs revision. It is suffixed with "+dirty" if the
	// working tree was modified at build time
	Revision string

	// GoVersion of the toolchain that built the binary
	GoVersion string

	// Release is true if Version is a numbered release
	Release bool
}

func (i Info) String() string {
	return fmt.Sprintf("%s %s", ApplicationName, i.Version)
}

// Detail returns a multiline description including the revision and
// toolchain.
func (i Info) Detail() string {
	var s strings.Builder
	s.WriteString(i.String())
	s.WriteString("\n")
	s.WriteString(i.Revision)
	if i.GoVersion != "" {
		s.WriteString("\n")
		s.WriteString(i.GoVersion)
	}
	return s.String()
}

var current Info

// Current returns the build information for the running binary.
func Current() Info {
	return current
}

// FromBuildInfo interprets debug build information. The release number may
// be empty. A nil BuildInfo is treated as a build without vcs information.
func FromBuildInfo(info *debug.BuildInfo, release string) Info {
	var vcs bool
	var modified bool
	var i Info

	if info != nil {
		i.GoVersion = info.GoVersion
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				i.Revision = v.Value
			case "vcs.modified":
				modified = v.Value == "true"
			}
		}
	}

	if i.Revision == "" {
		i.Revision = "no revision information"
	} else if modified {
		i.Revision = fmt.Sprintf("%s+dirty", i.Revision)
	}

	switch {
	case release != "":
		i.Version = release
		i.Release = true
	case vcs:
		i.Version = "unreleased"
	default:
		i.Version = "local"
	}

	return i
}

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		info = nil
	}
	current = FromBuildInfo(info, number)
}
