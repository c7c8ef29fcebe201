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

package statsview

import (
	"fmt"
	"io"
	"sync"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Address of the statsview server.
const Address = "localhost:12600"

const url = "/debug/statsview"

var running struct {
	crit sync.Mutex
	mgr  *statsview.ViewManager
}

// Launch a new goroutine running the statsview. Calling Launch() when a
// statsview is already running has no effect.
func Launch(output io.Writer) {
	running.crit.Lock()
	defer running.crit.Unlock()

	if running.mgr != nil {
		return
	}

	viewer.SetConfiguration(viewer.WithAddr(Address))
	running.mgr = statsview.New()

	mgr := running.mgr
	go func() {
		mgr.Start()
	}()

	fmt.Fprintf(output, "stats server available at %s%s\n", Address, url)
}

// Stop the statsview if it is running.
func Stop() {
	running.crit.Lock()
	defer running.crit.Unlock()

	if running.mgr == nil {
		return
	}
	running.mgr.Stop()
	running.mgr = nil
}

// Running returns true if a statsview has been launched and not stopped.
func Running() bool {
	running.crit.Lock()
	defer running.crit.Unlock()
	return running.mgr != nil
}
