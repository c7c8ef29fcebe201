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

// Package gocuiterm implements the Terminal interface for the monitor using
// the gocui package. The screen is divided into a status line showing the
// state of the ATU, a scrolling output view and an input line.
package gocuiterm

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/jetsetilly/tek4404/monitor/terminal"
	"github.com/jroimartin/gocui"
)

// names of the gocui views
const (
	viewStatus  = "status"
	viewOutput  = "output"
	viewCommand = "command"
)

// GocuiTerminal is a full screen terminal for the monitor.
type GocuiTerminal struct {
	gui *gocui.Gui

	input     chan string
	interrupt chan bool

	// closed when the gocui main loop ends
	closed  chan struct{}
	loopErr error

	tabCompletion terminal.TabCompletion

	// the fields below are shared between the monitor and the gui goroutine
	mu       sync.Mutex
	status   string
	prompt   string
	backlog  []string
	silenced bool
}

// Initialise implements the terminal.Terminal interface.
func (gt *GocuiTerminal) Initialise() error {
	var err error

	gt.gui, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return fmt.Errorf("gocuiterm: %w", err)
	}

	gt.input = make(chan string, 16)
	gt.interrupt = make(chan bool, 1)
	gt.closed = make(chan struct{})

	gt.gui.Cursor = true
	gt.gui.SetManagerFunc(gt.layout)

	err = gt.keybindings()
	if err != nil {
		gt.gui.Close()
		return fmt.Errorf("gocuiterm: %w", err)
	}

	go func() {
		err := gt.gui.MainLoop()
		if err != nil && !errors.Is(err, gocui.ErrQuit) {
			gt.loopErr = err
		}
		close(gt.closed)
	}()

	return nil
}

// CleanUp implements the terminal.Terminal interface.
func (gt *GocuiTerminal) CleanUp() {
	if gt.gui == nil {
		return
	}

	select {
	case <-gt.closed:
	default:
		gt.gui.Update(func(*gocui.Gui) error {
			return gocui.ErrQuit
		})
		<-gt.closed
	}

	gt.gui.Close()
	gt.gui = nil
}

func (gt *GocuiTerminal) keybindings() error {
	err := gt.gui.SetKeybinding("", gocui.KeyCtrlQ, gocui.ModNone, func(*gocui.Gui, *gocui.View) error {
		return gocui.ErrQuit
	})
	if err != nil {
		return err
	}

	err = gt.gui.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, func(*gocui.Gui, *gocui.View) error {
		select {
		case gt.interrupt <- true:
		default:
		}
		return nil
	})
	if err != nil {
		return err
	}

	err = gt.gui.SetKeybinding(viewCommand, gocui.KeyEnter, gocui.ModNone, gt.enter)
	if err != nil {
		return err
	}

	return gt.gui.SetKeybinding(viewCommand, gocui.KeyTab, gocui.ModNone, gt.complete)
}

func (gt *GocuiTerminal) enter(_ *gocui.Gui, v *gocui.View) error {
	s := strings.TrimSpace(v.Buffer())
	v.Clear()
	_ = v.SetCursor(0, 0)
	_ = v.SetOrigin(0, 0)

	select {
	case gt.input <- s:
	default:
	}

	return nil
}

func (gt *GocuiTerminal) complete(_ *gocui.Gui, v *gocui.View) error {
	if gt.tabCompletion == nil {
		return nil
	}

	s := gt.tabCompletion.Complete(strings.TrimSpace(v.Buffer()))
	v.Clear()
	fmt.Fprint(v, s)
	_ = v.SetOrigin(0, 0)
	return v.SetCursor(len(s), 0)
}

func (gt *GocuiTerminal) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	gt.mu.Lock()
	status := gt.status
	prompt := gt.prompt
	gt.mu.Unlock()

	v, err := g.SetView(viewStatus, 0, 0, maxX-1, 2)
	if err != nil && !errors.Is(err, gocui.ErrUnknownView) {
		return err
	}
	v.Title = "Tek4404"
	v.Clear()
	fmt.Fprint(v, status)

	v, err = g.SetView(viewOutput, 0, 3, maxX-1, maxY-4)
	if err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Autoscroll = true
		v.Wrap = true
	}

	v, err = g.SetView(viewCommand, 0, maxY-3, maxX-1, maxY-1)
	if err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Editable = true
		if _, err := g.SetCurrentView(viewCommand); err != nil {
			return err
		}
	}
	v.Title = prompt

	return gt.drain(g)
}

// drain writes any pending output to the output view
func (gt *GocuiTerminal) drain(g *gocui.Gui) error {
	v, err := g.View(viewOutput)
	if err != nil {
		// the view will be created by the next layout
		return nil
	}

	gt.mu.Lock()
	defer gt.mu.Unlock()
	for _, s := range gt.backlog {
		fmt.Fprintln(v, s)
	}
	gt.backlog = gt.backlog[:0]

	return nil
}

// RegisterTabCompletion implements the terminal.Terminal interface.
func (gt *GocuiTerminal) RegisterTabCompletion(tc terminal.TabCompletion) {
	gt.tabCompletion = tc
}

// Silence implements the terminal.Terminal interface.
func (gt *GocuiTerminal) Silence(silenced bool) {
	gt.mu.Lock()
	defer gt.mu.Unlock()
	gt.silenced = silenced
}

// IsInteractive implements the terminal.Input interface.
func (gt *GocuiTerminal) IsInteractive() bool {
	return true
}

// update queues f with the gui. it does nothing once the main loop has ended
// because nothing would receive the event
func (gt *GocuiTerminal) update(f func(*gocui.Gui) error) {
	if gt.gui == nil {
		return
	}
	select {
	case <-gt.closed:
		return
	default:
	}
	gt.gui.Update(f)
}

// SetStatus implements the terminal.Status interface.
func (gt *GocuiTerminal) SetStatus(s string) {
	gt.mu.Lock()
	gt.status = s
	gt.mu.Unlock()
	gt.update(func(*gocui.Gui) error { return nil })
}

// TermPrintLine implements the terminal.Output interface.
func (gt *GocuiTerminal) TermPrintLine(style terminal.Style, s string) {
	switch style {
	case terminal.StyleError:
		s = fmt.Sprintf("* %s", s)
	case terminal.StyleFault:
		s = fmt.Sprintf("! %s", s)
	}

	gt.mu.Lock()
	if gt.silenced && style != terminal.StyleError {
		gt.mu.Unlock()
		return
	}
	if style == terminal.StyleEcho {
		s = fmt.Sprintf("%s%s", gt.prompt, s)
	}
	gt.backlog = append(gt.backlog, s)
	gt.mu.Unlock()

	gt.update(gt.drain)
}

// TermRead implements the terminal.Input interface.
func (gt *GocuiTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	gt.mu.Lock()
	gt.prompt = prompt.String()
	gt.mu.Unlock()
	gt.update(func(*gocui.Gui) error { return nil })

	select {
	case s := <-gt.input:
		return s, nil
	case <-gt.interrupt:
		return "", terminal.ErrUserInterrupt
	case <-gt.closed:
		if gt.loopErr != nil {
			return "", fmt.Errorf("gocuiterm: %w", gt.loopErr)
		}
		return "", io.EOF
	}
}
