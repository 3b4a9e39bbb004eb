//go:build !windows

package app

import (
	"os"
	"syscall"

	"github.com/gdamore/tcell/v2"
)

// resumeSignals are delivered when the shell brings a stopped session back.
func resumeSignals() []os.Signal {
	return []os.Signal{syscall.SIGCONT}
}

// suspendToShell hands the terminal back and stops only this process, so the
// wrapping shell function keeps its job control.
func (app *Application) suspendToShell() {
	if err := app.screen.Suspend(); err != nil {
		app.log.WithError(err).Warn("cannot release terminal for suspend")
		return
	}
	app.log.Debug("suspending to shell")
	_ = syscall.Kill(syscall.Getpid(), syscall.SIGTSTP)
}

// resumeAfterStop retakes the terminal and picks up a size change made while
// the session was stopped.
func (app *Application) resumeAfterStop() bool {
	if err := app.screen.Resume(); err != nil {
		app.log.WithError(err).Warn("cannot resume terminal")
		return false
	}
	app.screen.Sync()
	_ = app.screen.PostEvent(tcell.NewEventInterrupt("resume"))
	if w, h := app.screen.Size(); w > 0 && h > 0 {
		app.state.ScreenWidth = w
		app.state.ScreenHeight = h
	}
	app.log.Debug("resumed from shell")
	return true
}
