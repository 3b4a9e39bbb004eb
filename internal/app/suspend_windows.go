//go:build windows

package app

import "os"

// Windows consoles have no job control, so Ctrl-Z leaves the session running.
func resumeSignals() []os.Signal {
	return nil
}

func (app *Application) suspendToShell() {
	app.log.Debug("suspend is not supported on windows")
}

func (app *Application) resumeAfterStop() bool {
	return false
}
