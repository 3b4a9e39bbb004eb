package app

import (
	"fmt"
	"os"
	"os/signal"
	"slices"

	statepkg "github.com/Fabian1409/seldir/internal/state"
	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// Run processes input until the user quits. It returns an error only when
// the browser state became invalid.
func (app *Application) Run() error {
	app.renderer.Render(app.state)
	renderPending := false

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	var sigContCh chan os.Signal
	if sigs := resumeSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	var changes <-chan struct{}
	var watchErrs <-chan error
	if app.watcher != nil {
		changes = app.watcher.Changes()
		watchErrs = app.watcher.Errors()
	}

	for !app.shouldQuit {
		if renderPending {
			app.renderer.Render(app.state)
			renderPending = false
		}

		select {
		case ev, ok := <-eventChan:
			if !ok {
				return app.fatal
			}
			if app.handleEvent(ev) {
				renderPending = true
			}
		case action := <-app.actionCh:
			if app.handleAction(action) {
				renderPending = true
			}
		case <-changes:
			app.log.Debug("filesystem change detected")
			if app.handleAction(statepkg.RefreshDirectoryAction{}) {
				renderPending = true
			}
		case err := <-watchErrs:
			app.log.WithError(err).Warn("filesystem watcher error")
		case <-sigContCh:
			if app.resumeAfterStop() {
				renderPending = true
			}
		}

		if app.processActions() {
			renderPending = true
		}
	}

	return app.fatal
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev.(type) {
	case *tcell.EventKey, *tcell.EventResize:
		app.input.ProcessEvent(ev)
		return true
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
}

func (app *Application) processActions() bool {
	changed := false
	for {
		select {
		case action := <-app.actionCh:
			if app.handleAction(action) {
				changed = true
			}
		default:
			return changed
		}
	}
}

func (app *Application) handleAction(action statepkg.Action) bool {
	if action == nil || app.shouldQuit {
		return false
	}

	switch action.(type) {
	case statepkg.QuitAction:
		app.shouldQuit = true
		return false
	case statepkg.QuitAndChangeAction:
		app.result = app.state.ResultPath()
		app.hasResult = true
		app.shouldQuit = true
		return false
	case statepkg.SuspendAction:
		app.suspendToShell()
		app.resumeAfterStop()
		return true
	}

	before := app.state.WorkingDir
	if _, err := app.reducer.Reduce(app.state, action); err != nil {
		app.log.WithError(err).WithField("action", fmt.Sprintf("%T", action)).Error("browser state invalid")
		app.fatal = err
		app.shouldQuit = true
		return false
	}
	if app.state.WorkingDir != before {
		app.log.WithFields(logrus.Fields{"from": before, "to": app.state.WorkingDir}).Debug("working directory changed")
	}
	if preview, ok := action.(statepkg.PreviewLoadResultAction); ok && preview.Preview != nil && preview.Preview.Err != nil {
		app.log.WithError(preview.Preview.Err).WithField("path", preview.Path).Debug("preview failed")
	}
	app.retargetWatcher()
	return true
}

// watchTargets lists the directories whose contents are on screen.
func (app *Application) watchTargets() []string {
	dirs := []string{app.state.WorkingDir}
	if parent, ok := app.state.ParentDir(); ok {
		dirs = append(dirs, parent)
	}
	if entry, ok := app.state.Current.Selected(); ok && entry.IsDir() {
		dirs = append(dirs, entry.Path)
	}
	return dirs
}

func (app *Application) retargetWatcher() {
	if app.watcher == nil {
		return
	}
	targets := app.watchTargets()
	if slices.Equal(targets, app.watched) {
		return
	}
	app.watched = targets
	if err := app.watcher.Watch(targets...); err != nil {
		app.log.WithError(err).Debug("cannot watch directory")
	}
}
