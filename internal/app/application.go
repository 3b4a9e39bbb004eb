package app

import (
	"fmt"
	"io"

	fsutil "github.com/Fabian1409/seldir/internal/fs"
	statepkg "github.com/Fabian1409/seldir/internal/state"
	inputui "github.com/Fabian1409/seldir/internal/ui/input"
	renderui "github.com/Fabian1409/seldir/internal/ui/render"
	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// Options configures a browser session.
type Options struct {
	StartDir   string
	ShowHidden bool
	Watch      bool
	Theme      renderui.ColorTheme
	Logger     *logrus.Logger
}

// Application represents the running app.
type Application struct {
	screen     tcell.Screen
	state      *statepkg.BrowserState
	reducer    *statepkg.StateReducer
	renderer   *renderui.Renderer
	input      *inputui.InputHandler
	actionCh   chan statepkg.Action
	log        *logrus.Logger
	watcher    *fsutil.Watcher
	watched    []string
	shouldQuit bool
	fatal      error
	result     string
	hasResult  bool
}

// NewApplication validates the start directory, takes over the terminal and
// loads the initial panes.
func NewApplication(opts Options) (*Application, error) {
	state, err := statepkg.NewBrowserState(opts.StartDir, opts.ShowHidden)
	if err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	app, err := newApplication(screen, state, opts)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return app, nil
}

// newApplication wires an already initialised screen to state.
func newApplication(screen tcell.Screen, state *statepkg.BrowserState, opts Options) (*Application, error) {
	log := opts.Logger
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}

	w, h := screen.Size()
	state.ScreenWidth = w
	state.ScreenHeight = h

	actionCh := make(chan statepkg.Action, 10)
	state.SetDispatch(func(action statepkg.Action) {
		select {
		case actionCh <- action:
		default:
			go func() { actionCh <- action }()
		}
	})
	state.PreviewLoader = statepkg.NewAsyncPreviewLoader()

	reducer := statepkg.NewStateReducer()
	if _, err := reducer.Reduce(state, statepkg.LoadAction{}); err != nil {
		return nil, fmt.Errorf("load %s: %w", state.WorkingDir, err)
	}

	inputHandler := inputui.NewInputHandler(actionCh)
	inputHandler.SetState(state)

	app := &Application{
		screen:   screen,
		state:    state,
		reducer:  reducer,
		renderer: renderui.NewRenderer(screen, opts.Theme),
		input:    inputHandler,
		actionCh: actionCh,
		log:      log,
	}

	if opts.Watch {
		watcher, err := fsutil.NewWatcher(fsutil.DefaultWatchDebounce)
		if err != nil {
			log.WithError(err).Warn("filesystem watcher disabled")
		} else {
			app.watcher = watcher
			app.retargetWatcher()
		}
	}

	log.WithFields(logrus.Fields{
		"dir":         state.WorkingDir,
		"show_hidden": state.ShowHidden,
		"watch":       app.watcher != nil,
	}).Info("seldir started")
	return app, nil
}

// Close cleans up resources.
func (app *Application) Close() error {
	var err error
	if app.watcher != nil {
		err = app.watcher.Close()
	}
	app.screen.Fini()
	return err
}

// Result returns the directory chosen by the user. ok is false when the
// session was cancelled.
func (app *Application) Result() (string, bool) {
	return app.result, app.hasResult
}
