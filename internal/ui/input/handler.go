package input

import (
	"unicode"

	statepkg "github.com/Fabian1409/seldir/internal/state"
	"github.com/gdamore/tcell/v2"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan statepkg.Action
	state      *statepkg.BrowserState // Reference to current state for mode checking
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// SetState sets the state reference for mode checking
func (ih *InputHandler) SetState(state *statepkg.BrowserState) {
	ih.state = state
}

// ProcessEvent converts a tcell event into an Action. It returns false once
// the event asked the application to quit.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

func (ih *InputHandler) mode() statepkg.Mode {
	if ih.state == nil {
		return statepkg.ModeNormal
	}
	return ih.state.Mode
}

// processKeyEvent handles keyboard input
func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		ih.actionChan <- statepkg.QuitAction{}
		return false
	case tcell.KeyCtrlZ:
		ih.actionChan <- statepkg.SuspendAction{}
		return true
	}

	switch ih.mode() {
	case statepkg.ModePendingGoTo:
		ih.actionChan <- statepkg.ModeKeyAction{Key: modeKey(ev)}
		return true
	case statepkg.ModeSearchActive:
		return ih.processSearchKey(ev)
	default:
		return ih.processNormalKey(ev)
	}
}

// modeKey reduces a key event to what the mode machine distinguishes.
func modeKey(ev *tcell.EventKey) statepkg.ModeKey {
	switch ev.Key() {
	case tcell.KeyRune:
		return statepkg.RuneKey(ev.Rune())
	case tcell.KeyEscape:
		return statepkg.ModeKey{Special: statepkg.KeyEscape}
	case tcell.KeyEnter:
		return statepkg.ModeKey{Special: statepkg.KeyEnter}
	default:
		return statepkg.ModeKey{Special: statepkg.KeyOther}
	}
}

func (ih *InputHandler) processSearchKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		ih.actionChan <- statepkg.SearchCancelAction{}
	case tcell.KeyEnter:
		ih.actionChan <- statepkg.SearchSubmitAction{}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ih.actionChan <- statepkg.SearchBackspaceAction{}
	case tcell.KeyUp:
		ih.actionChan <- statepkg.NavigateUpAction{}
	case tcell.KeyDown:
		ih.actionChan <- statepkg.NavigateDownAction{}
	case tcell.KeyRune:
		r := ev.Rune()
		if ev.Modifiers()&tcell.ModCtrl != 0 && (r == 'h' || r == 'H') {
			ih.actionChan <- statepkg.SearchBackspaceAction{}
			return true
		}
		ih.actionChan <- statepkg.SearchCharAction{Char: r}
	}
	return true
}

func (ih *InputHandler) processNormalKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		ih.actionChan <- statepkg.QuitAction{}
		return false

	case tcell.KeyEnter:
		ih.actionChan <- statepkg.QuitAndChangeAction{}
		return false

	case tcell.KeyUp:
		ih.actionChan <- statepkg.NavigateUpAction{}
	case tcell.KeyDown:
		ih.actionChan <- statepkg.NavigateDownAction{}
	case tcell.KeyRight:
		ih.actionChan <- statepkg.EnterDirectoryAction{}
	case tcell.KeyLeft:
		ih.actionChan <- statepkg.GoUpAction{}
	case tcell.KeyPgUp:
		ih.actionChan <- statepkg.PageUpAction{}
	case tcell.KeyPgDn:
		ih.actionChan <- statepkg.PageDownAction{}
	case tcell.KeyHome:
		ih.actionChan <- statepkg.SelectFirstAction{}
	case tcell.KeyEnd:
		ih.actionChan <- statepkg.SelectLastAction{}

	// KeyBackspace is the Ctrl-H control code; the Backspace key itself
	// usually arrives as KeyBackspace2.
	case tcell.KeyBackspace:
		ih.actionChan <- statepkg.ToggleHiddenFilesAction{}

	case tcell.KeyRune:
		r := ev.Rune()
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			if r == 'h' || r == 'H' {
				ih.actionChan <- statepkg.ToggleHiddenFilesAction{}
			}
			return true
		}
		if ev.Modifiers()&tcell.ModShift != 0 {
			// Normalize shifted alphabetic runes to reflect user intent (Shift+A => 'A')
			r = unicode.ToUpper(r)
		}
		return ih.processNormalRune(r)
	}
	return true
}

func (ih *InputHandler) processNormalRune(r rune) bool {
	switch r {
	case 'q':
		ih.actionChan <- statepkg.QuitAndChangeAction{}
		return false
	case 'j':
		ih.actionChan <- statepkg.NavigateDownAction{}
	case 'k':
		ih.actionChan <- statepkg.NavigateUpAction{}
	case 'l':
		ih.actionChan <- statepkg.EnterDirectoryAction{}
	case 'h':
		ih.actionChan <- statepkg.GoUpAction{}
	case '.':
		ih.actionChan <- statepkg.ToggleHiddenFilesAction{}
	case 'r':
		ih.actionChan <- statepkg.RefreshDirectoryAction{}
	case 'g', '/':
		ih.actionChan <- statepkg.ModeKeyAction{Key: statepkg.RuneKey(r)}
	}
	return true
}
