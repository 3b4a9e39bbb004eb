package state

import "fmt"

// StateReducer applies actions to a BrowserState. It is only ever called
// from the application loop goroutine.
type StateReducer struct{}

// NewStateReducer creates a new reducer
func NewStateReducer() *StateReducer {
	return &StateReducer{}
}

// Reduce applies action to state. Invalid navigation is a silent no-op; the
// only errors returned wrap ErrInvariant.
func (r *StateReducer) Reduce(state *BrowserState, action Action) (*BrowserState, error) {
	if state == nil {
		return nil, fmt.Errorf("%w: nil state", ErrInvariant)
	}

	switch a := action.(type) {

	// ===== NAVIGATION =====

	case LoadAction:
		return state, r.load(state)

	case NavigateDownAction:
		r.moveSelection(state, 1)
		return state, nil

	case NavigateUpAction:
		r.moveSelection(state, -1)
		return state, nil

	case PageDownAction:
		r.moveSelection(state, state.VisibleLines())
		return state, nil

	case PageUpAction:
		r.moveSelection(state, -state.VisibleLines())
		return state, nil

	case SelectFirstAction:
		r.selectIndex(state, 0)
		return state, nil

	case SelectLastAction:
		r.selectIndex(state, state.Current.Len()-1)
		return state, nil

	case EnterDirectoryAction:
		return state, r.enterChild(state)

	case GoUpAction:
		return state, r.goToParent(state)

	case RefreshDirectoryAction:
		return state, r.refresh(state)

	// ===== MODE & SEARCH =====

	case ModeKeyAction:
		r.applyModeKey(state, a.Key)
		return state, nil

	case SearchCharAction:
		r.searchChar(state, a.Char)
		return state, nil

	case SearchBackspaceAction:
		r.searchBackspace(state)
		return state, nil

	case SearchSubmitAction:
		r.searchSubmit(state)
		return state, nil

	case SearchCancelAction:
		r.searchCancel(state)
		return state, nil

	// ===== VIEW =====

	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height
		return state, nil

	case ToggleHiddenFilesAction:
		r.toggleHidden(state)
		return state, nil

	case PreviewLoadResultAction:
		state.applyPreviewResult(a)
		return state, nil

	// Quit and suspend are handled by the application loop.
	case QuitAction, QuitAndChangeAction, SuspendAction:
		return state, nil
	}

	return state, nil
}
