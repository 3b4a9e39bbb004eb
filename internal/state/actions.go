package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== NAVIGATION ACTIONS =====

type LoadAction struct{}
type NavigateUpAction struct{}
type NavigateDownAction struct{}
type PageUpAction struct{}
type PageDownAction struct{}
type SelectFirstAction struct{}
type SelectLastAction struct{}
type EnterDirectoryAction struct{}
type GoUpAction struct{}
type RefreshDirectoryAction struct{}

// ===== MODE ACTIONS =====

// ModeKeyAction feeds a key press to the mode state machine.
type ModeKeyAction struct {
	Key ModeKey
}

// ===== SEARCH ACTIONS =====

type SearchCharAction struct {
	Char rune
}
type SearchBackspaceAction struct{}
type SearchSubmitAction struct{}
type SearchCancelAction struct{}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

type ToggleHiddenFilesAction struct{}

// ===== PREVIEW ACTIONS =====

type PreviewLoadResultAction struct {
	Token   int
	Path    string
	Preview *PreviewData
}

// ===== APPLICATION ACTIONS =====

type QuitAction struct{}          // Esc, Ctrl-C - leave without a result
type QuitAndChangeAction struct{} // q, Enter - hand the selected directory to the shell
type SuspendAction struct{}
