package state

import (
	"unicode/utf8"

	searchpkg "github.com/Fabian1409/seldir/internal/search"
)

// applyModeKey runs the mode machine and performs the effect it returns.
func (r *StateReducer) applyModeKey(state *BrowserState, key ModeKey) {
	next, effect := Transition(state.Mode, key)
	state.Mode = next

	switch effect {
	case EffectSelectFirst:
		r.selectIndex(state, 0)
	case EffectSelectLast:
		r.selectIndex(state, state.Current.Len()-1)
	case EffectStartSearch, EffectEndSearch:
		state.SearchQuery = ""
	}
}

func (r *StateReducer) searchChar(state *BrowserState, ch rune) {
	if state.Mode != ModeSearchActive {
		return
	}
	state.SearchQuery += string(ch)
	r.searchJump(state)
}

func (r *StateReducer) searchBackspace(state *BrowserState) {
	if state.Mode != ModeSearchActive || state.SearchQuery == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(state.SearchQuery)
	state.SearchQuery = state.SearchQuery[:len(state.SearchQuery)-size]
	r.searchJump(state)
}

// searchSubmit leaves search mode when the query is empty or matches.
// A query without a match keeps search active so it can be corrected.
func (r *StateReducer) searchSubmit(state *BrowserState) {
	if state.Mode != ModeSearchActive {
		return
	}
	if state.SearchQuery == "" || r.searchJump(state) {
		r.applyModeKey(state, ModeKey{Special: KeyEnter})
	}
}

func (r *StateReducer) searchCancel(state *BrowserState) {
	if state.Mode != ModeSearchActive {
		return
	}
	r.applyModeKey(state, ModeKey{Special: KeyEscape})
}

// searchJump selects the best match for the query in Current. Without a
// match the selection is left alone.
func (r *StateReducer) searchJump(state *BrowserState) bool {
	idx, ok := searchpkg.Find(state.Current.Names(), state.SearchQuery)
	if !ok {
		return false
	}
	r.selectIndex(state, idx)
	return true
}
