package state

// Mode is the transient interaction mode of the browser.
type Mode int

const (
	ModeNormal Mode = iota
	ModePendingGoTo
	ModeSearchActive
)

func (m Mode) String() string {
	switch m {
	case ModePendingGoTo:
		return "pending-goto"
	case ModeSearchActive:
		return "search"
	default:
		return "normal"
	}
}

// SpecialKey names the non-character keys the mode machine reacts to.
type SpecialKey int

const (
	KeyNone SpecialKey = iota
	KeyEscape
	KeyEnter
	KeyOther
)

// ModeKey is a key press as seen by the mode machine: either a rune
// (Special == KeyNone) or a special key.
type ModeKey struct {
	Rune    rune
	Special SpecialKey
}

// RuneKey builds a ModeKey for a character key.
func RuneKey(r rune) ModeKey {
	return ModeKey{Rune: r}
}

// ModeEffect is the side effect a transition asks the reducer to perform.
type ModeEffect int

const (
	EffectNone ModeEffect = iota
	EffectSelectFirst
	EffectSelectLast
	EffectStartSearch
	EffectEndSearch
)

// Transition is the mode state machine. It never touches panes; the caller
// applies the returned effect.
//
//	Normal       --g-->         PendingGoTo
//	PendingGoTo  --g-->         Normal (select first)
//	PendingGoTo  --G, e-->      Normal (select last)
//	PendingGoTo  --other-->     Normal
//	Normal       --/-->         SearchActive
//	SearchActive --Esc, Enter-> Normal
func Transition(mode Mode, key ModeKey) (Mode, ModeEffect) {
	switch mode {
	case ModeNormal:
		if key.Special == KeyNone {
			switch key.Rune {
			case 'g':
				return ModePendingGoTo, EffectNone
			case '/':
				return ModeSearchActive, EffectStartSearch
			}
		}
		return ModeNormal, EffectNone

	case ModePendingGoTo:
		if key.Special == KeyNone {
			switch key.Rune {
			case 'g':
				return ModeNormal, EffectSelectFirst
			case 'G', 'e':
				return ModeNormal, EffectSelectLast
			}
		}
		return ModeNormal, EffectNone

	case ModeSearchActive:
		switch key.Special {
		case KeyEscape, KeyEnter:
			return ModeNormal, EffectEndSearch
		}
		return ModeSearchActive, EffectNone
	}
	return ModeNormal, EffectNone
}
