package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/scrollframe/core"
)

// KeyEntry describes what a key does
// Direction is meaningful only for IntentNavigate
type KeyEntry struct {
	Intent    IntentType
	Direction core.Direction
}

// KeyTable maps keys to entries
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	Keys map[tcell.Key]KeyEntry

	// Printable keys
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]KeyEntry{
			tcell.KeyUp:     {IntentNavigate, core.DirUp},
			tcell.KeyDown:   {IntentNavigate, core.DirDown},
			tcell.KeyLeft:   {IntentNavigate, core.DirLeft},
			tcell.KeyRight:  {IntentNavigate, core.DirRight},
			tcell.KeyEnter:  {IntentActivate, 0},
			tcell.KeyEscape: {IntentQuit, 0},
			tcell.KeyCtrlC:  {IntentQuit, 0},
			tcell.KeyCtrlQ:  {IntentQuit, 0},
		},
		Runes: map[rune]KeyEntry{
			'k': {IntentNavigate, core.DirUp},
			'j': {IntentNavigate, core.DirDown},
			'h': {IntentNavigate, core.DirLeft},
			'l': {IntentNavigate, core.DirRight},
			' ': {IntentActivate, 0},
			'q': {IntentQuit, 0},
			'i': {IntentToggleIndicator, 0},
			'b': {IntentToggleBehavior, 0},
			'm': {IntentToggleMute, 0},
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		Keys:  make(map[tcell.Key]KeyEntry, len(kt.Keys)),
		Runes: make(map[rune]KeyEntry, len(kt.Runes)),
	}
	for k, v := range kt.Keys {
		c.Keys[k] = v
	}
	for r, v := range kt.Runes {
		c.Runes[r] = v
	}
	return c
}

// MergeKeyTable returns a new KeyTable with base values overridden by override
// Override entries with IntentNone ("none" action) delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}
	mergeMap(result.Keys, override.Keys)
	mergeMap(result.Runes, override.Runes)
	return result
}

func mergeMap[K comparable](base, override map[K]KeyEntry) {
	for k, v := range override {
		if v.Intent == IntentNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
