package audio

import (
	"errors"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/scrollframe/core"
)

const (
	sampleRate = beep.SampleRate(44100)

	// Focus tick
	focusSoundDuration = 45 * time.Millisecond
	focusSoundAttack   = 2 * time.Millisecond
	focusSoundRelease  = 30 * time.Millisecond

	// Blocked navigation buzz
	errorSoundDuration = 120 * time.Millisecond
	errorSoundAttack   = 5 * time.Millisecond
	errorSoundRelease  = 60 * time.Millisecond

	// Sidebar two-note chirp, per note
	sidebarNoteDuration = 35 * time.Millisecond
	sidebarNoteRelease  = 20 * time.Millisecond

	// Activation click
	clickSoundDuration = 15 * time.Millisecond
	clickSoundRelease  = 10 * time.Millisecond
)

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
)

// soundNames maps config keys to sound types
var soundNames = map[string]core.SoundType{
	"focus":   core.SoundFocusChange,
	"error":   core.SoundFocusError,
	"sidebar": core.SoundFocusSidebar,
	"click":   core.SoundClick,
}
