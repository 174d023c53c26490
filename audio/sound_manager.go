package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/scrollframe/core"
)

// SoundManager plays UI feedback sounds through the beep speaker
// Safe for concurrent use, every operation is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	config      *AudioConfig
	cache       *soundCache
	mixer       *beep.Mixer
	initialized bool
	muted       bool

	// Requests per sound type, counted even when silent
	requested [core.SoundTypeCount]uint64
}

// NewSoundManager creates a sound manager, nil cfg uses the defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		config: cfg,
		cache:  newSoundCache(),
		mixer:  &beep.Mixer{},
		muted:  !cfg.Enabled,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.config.Enabled {
		return ErrAudioDisabled
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}

	sm.cache.preload()
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no way to release the device short of process exit
	sm.initialized = false
}

// Play queues st on the mixer, overlapping sounds mix
func (sm *SoundManager) Play(st core.SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if st <= core.SoundNone || st >= core.SoundTypeCount {
		return
	}
	sm.requested[st]++

	if !sm.initialized || sm.muted {
		return
	}

	buf := sm.cache.get(st)
	if len(buf) == 0 {
		return
	}

	speaker.Lock()
	sm.mixer.Add(&bufferStreamer{buf: buf, gain: sm.config.Volume(st)})
	speaker.Unlock()
}

// SetMuted silences or restores playback
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// ToggleMute flips the mute state and returns the new one
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// Muted reports whether playback is silenced
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Requested returns how many times st was asked for
func (sm *SoundManager) Requested(st core.SoundType) uint64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if st <= core.SoundNone || st >= core.SoundTypeCount {
		return 0
	}
	return sm.requested[st]
}
