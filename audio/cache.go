package audio

import (
	"sync"

	"github.com/lixenwraith/scrollframe/core"
)

// soundCache renders each sound once and shares the buffer between plays
type soundCache struct {
	once [core.SoundTypeCount]sync.Once
	bufs [core.SoundTypeCount]floatBuffer
}

func newSoundCache() *soundCache {
	return &soundCache{}
}

// get returns the buffer for st, rendering it on first use
func (c *soundCache) get(st core.SoundType) floatBuffer {
	if st <= core.SoundNone || st >= core.SoundTypeCount {
		return nil
	}
	c.once[st].Do(func() { c.bufs[st] = generateSound(st) })
	return c.bufs[st]
}

// preload renders every sound so the first focus move does not stall the speaker
func (c *soundCache) preload() {
	for st := core.SoundNone + 1; st < core.SoundTypeCount; st++ {
		c.get(st)
	}
}
