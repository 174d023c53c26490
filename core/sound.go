package core

// SoundType identifies a UI feedback sound
type SoundType int

const (
	SoundNone         SoundType = iota
	SoundFocusChange            // Focus moved to another view
	SoundFocusError             // Navigation hit a wall
	SoundFocusSidebar           // Focus moved inside a sidebar-like container
	SoundClick                  // Activation
	SoundTypeCount
)
