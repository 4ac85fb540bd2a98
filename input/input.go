// Package input turns raw keyboard state into the per-frame snapshots the
// player system consumes: a "currently pressed" set plus a derived "pressed
// this frame" edge set.
package input

// Key identifies a keyboard key. Values are ebiten key codes; see keyboard.go
// for the live source.
type Key int

// Source supplies the keys held down at the moment of the call.
type Source interface {
	PressedKeys() []Key
}

// Snapshot is the read-only input state for one frame.
type Snapshot struct {
	pressed     map[Key]bool
	justPressed map[Key]bool
}

// Pressed reports whether the key is currently held.
func (s *Snapshot) Pressed(k Key) bool { return s.pressed[k] }

// JustPressed reports whether the key went down this frame (held now, not held
// the previous frame).
func (s *Snapshot) JustPressed(k Key) bool { return s.justPressed[k] }

// Tracker captures one snapshot per frame from a source, diffing against the
// previous frame to derive the edge set.
type Tracker struct {
	source   Source
	previous map[Key]bool
}

// NewTracker creates a tracker over the given source.
func NewTracker(source Source) *Tracker {
	return &Tracker{
		source:   source,
		previous: make(map[Key]bool),
	}
}

// Capture polls the source and returns this frame's snapshot. Call it exactly
// once per tick; each call advances the previous-frame state used for edge
// detection.
func (t *Tracker) Capture() *Snapshot {
	pressed := make(map[Key]bool)
	for _, k := range t.source.PressedKeys() {
		pressed[k] = true
	}

	justPressed := make(map[Key]bool)
	for k := range pressed {
		if !t.previous[k] {
			justPressed[k] = true
		}
	}

	t.previous = pressed
	return &Snapshot{pressed: pressed, justPressed: justPressed}
}

// StaticSource is a Source backed by a plain key slice. Useful in tests and
// headless tools.
type StaticSource struct {
	Keys []Key
}

// PressedKeys returns the configured key set.
func (s *StaticSource) PressedKeys() []Key { return s.Keys }
