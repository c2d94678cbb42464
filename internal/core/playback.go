package core

// Playback tracks whether the simulation clock is running. Play and Pause
// enforce their preconditions with a panic: asking to play while already
// playing (or pause while paused) means the caller has lost track of the
// state, which is a programming error rather than a condition to ignore.
type Playback struct {
	playing bool
}

// NewPlayback returns a Playback in the given initial state.
func NewPlayback(playing bool) *Playback {
	return &Playback{playing: playing}
}

// Playing reports whether the clock is running.
func (p *Playback) Playing() bool { return p.playing }

// Play starts the clock. Precondition: currently paused.
func (p *Playback) Play() {
	if p.playing {
		panic("core: Play called while already playing")
	}
	p.playing = true
}

// Pause stops the clock. Precondition: currently playing.
func (p *Playback) Pause() {
	if !p.playing {
		panic("core: Pause called while already paused")
	}
	p.playing = false
}

// Toggle flips between playing and paused and reports the new state.
func (p *Playback) Toggle() bool {
	if p.playing {
		p.Pause()
	} else {
		p.Play()
	}
	return p.playing
}
