package core

import "testing"

func TestPlaybackToggle(t *testing.T) {
	p := NewPlayback(true)
	if !p.Playing() {
		t.Fatalf("new playback not playing")
	}
	if p.Toggle() {
		t.Fatalf("toggle from playing reported playing")
	}
	if p.Toggle() != true {
		t.Fatalf("toggle from paused reported paused")
	}
}

func TestPlayWhilePlayingPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Play on a playing clock did not panic")
		}
	}()
	NewPlayback(true).Play()
}

func TestPauseWhilePausedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Pause on a paused clock did not panic")
		}
	}()
	NewPlayback(false).Pause()
}
