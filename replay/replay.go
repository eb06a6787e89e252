// Package replay records input histories together with the state hash they
// produced, and verifies that replaying them still produces that hash.
package replay

import (
	"errors"
	"fmt"

	"github.com/automoto/doomerang-physics/sim"
)

var (
	ErrDesync        = errors.New("replay desync")
	ErrLevelMismatch = errors.New("replay recorded on another level")
)

// Recording is a replayable run.
type Recording struct {
	Level     string           `json:"level"`
	Spawn     int              `json:"spawn"`
	Frames    []sim.InputFrame `json:"frames"`
	Ticks     uint64           `json:"ticks"`
	FinalHash uint64           `json:"finalHash"`
}

// Record runs frames on s and returns the resulting recording. s should be
// freshly built with the given spawn.
func Record(s *sim.Simulation, spawn int, frames []sim.InputFrame) *Recording {
	s.Run(frames)
	return Capture(s, spawn, frames)
}

// Capture records the current state of s, which has been driven by the first
// s.Tick() of frames.
func Capture(s *sim.Simulation, spawn int, frames []sim.InputFrame) *Recording {
	if n := int(s.Tick()); n < len(frames) {
		frames = frames[:n]
	}
	return &Recording{
		Level:     s.Level().Name,
		Spawn:     spawn,
		Frames:    frames,
		Ticks:     s.Tick(),
		FinalHash: s.Hash(),
	}
}

// Verify replays rec on a fresh simulation and reports ErrDesync when the
// final hash differs.
func Verify(s *sim.Simulation, rec *Recording) error {
	if s.Level().Name != rec.Level {
		return fmt.Errorf("simulation level %q, recording level %q: %w", s.Level().Name, rec.Level, ErrLevelMismatch)
	}

	s.Run(rec.Frames)
	if got := s.Hash(); got != rec.FinalHash || s.Tick() != rec.Ticks {
		return fmt.Errorf("tick %d: hash %016x, want %016x at tick %d: %w", s.Tick(), got, rec.FinalHash, rec.Ticks, ErrDesync)
	}
	return nil
}
