package sim

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	cfg "github.com/automoto/doomerang-physics/config"
)

var ErrBadScript = errors.New("bad input script")

// InputFrame is the controller state for one tick.
type InputFrame struct {
	Left  bool `json:"l,omitempty"`
	Right bool `json:"r,omitempty"`
	Jump  bool `json:"j,omitempty"`
	Shoot bool `json:"s,omitempty"`
}

// Actions expands the frame into per-action pressed state.
func (f InputFrame) Actions() [cfg.ActionCount]bool {
	var a [cfg.ActionCount]bool
	a[cfg.ActionMoveLeft] = f.Left
	a[cfg.ActionMoveRight] = f.Right
	a[cfg.ActionJump] = f.Jump
	a[cfg.ActionShoot] = f.Shoot
	return a
}

func (f *InputFrame) press(a cfg.ActionID) {
	switch a {
	case cfg.ActionMoveLeft:
		f.Left = true
	case cfg.ActionMoveRight:
		f.Right = true
	case cfg.ActionJump:
		f.Jump = true
	case cfg.ActionShoot:
		f.Shoot = true
	}
}

// ParseInputScript expands a run-length input script. Each comma-separated
// token is a set of held keys followed by an optional "x<count>", for example
// "Rx60,RJx1,x30" holds right for 60 ticks, right and jump for one, then
// nothing for 30. Keys are the letters in config.Input.ScriptKeys.
func ParseInputScript(script string) ([]InputFrame, error) {
	var frames []InputFrame

	for _, tok := range strings.Split(script, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}

		keys, count := tok, 1
		if i := strings.LastIndexByte(tok, 'x'); i >= 0 {
			n, err := strconv.Atoi(tok[i+1:])
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("token %q: count: %w", tok, ErrBadScript)
			}
			keys, count = tok[:i], n
		}

		var frame InputFrame
		for _, r := range keys {
			action, ok := cfg.Input.ScriptKeys[r]
			if !ok {
				return nil, fmt.Errorf("token %q: key %q: %w", tok, r, ErrBadScript)
			}
			frame.press(action)
		}

		for range count {
			frames = append(frames, frame)
		}
	}

	return frames, nil
}

// FormatInputScript is the inverse of ParseInputScript.
func FormatInputScript(frames []InputFrame) string {
	var tokens []string
	for i := 0; i < len(frames); {
		j := i + 1
		for j < len(frames) && frames[j] == frames[i] {
			j++
		}
		tokens = append(tokens, fmt.Sprintf("%sx%d", frames[i].keys(), j-i))
		i = j
	}
	return strings.Join(tokens, ",")
}

func (f InputFrame) keys() string {
	var b strings.Builder
	if f.Left {
		b.WriteByte('L')
	}
	if f.Right {
		b.WriteByte('R')
	}
	if f.Jump {
		b.WriteByte('J')
	}
	if f.Shoot {
		b.WriteByte('S')
	}
	return b.String()
}

// PadFrames returns frames cut or extended with idle input to exactly n
// frames. n <= 0 returns frames unchanged.
func PadFrames(frames []InputFrame, n int) []InputFrame {
	if n <= 0 {
		return frames
	}
	if len(frames) >= n {
		return frames[:n]
	}
	out := make([]InputFrame, n)
	copy(out, frames)
	return out
}
