package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionShoot
	ActionCount // Must be last - used for array sizing
)

// InputConfig maps input script letters to actions
type InputConfig struct {
	ScriptKeys map[rune]ActionID
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		ScriptKeys: map[rune]ActionID{
			'L': ActionMoveLeft,
			'R': ActionMoveRight,
			'J': ActionJump,
			'S': ActionShoot,
		},
	}
}
