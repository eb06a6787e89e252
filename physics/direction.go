package physics

import "fmt"

// Direction is the facing of an entity or the push direction of a conveyor
// tile.
type Direction uint8

const (
	DirectionLeft Direction = iota
	DirectionUp
	DirectionRight
	DirectionBottom
	DirectionFacingPlayer
)

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionUp:
		return "up"
	case DirectionRight:
		return "right"
	case DirectionBottom:
		return "bottom"
	case DirectionFacingPlayer:
		return "facing-player"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// ParseDirection maps a level-file direction name to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "left", "":
		return DirectionLeft, true
	case "up":
		return DirectionUp, true
	case "right":
		return DirectionRight, true
	case "bottom", "down":
		return DirectionBottom, true
	}
	return DirectionLeft, false
}
