package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Direction is a cardinal facing. World space is y-up, so North is +Y.
type Direction int

const (
	East Direction = iota
	North
	West
	South
)

// Cardinals lists the directions in sightline scan order.
var Cardinals = [...]Direction{East, North, West, South}

// Tilts returns the unit vector for d.
func (d Direction) Tilts() dmath.Vec2 {
	switch d {
	case North:
		return dmath.Vec2{X: 0, Y: 1}
	case West:
		return dmath.Vec2{X: -1, Y: 0}
	case South:
		return dmath.Vec2{X: 0, Y: -1}
	default:
		return dmath.Vec2{X: 1, Y: 0}
	}
}

// Clockwise returns the direction a quarter turn clockwise from d.
func (d Direction) Clockwise() Direction {
	switch d {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	default:
		return North
	}
}

func (d Direction) String() string {
	switch d {
	case East:
		return "east"
	case North:
		return "north"
	case West:
		return "west"
	case South:
		return "south"
	}
	return "unknown"
}

// LongSeek picks the cardinal along whichever axis of offset has the larger
// magnitude. Equal magnitudes resolve horizontally.
func LongSeek(offset dmath.Vec2) Direction {
	if math.Abs(offset.X) >= math.Abs(offset.Y) {
		if offset.X < 0 {
			return West
		}
		return East
	}
	if offset.Y < 0 {
		return South
	}
	return North
}

// ShortSeek is LongSeek with a dead zone. When both axes are larger than
// margin but within margin of each other, the current facing is kept as long
// as it still points toward the offset, so a diagonal approach doesn't
// flip-flop every tick.
func ShortSeek(offset dmath.Vec2, margin float64, current Direction) Direction {
	ax, ay := math.Abs(offset.X), math.Abs(offset.Y)
	if ax <= margin || ay <= margin {
		return LongSeek(offset)
	}
	if math.Abs(ax-ay) <= margin {
		t := current.Tilts()
		if t.X*offset.X+t.Y*offset.Y > 0 {
			return current
		}
	}
	return LongSeek(offset)
}
