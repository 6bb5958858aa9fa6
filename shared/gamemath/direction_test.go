package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestClockwiseCycle(t *testing.T) {
	d := North
	var seen []Direction
	for i := 0; i < 4; i++ {
		d = d.Clockwise()
		seen = append(seen, d)
	}
	assert.Equal(t, []Direction{East, South, West, North}, seen)
}

func TestTiltsAreUnit(t *testing.T) {
	for _, d := range Cardinals {
		tilt := d.Tilts()
		assert.Equal(t, 1.0, tilt.Dot(&tilt), d.String())
	}
	assert.Equal(t, dmath.Vec2{X: 0, Y: 1}, North.Tilts())
	assert.Equal(t, dmath.Vec2{X: 0, Y: -1}, South.Tilts())
}

func TestLongSeek(t *testing.T) {
	tests := []struct {
		name   string
		offset dmath.Vec2
		want   Direction
	}{
		{"east", dmath.Vec2{X: 5, Y: 1}, East},
		{"west", dmath.Vec2{X: -5, Y: 4}, West},
		{"north", dmath.Vec2{X: 2, Y: 9}, North},
		{"south", dmath.Vec2{X: -2, Y: -9}, South},
		{"tie goes horizontal", dmath.Vec2{X: -3, Y: 3}, West},
		{"zero", dmath.Vec2{}, East},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LongSeek(tt.offset))
		})
	}
}

func TestShortSeek(t *testing.T) {
	tests := []struct {
		name    string
		offset  dmath.Vec2
		current Direction
		want    Direction
	}{
		{"inside margin on x falls back to long seek", dmath.Vec2{X: 3, Y: 40}, East, North},
		{"inside margin on y falls back to long seek", dmath.Vec2{X: -40, Y: 2}, North, West},
		{"near diagonal keeps facing", dmath.Vec2{X: 20, Y: 22}, East, East},
		{"near diagonal keeps other axis too", dmath.Vec2{X: 22, Y: 20}, North, North},
		{"near diagonal drops a facing that points away", dmath.Vec2{X: 20, Y: 22}, West, North},
		{"clear winner", dmath.Vec2{X: 10, Y: 30}, East, North},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShortSeek(tt.offset, 4, tt.current))
		})
	}
}

func TestWithinComparesSquared(t *testing.T) {
	assert.True(t, Within(dmath.Vec2{X: 6, Y: 8}, 10))
	assert.False(t, Within(dmath.Vec2{X: 6, Y: 8.1}, 10))
	assert.Equal(t, 25.0, DistanceSq(dmath.Vec2{X: 1, Y: 1}, dmath.Vec2{X: 4, Y: 5}))
}
