package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRoomDerivedFields(t *testing.T) {
	r := NewRoom(1, 1, 9, 7)

	assert.Equal(t, 1, r.Left)
	assert.Equal(t, 9, r.Right)
	assert.Equal(t, 1, r.Top)
	assert.Equal(t, 7, r.Bottom)
	assert.Equal(t, 5, r.CenterX)
	assert.Equal(t, 4, r.CenterY)

	x, y, w, h := r.Interior()
	assert.Equal(t, []int{2, 2, 7, 5}, []int{x, y, w, h})
}

func TestRoomContains(t *testing.T) {
	r := NewRoom(10, 10, 7, 7)

	assert.True(t, r.Contains(10, 10), "top-left wall")
	assert.True(t, r.Contains(16, 16), "bottom-right wall")
	assert.False(t, r.Contains(17, 16))
	assert.False(t, r.Contains(9, 12))
}

func TestRoomIntersects(t *testing.T) {
	a := NewRoom(0, 0, 7, 7)
	shared := NewRoom(6, 0, 7, 7) // shares a's right wall
	apart := NewRoom(7, 0, 7, 7)

	assert.True(t, a.Intersects(shared))
	assert.False(t, a.Intersects(apart))
}

func TestDoorsReturnsCopy(t *testing.T) {
	r := NewRoom(0, 0, 7, 7, Door{X: 3, Y: 0})
	doors := r.Doors()
	doors[0].X = 99

	assert.Equal(t, 3, r.Doors()[0].X)
}
