package visibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/tiberiumdvk/inf-game/internal/tilemap"
	"github.com/tiberiumdvk/inf-game/internal/world"
)

func newShadow() *tilemap.Layer {
	return tilemap.New(30, 20, 48, 48).CreateBlankLayer("shadow")
}

func alphas(l *tilemap.Layer) []float64 {
	out := make([]float64, 0, l.Width()*l.Height())
	for y := 0; y < l.Height(); y++ {
		for x := 0; x < l.Width(); x++ {
			t, _ := l.TileAt(x, y)
			out = append(out, t.Alpha)
		}
	}
	return out
}

func assertRoomAlpha(t *testing.T, l *tilemap.Layer, r *world.Room, want float64) {
	t.Helper()
	for y := r.Top; y <= r.Bottom; y++ {
		for x := r.Left; x <= r.Right; x++ {
			tile, ok := l.TileAt(x, y)
			require.True(t, ok)
			assert.Equal(t, want, tile.Alpha, "(%d,%d)", x, y)
		}
	}
}

func TestFirstRoomTouchesOnlyItsTiles(t *testing.T) {
	shadow := newShadow()
	tracker := NewTracker(shadow)
	a := world.NewRoom(2, 2, 7, 7)

	assert.True(t, tracker.SetActiveRoom(a))
	assert.Same(t, a, tracker.Active())

	for y := 0; y < shadow.Height(); y++ {
		for x := 0; x < shadow.Width(); x++ {
			tile, _ := shadow.TileAt(x, y)
			if a.Contains(x, y) {
				assert.Equal(t, Lit, tile.Alpha)
			} else {
				assert.Equal(t, 1.0, tile.Alpha, "(%d,%d)", x, y)
			}
		}
	}
}

func TestSetActiveRoomIsIdempotent(t *testing.T) {
	shadow := newShadow()
	tracker := NewTracker(shadow)
	a := world.NewRoom(0, 0, 7, 7)
	b := world.NewRoom(10, 0, 9, 7)

	tracker.SetActiveRoom(a)
	tracker.SetActiveRoom(b)
	once := alphas(shadow)

	assert.False(t, tracker.SetActiveRoom(b))
	assert.Equal(t, once, alphas(shadow))
	assertRoomAlpha(t, shadow, a, Dimmed)
}

func TestReturningToRoom(t *testing.T) {
	shadow := newShadow()
	tracker := NewTracker(shadow)
	a := world.NewRoom(0, 0, 7, 7)
	b := world.NewRoom(10, 5, 9, 9)

	tracker.SetActiveRoom(a)
	tracker.SetActiveRoom(b)
	tracker.SetActiveRoom(a)

	assertRoomAlpha(t, shadow, a, Lit)
	assertRoomAlpha(t, shadow, b, Dimmed)
}

func TestNilRoomKeepsPreviousDimmed(t *testing.T) {
	shadow := newShadow()
	tracker := NewTracker(shadow)
	a := world.NewRoom(0, 0, 7, 7)

	tracker.SetActiveRoom(a)
	assert.True(t, tracker.SetActiveRoom(nil))
	assert.Nil(t, tracker.Active())
	assertRoomAlpha(t, shadow, a, Dimmed)

	// Staying outside any room changes nothing.
	before := alphas(shadow)
	assert.False(t, tracker.SetActiveRoom(nil))
	assert.Equal(t, before, alphas(shadow))
}

func TestSharedWallTakesDimmedAlpha(t *testing.T) {
	shadow := newShadow()
	tracker := NewTracker(shadow)
	a := world.NewRoom(0, 0, 7, 7)
	b := world.NewRoom(6, 0, 7, 7)

	tracker.SetActiveRoom(a)
	tracker.SetActiveRoom(b)

	// The new room is lit before the old one is dimmed.
	tile, _ := shadow.TileAt(6, 3)
	assert.Equal(t, Dimmed, tile.Alpha)
	tile, _ = shadow.TileAt(9, 3)
	assert.Equal(t, Lit, tile.Alpha)
}

func TestTrackerProperty(t *testing.T) {
	rooms := []*world.Room{
		world.NewRoom(0, 0, 7, 7),
		world.NewRoom(8, 0, 9, 7),
		world.NewRoom(0, 8, 11, 9),
		world.NewRoom(18, 8, 7, 11),
	}

	rapid.Check(t, func(t *rapid.T) {
		shadow := newShadow()
		tracker := NewTracker(shadow)
		visited := make(map[*world.Room]bool)

		steps := rapid.SliceOfN(rapid.IntRange(-1, len(rooms)-1), 1, 20).Draw(t, "steps")
		for _, i := range steps {
			var room *world.Room
			if i >= 0 {
				room = rooms[i]
				visited[room] = true
			}
			tracker.SetActiveRoom(room)
		}

		for _, r := range rooms {
			want := 1.0
			switch {
			case r == tracker.Active():
				want = Lit
			case visited[r]:
				want = Dimmed
			}
			for y := r.Top; y <= r.Bottom; y++ {
				for x := r.Left; x <= r.Right; x++ {
					tile, _ := shadow.TileAt(x, y)
					if tile.Alpha != want {
						t.Fatalf("room at (%d,%d) tile (%d,%d): alpha %v, want %v", r.X, r.Y, x, y, tile.Alpha, want)
					}
				}
			}
		}
	})
}
