package tiles

import (
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultPalette(t *testing.T) {
	p, err := LoadPalette(DefaultPaletteFile)
	require.NoError(t, err)

	assert.Equal(t, 20, p.Index(RoleBlank))
	assert.Equal(t, 3, p.Index(RoleWallTopLeft))
	assert.Equal(t, 4, p.Index(RoleWallTopRight))
	assert.Equal(t, 23, p.Index(RoleWallBottomRight))
	assert.Equal(t, 22, p.Index(RoleWallBottomLeft))
	assert.Equal(t, 81, p.Index(RoleStairs))
	assert.Equal(t, 166, p.Index(RoleChest))

	assert.Equal(t, [][]int{{40, 6, 38}}, p.Pattern(RoleDoorTop))
	assert.Equal(t, [][]int{{2, 6, 0}}, p.Pattern(RoleDoorBottom))
	assert.Equal(t, [][]int{{40}, {6}, {2}}, p.Pattern(RoleDoorLeft))
	assert.Equal(t, [][]int{{38}, {6}, {0}}, p.Pattern(RoleDoorRight))
	assert.Equal(t, [][]int{{186}, {205}}, p.Pattern(RoleTower))

	assert.ElementsMatch(t, []int{6, 7, 8, 26}, p.Indices(RoleFloor))
	assert.ElementsMatch(t, []int{39, 57, 58, 59}, p.Indices(RoleWallTop))
	assert.ElementsMatch(t, []int{-1, 6, 7, 8, 26}, p.Passable())
}

func TestRoleOfPrefersEarlierRoles(t *testing.T) {
	p := MustLoadPalette()

	role, ok := p.RoleOf(6)
	require.True(t, ok)
	assert.Equal(t, RoleFloor, role, "door opening shares the clean floor index")

	role, ok = p.RoleOf(40)
	require.True(t, ok)
	assert.True(t, role.IsDoor())

	role, ok = p.RoleOf(58)
	require.True(t, ok)
	assert.Equal(t, RoleWallTop, role)

	_, ok = p.RoleOf(9999)
	assert.False(t, ok)
}

func TestWallRolesAreDisjointFromDoorIndices(t *testing.T) {
	p := MustLoadPalette()

	walls := map[int]bool{}
	for _, r := range Roles() {
		if r.IsWall() {
			for _, i := range p.Indices(r) {
				walls[i] = true
			}
		}
	}
	for _, r := range []Role{RoleDoorTop, RoleDoorBottom, RoleDoorLeft, RoleDoorRight} {
		for _, row := range p.Pattern(r) {
			for _, i := range row {
				assert.False(t, walls[i], "door %s index %d is also a wall index", r, i)
			}
		}
	}
}

func TestPickIsDeterministic(t *testing.T) {
	p := MustLoadPalette()

	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(12345))

	for i := 0; i < 50; i++ {
		a := p.Pick(RoleFloor, rng1)
		b := p.Pick(RoleFloor, rng2)
		require.Equal(t, a, b, "pick %d", i)
		assert.Contains(t, p.Indices(RoleFloor), a)
	}
}

func TestParsePaletteErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing roles", "roles:\n  blank: { index: 20 }\n"},
		{"bad index type", "roles:\n  blank: { index: { a: 1 } }\n"},
		{"unknown role", "roles:\n  lava: { index: 1 }\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePalette([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestParseRoleRoundTrip(t *testing.T) {
	for _, r := range Roles() {
		got, err := ParseRole(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}
	_, err := ParseRole("wall.diagonal")
	assert.Error(t, err)
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#8A7F6D", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFF", false}, // Too short
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestRGBA(t *testing.T) {
	c := RGBA(mustParseColor(t, "#102030"))
	assert.Equal(t, uint8(0x10), c.R)
	assert.Equal(t, uint8(0x20), c.G)
	assert.Equal(t, uint8(0x30), c.B)
	assert.Equal(t, uint8(255), c.A)
}

func mustParseColor(t *testing.T, hex string) tcell.Color {
	t.Helper()
	c, err := ParseHexColor(hex)
	require.NoError(t, err)
	return c
}
