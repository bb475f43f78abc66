// Package tiles maps semantic tile roles to tileset indices.
package tiles

import "fmt"

// Role is the semantic meaning of a tile, resolved to indices through a Palette.
type Role int

const (
	RoleBlank Role = iota
	RoleFloor
	RoleWallTop
	RoleWallBottom
	RoleWallLeft
	RoleWallRight
	RoleWallTopLeft
	RoleWallTopRight
	RoleWallBottomRight
	RoleWallBottomLeft
	RoleDoorTop
	RoleDoorBottom
	RoleDoorLeft
	RoleDoorRight
	RoleStairs
	RoleChest
	RolePot
	RoleTower

	roleCount
)

var roleNames = [roleCount]string{
	RoleBlank:           "blank",
	RoleFloor:           "floor",
	RoleWallTop:         "wall.top",
	RoleWallBottom:      "wall.bottom",
	RoleWallLeft:        "wall.left",
	RoleWallRight:       "wall.right",
	RoleWallTopLeft:     "wall.top_left",
	RoleWallTopRight:    "wall.top_right",
	RoleWallBottomRight: "wall.bottom_right",
	RoleWallBottomLeft:  "wall.bottom_left",
	RoleDoorTop:         "door.top",
	RoleDoorBottom:      "door.bottom",
	RoleDoorLeft:        "door.left",
	RoleDoorRight:       "door.right",
	RoleStairs:          "stairs",
	RoleChest:           "chest",
	RolePot:             "pot",
	RoleTower:           "tower",
}

// Roles returns every role in declaration order.
func Roles() []Role {
	roles := make([]Role, 0, roleCount)
	for r := Role(0); r < roleCount; r++ {
		roles = append(roles, r)
	}
	return roles
}

// String returns the palette key of the role.
func (r Role) String() string {
	if r < 0 || r >= roleCount {
		return "unknown"
	}
	return roleNames[r]
}

// ParseRole returns the role for a palette key such as "wall.top_left".
func ParseRole(name string) (Role, error) {
	for r, n := range roleNames {
		if n == name {
			return Role(r), nil
		}
	}
	return 0, fmt.Errorf("unknown tile role %q", name)
}

// IsWall returns true for wall edges and corners.
func (r Role) IsWall() bool {
	return r >= RoleWallTop && r <= RoleWallBottomLeft
}

// IsDoor returns true for the four door patterns.
func (r Role) IsDoor() bool {
	return r >= RoleDoorTop && r <= RoleDoorRight
}
