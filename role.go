package driveops

import "fmt"

type Role string

const (
	RoleOwner         Role = "owner"
	RoleOrganizer     Role = "organizer"
	RoleFileOrganizer Role = "fileOrganizer"
	RoleWriter        Role = "writer"
	RoleCommenter     Role = "commenter"
	RoleReader        Role = "reader"
)

// roleRanks orders roles by the access they grant.
var roleRanks = map[Role]int{
	RoleReader:        1,
	RoleCommenter:     2,
	RoleWriter:        3,
	RoleFileOrganizer: 4,
	RoleOrganizer:     5,
	RoleOwner:         6,
}

// ParseRole returns the Role named s. Unknown names match ErrInvalidArgument.
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if _, ok := roleRanks[role]; !ok {
		return "", fmt.Errorf("%w: unknown role %q", ErrInvalidArgument, s)
	}
	return role, nil
}

// AtLeast reports whether r grants at least the access of other. Unknown roles grant nothing.
func (r Role) AtLeast(other Role) bool {
	rank, ok := roleRanks[r]
	return ok && rank >= roleRanks[other]
}

// PermissionRole reads the role of a permission record produced by MapPermission.
func PermissionRole(r *Record) Role {
	return Role(RecordString(r, "role"))
}
