package auth

type Role string

const (
	RoleAdopter Role = "adopter"
	RoleShelter Role = "shelter"
	RoleAdmin   Role = "admin"
)

// ParseRole normaliza el rol; cualquier valor desconocido cae en adopter.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleShelter, RoleAdmin:
		return Role(s)
	default:
		return RoleAdopter
	}
}

// Claims representa la identidad ya autenticada que viaja en el request.
// El core solo hace chequeos de ownership sobre UserID/Role.
type Claims struct {
	UserID string
	Email  string
	Role   Role
}

func (c Claims) IsAdmin() bool   { return c.Role == RoleAdmin }
func (c Claims) IsShelter() bool { return c.Role == RoleShelter }
