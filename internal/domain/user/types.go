package user

type Role string

const (
	RoleConsumer Role = "consumer"
	RoleIssuer   Role = "issuer"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleConsumer, RoleIssuer:
		return true
	default:
		return false
	}
}

// CanIssue reports whether the role may create products and mint code batches.
func (r Role) CanIssue() bool {
	return r == RoleIssuer
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
