package user

// Role is ordered: an entrepreneur can still book as a customer.
type Role string

const (
	RoleCustomer     Role = "customer"
	RoleEntrepreneur Role = "entrepreneur"
)

func (r Role) String() string { return string(r) }

// Level is 0 for unknown roles.
func (r Role) Level() int {
	switch r {
	case RoleCustomer:
		return 1
	case RoleEntrepreneur:
		return 2
	default:
		return 0
	}
}

func (r Role) IsValid() bool { return r.Level() > 0 }

// AtLeast reports whether r grants everything required does.
func (r Role) AtLeast(required Role) bool {
	return r.IsValid() && required.IsValid() && r.Level() >= required.Level()
}

func NewRole(s string) (Role, error) {
	if role := Role(s); role.IsValid() {
		return role, nil
	}
	return "", ErrInvalidRole
}
