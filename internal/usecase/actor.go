package usecase

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// Actor is the authenticated caller as reported by the identity provider.
type Actor struct {
	UserID        string
	Role          string
	Email         string
	EmailVerified bool
}

func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

func (a Actor) Authenticated() bool { return a.UserID != "" }
