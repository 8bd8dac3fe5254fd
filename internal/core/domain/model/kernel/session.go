package kernel

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Role identifies which side of the marketplace the authenticated user
// acts on for the current operation.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleBuyer marks a session acting as a buyer: cart mutations,
	// checkout, receipt uploads.
	RoleBuyer

	// RoleSeller marks a session acting as a seller: order fulfilment
	// and receipt review.
	RoleSeller
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "unknown",
		RoleBuyer:   "buyer",
		RoleSeller:  "seller",
	}
}

// RoleFromString parses a role name ("buyer" or "seller").
func RoleFromString(s string) (Role, error) {
	for role, name := range getRoleStrings() {
		if role != RoleUnknown && name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role is invalid",
		fmt.Errorf("%q is not a valid role", s),
	)
}

// String returns the human-readable name of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if r != RoleBuyer && r != RoleSeller {
		return errs.NewValueIsInvalidErrorWithCause(
			"role is invalid",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// Session is the authenticated principal passed explicitly into every
// workflow operation. Authentication itself happens upstream; the workflow
// layer only needs the caller's identity and role, and receiving them as an
// argument keeps handlers free of ambient global state.
type Session struct {
	userID UUID
	role   Role
}

// NewSession creates a session for an authenticated user.
// The user ID must be a valid UUID and the role must be buyer or seller.
func NewSession(userID UUID, role Role) (Session, error) {
	if err := userID.Validate(); err != nil {
		return Session{}, err
	}
	if err := role.Validate(); err != nil {
		return Session{}, err
	}

	return Session{userID: userID, role: role}, nil
}

// UserID returns the authenticated user's identifier.
func (s Session) UserID() UUID {
	return s.userID
}

// Role returns the role the session acts under.
func (s Session) Role() Role {
	return s.role
}

// IsBuyer reports whether the session acts as a buyer.
func (s Session) IsBuyer() bool {
	return s.role == RoleBuyer
}

// IsSeller reports whether the session acts as a seller.
func (s Session) IsSeller() bool {
	return s.role == RoleSeller
}

// Validate checks that the session carries a valid user and role.
// A zero-value Session fails validation.
func (s Session) Validate() error {
	if err := s.userID.Validate(); err != nil {
		return err
	}
	return s.role.Validate()
}
