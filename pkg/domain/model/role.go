package model

import (
	"github.com/m-mizutani/goerr/v2"
)

// TargetRole is the privilege level requested for every credential in a run
type TargetRole string

const (
	RoleAccountAdmin TargetRole = "account-admin"
	RoleStandardUser TargetRole = "standard-user"
)

// AllTargetRoles lists the accepted roles in display order
var AllTargetRoles = []TargetRole{RoleAccountAdmin, RoleStandardUser}

// DefaultTargetRole is preselected when the caller does not choose one
const DefaultTargetRole = RoleAccountAdmin

// String returns the string representation
func (r TargetRole) String() string {
	return string(r)
}

// DisplayName returns a human readable label for the role
func (r TargetRole) DisplayName() string {
	switch r {
	case RoleStandardUser:
		return "standard member"
	case RoleAccountAdmin:
		return "admin"
	default:
		return string(r)
	}
}

// Validate checks that the role is one of the accepted values
func (r TargetRole) Validate() error {
	for _, role := range AllTargetRoles {
		if r == role {
			return nil
		}
	}
	return goerr.Wrap(ErrInvalidRole, "unsupported target role",
		goerr.V("role", string(r)),
		goerr.V("allowed", AllTargetRoles))
}

// ParseTargetRole converts a string into a validated TargetRole
func ParseTargetRole(s string) (TargetRole, error) {
	role := TargetRole(s)
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}
