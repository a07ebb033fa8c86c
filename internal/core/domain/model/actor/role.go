package actor

import (
	"fmt"
	"strings"

	"shipment/internal/pkg/errs"
)

// Role is the kind of caller the identity provider vouches for.
type Role int

const (
	UnknownRole Role = iota
	Farmer
	Rider
	Consumer
	Admin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "Unknown",
		Farmer:      "Farmer",
		Rider:       "Rider",
		Consumer:    "Consumer",
		Admin:       "Admin",
	}
}

// RoleFromString parses a role name case-insensitively.
func RoleFromString(s string) (Role, error) {
	for r, name := range getRoleStrings() {
		if r != UnknownRole && strings.EqualFold(name, strings.TrimSpace(s)) {
			return r, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
}

func (r Role) Validate() error {
	if r == UnknownRole {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "Unknown"
}
