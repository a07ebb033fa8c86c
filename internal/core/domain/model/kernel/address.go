package kernel

import (
	"strings"
	"unicode/utf8"

	"shipment/internal/pkg/errs"
	"shipment/internal/pkg/guard"
)

const AddressMaxLength = 255

var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("address must be created via NewAddress")

// Address is the free-form ship-to line of an order. Surrounding whitespace is
// trimmed and the result must be 1..AddressMaxLength characters.
type Address struct {
	line  string
	guard guard.ConstructorGuard
}

func NewAddress(line string) (Address, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Address{}, errs.NewValueIsRequiredError("ship_to")
	}
	if n := utf8.RuneCountInString(line); n > AddressMaxLength {
		return Address{}, errs.NewValueIsOutOfRangeError("ship_to length", n, 1, AddressMaxLength)
	}
	return Address{line: line, guard: guard.NewConstructorGuard()}, nil
}

func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) String() string {
	return a.line
}
