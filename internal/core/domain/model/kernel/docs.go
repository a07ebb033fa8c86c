// Package kernel holds the value objects shared by every aggregate of the
// shipment domain: UUID identifiers, Money amounts and ship-to Addresses.
//
// All of them are immutable, and all reject their zero value through
// Validate, so an aggregate can check its inputs with a single errors.Join.
package kernel
