// Package actor models who is calling: a Role (Farmer, Rider, Consumer, Admin)
// bound to an account id. The identity provider is trusted, so Actor carries no
// credentials.
package actor
