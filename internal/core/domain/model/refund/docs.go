// Package refund models post-delivery disputes. A buyer opens a Request on a
// delivered order asking for a Refund or a Replace; a seller or an admin then
// approves or rejects it exactly once.
package refund
