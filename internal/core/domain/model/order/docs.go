// Package order implements the Order aggregate and its lifecycle state machine.
//
// The package includes:
//   - Status: the eight lifecycle states, with labels used by the storefront
//   - Action: the requests that move an order, with the roles allowed to make them
//   - Order: the aggregate enforcing role, relationship, edge and precondition checks
//   - StatusChange: the record every accepted action leaves behind
//
// Key business rules:
//   - an order is placed in OrderPlaced and leaves it only through the table in action.go
//   - a rider is bound by Pickup and never replaced
//   - OrderDelivered requires a delivery proof, either attached beforehand
//     (AttachProof then ConfirmReceived) or supplied with the action itself
//     (UploadProofAndDeliver)
//   - refund disputes run OrderDelivered -> Pending -> Refund, Replace or back
//     to OrderDelivered
//
// The aggregate never talks to storage. Concurrency between two actors racing
// on the same order is resolved by the repository's conditional update.
package order
