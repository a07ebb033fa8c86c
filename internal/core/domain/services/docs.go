// Package services holds the stateless domain services of the shipment
// lifecycle.
//
// The package includes:
//   - LifecycleEngine: drives an order through any non-refund action by name
//   - RefundWorkflow: opens and decides refund requests, keeping the request
//     and its order in step
//
// Neither service touches storage. Application handlers load the aggregates,
// call a service, and persist the result with a conditional write.
package services
