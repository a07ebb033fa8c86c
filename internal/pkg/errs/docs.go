// Package errs provides the typed errors shared by the shipment service.
//
// Every error type pairs a sentinel (ErrObjectNotFound, ErrForbidden, ...) with a
// struct carrying details. Unwrap returns the sentinel, so callers classify with
// errors.Is and read details with errors.As:
//
//	var nf *errs.ObjectNotFoundError
//	if errors.As(err, &nf) {
//	    log.Printf("missing %s %v", nf.ParamName, nf.ID)
//	}
//
// Validation errors (ValueIsRequired, ValueIsInvalid, ValueIsOutOfRange) come from
// constructors. Forbidden, InvalidTransition and PreconditionFailed come from the
// order state machine. Conflict comes from conditional writes in the persistence
// layer.
package errs
