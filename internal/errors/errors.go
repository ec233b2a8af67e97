package errors

import "errors"

var (
	// NotFound is returned when a document id does not resolve to a record.
	NotFound = errors.New("not found")

	// Unauthenticated is returned when no owner id can be resolved for an
	// operation. The store is never contacted in that case.
	Unauthenticated = errors.New("unauthenticated")

	// RemoteFailure covers every auth or store rejection: network,
	// permission, conflict. Callers that need the cause unwrap it.
	RemoteFailure = errors.New("remote operation failed")
)
