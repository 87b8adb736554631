package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the operation conflicts with the current state of the
// system, e.g. opening a cash session while another one is still open.
var ErrConflict = errors.New("operation conflicts with current state")

// ErrInvalidState indicates that the target resource is not in a state that allows
// the requested operation, e.g. adding a movement to a closed cash session.
var ErrInvalidState = errors.New("resource is in an invalid state for this operation")

// ErrForbidden indicates that the caller is not allowed to perform the operation.
var ErrForbidden = errors.New("operation not permitted")
