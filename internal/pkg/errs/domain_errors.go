package errs

import "errors"

// Business error kinds surfaced to callers. Handlers map these to
// status codes; none of them is retried automatically.
var (
	// Booking errors
	ErrValidation   = errors.New("validation failed")
	ErrNotAProvider = errors.New("user is not a provider")
	ErrSelfBooking  = errors.New("clients cannot book themselves")
	ErrPastSlot     = errors.New("slot start has already passed")
	ErrSlotTaken    = errors.New("slot is not available")
	// ErrSlotConflict is the insert-time variant of ErrSlotTaken: the
	// availability check passed but a concurrent booking committed
	// first and the unique index rejected ours.
	ErrSlotConflict = errors.New("slot was booked concurrently")

	// Cancellation errors
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrAlreadyCanceled     = errors.New("appointment is already canceled")
	ErrNotOwner            = errors.New("appointment belongs to another client")
	ErrTooLateToCancel     = errors.New("cancellation window has closed")

	// User/auth errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Infrastructure failures, distinct from business conditions
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
