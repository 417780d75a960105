package domain

import "errors"

// Domain errors represent failures outside the sequencing algorithm itself.
// The algorithm reports per-booking problems as data in ProcessingResult.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedFile indicates an input file with a disallowed extension.
	ErrUnsupportedFile = errors.New("please upload a CSV or TXT file")

	// ErrFileTooLarge indicates an input file above the configured size cap.
	ErrFileTooLarge = errors.New("file size must be less than 5MB")

	// ErrUnsupportedFormat indicates an unknown export format.
	ErrUnsupportedFormat = errors.New("unsupported export format")

	// ErrNoSequence indicates an operation that needs a generated sequence got none.
	ErrNoSequence = errors.New("no boarding sequence")

	// ErrClipboardUnavailable indicates the system clipboard cannot be used.
	ErrClipboardUnavailable = errors.New("clipboard unavailable")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")
)
