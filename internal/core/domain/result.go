package domain

// NoValidBookingsMessage is reported when a batch fails without any
// per-booking message to show.
const NoValidBookingsMessage = "No valid bookings found"

// NoBookingsInFileMessage is reported when delimited text or an uploaded
// file decodes to no bookings at all.
const NoBookingsInFileMessage = "No valid bookings found in the uploaded file"

// ProcessingResult is the outcome of one sequencing run.
//
// A successful result carries the ranked sequence and any per-booking
// problems as warnings. A failed result carries only errors.
type ProcessingResult struct {
	Success  bool            `json:"success" yaml:"success"`
	Sequence []SequenceEntry `json:"sequence,omitempty" yaml:"sequence,omitempty"`
	Warnings []string        `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Errors   []string        `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// NewSuccessResult builds a successful result.
func NewSuccessResult(sequence []SequenceEntry, warnings []string) ProcessingResult {
	return ProcessingResult{
		Success:  true,
		Sequence: sequence,
		Warnings: warnings,
	}
}

// NewFailureResult builds a failed result. An empty message list is
// replaced with NoValidBookingsMessage so failures always explain themselves.
func NewFailureResult(errs []string) ProcessingResult {
	if len(errs) == 0 {
		errs = []string{NoValidBookingsMessage}
	}
	return ProcessingResult{
		Success: false,
		Errors:  errs,
	}
}

// Messages returns the diagnostics of the result: warnings on success,
// errors on failure.
func (r ProcessingResult) Messages() []string {
	if r.Success {
		return r.Warnings
	}
	return r.Errors
}
