package tui

import "errors"

// ErrMissingBoardingService is returned when the boarding service is not provided.
var ErrMissingBoardingService = errors.New("tui: boarding service is required")
