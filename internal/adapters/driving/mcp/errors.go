// Package mcp provides an MCP (Model Context Protocol) server adapter for boardseq.
// It lets AI assistants generate and export boarding sequences.
package mcp

import "errors"

var (
	// ErrMissingBoardingService is returned when the boarding service is not provided.
	ErrMissingBoardingService = errors.New("mcp: boarding service is required")

	// ErrAmbiguousInput is returned when a tool call carries both bookings and CSV text.
	ErrAmbiguousInput = errors.New("mcp: provide either bookings or csv, not both")

	// ErrBinaryFormat is returned when a tool is asked for a non-text export.
	ErrBinaryFormat = errors.New("mcp: export format is not text")
)
