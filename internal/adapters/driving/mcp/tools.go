package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/boardseq/internal/core/domain"
)

// BookingInput is one booking in a generate request.
type BookingInput struct {
	BookingID string   `json:"booking_id" jsonschema:"the booking identifier"`
	Seats     []string `json:"seats" jsonschema:"seat labels such as A1 or c22"`
}

// GenerateInput is the input schema for the generate tool.
type GenerateInput struct {
	Bookings []BookingInput `json:"bookings,omitempty" jsonschema:"bookings to rank"`
	CSV      string         `json:"csv,omitempty" jsonschema:"Booking_ID,Seats text with one booking per line"`
}

// GenerateOutput is the output schema for the generate tool.
type GenerateOutput struct {
	Success    bool                   `json:"success"`
	SequenceID string                 `json:"sequence_id,omitempty"`
	Sequence   []domain.SequenceEntry `json:"sequence"`
	Warnings   []string               `json:"warnings"`
	Errors     []string               `json:"errors"`
}

// ExportInput is the input schema for the export tool.
type ExportInput struct {
	SequenceID string `json:"sequence_id" jsonschema:"ID returned by generate_boarding_sequence"`
	Format     string `json:"format,omitempty" jsonschema:"csv, json or yaml (default csv)"`
}

// ExportOutput is the output schema for the export tool.
type ExportOutput struct {
	FileName string `json:"file_name"`
	MIMEType string `json:"mime_type"`
	Content  string `json:"content"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "generate_boarding_sequence",
		Description: "Rank bus bookings into a back-to-front boarding order",
	}, s.handleGenerate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "export_boarding_sequence",
		Description: "Export a previously generated boarding sequence as text",
	}, s.handleExport)
}

// handleGenerate handles the generate tool invocation.
func (s *Server) handleGenerate(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input GenerateInput,
) (*mcp.CallToolResult, GenerateOutput, error) {
	if len(input.Bookings) > 0 && input.CSV != "" {
		return nil, GenerateOutput{}, ErrAmbiguousInput
	}

	var result domain.ProcessingResult
	if input.CSV != "" {
		result = s.ports.Boarding.GenerateFromText(input.CSV)
	} else {
		bookings := make([]domain.Booking, len(input.Bookings))
		for i, b := range input.Bookings {
			bookings[i] = domain.Booking{ID: b.BookingID, Seats: b.Seats}
		}
		result = s.ports.Boarding.Generate(bookings)
	}

	output := GenerateOutput{
		Success:  result.Success,
		Sequence: nonNil(result.Sequence),
		Warnings: nonNil(result.Warnings),
		Errors:   nonNil(result.Errors),
	}
	if result.Success {
		output.SequenceID = s.sequences.put(result.Sequence)
	}

	return nil, output, nil
}

// handleExport handles the export tool invocation.
func (s *Server) handleExport(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ExportInput,
) (*mcp.CallToolResult, ExportOutput, error) {
	entries, err := s.sequences.get(input.SequenceID)
	if err != nil {
		return nil, ExportOutput{}, fmt.Errorf("sequence %q: %w", input.SequenceID, err)
	}

	format := domain.ExportFormatCSV
	if input.Format != "" {
		format, err = domain.ParseExportFormat(input.Format)
		if err != nil {
			return nil, ExportOutput{}, fmt.Errorf("%w: %s", err, input.Format)
		}
	}
	if !format.IsText() {
		return nil, ExportOutput{}, fmt.Errorf("%w: %s", ErrBinaryFormat, format)
	}

	export, err := s.ports.Boarding.Export(entries, format, s.now())
	if err != nil {
		return nil, ExportOutput{}, err
	}

	return nil, ExportOutput{
		FileName: export.FileName,
		MIMEType: export.MIMEType,
		Content:  string(export.Content),
	}, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
