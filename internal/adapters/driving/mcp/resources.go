package mcp

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/boardseq/internal/core/domain"
)

// uriScheme is the custom URI scheme for boardseq resources.
const uriScheme = "boardseq://"

// formatHelp describes the accepted input text.
const formatHelp = `Booking input is comma-separated text, one booking per line:

  Booking_ID,Seats
  101,A1,B1
  120,A20,C2

The first non-blank line is skipped when it mentions "booking" or "seat".
Seats are a row letter followed by a number; case and surrounding spaces are
ignored. Bookings board in descending order of their highest seat number,
ties broken by booking ID.`

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "format",
		Name:        "input-format",
		Description: "How booking input text is laid out",
		MIMEType:    "text/plain",
	}, s.handleFormatResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "sequences/{sequenceId}",
		Name:        "boarding-sequence",
		Description: "A generated boarding sequence as CSV",
		MIMEType:    "text/csv",
	}, s.handleSequenceResource)
}

// handleFormatResource returns the input format help.
func (s *Server) handleFormatResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     formatHelp,
		}},
	}, nil
}

// handleSequenceResource returns a stored sequence encoded as CSV.
func (s *Server) handleSequenceResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractSequenceID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	entries, err := s.sequences.get(id)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	export, err := s.ports.Boarding.Export(entries, domain.ExportFormatCSV, s.now())
	if err != nil {
		return nil, err
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: export.MIMEType,
			Text:     string(export.Content),
		}},
	}, nil
}

// extractSequenceID extracts the ID from a URI like boardseq://sequences/{id}.
func extractSequenceID(uri string) string {
	const prefix = uriScheme + "sequences/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
