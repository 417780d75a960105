package httpapi

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/custodia-labs/boardseq/internal/core/domain"
	"github.com/custodia-labs/boardseq/internal/logger"
)

// generateRequest is the JSON body of generate and export calls.
type generateRequest struct {
	Bookings []domain.Booking `json:"bookings"`
}

// errorResponse is the body of every 4xx/5xx reply not carrying a result.
type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// generate ranks a JSON list of bookings.
func (s *Server) generate(c echo.Context) error {
	var req generateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid JSON body")
	}
	return respondResult(c, s.ports.Boarding.Generate(req.Bookings))
}

// generateText ranks a raw Booking_ID,Seats body.
func (s *Server) generateText(c echo.Context) error {
	body := http.MaxBytesReader(c.Response(), c.Request().Body, s.maxBodyBytes)
	data, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return c.JSON(http.StatusRequestEntityTooLarge, errorResponse{Error: domain.ErrFileTooLarge.Error()})
		}
		return badRequest(c, "could not read body")
	}
	return respondResult(c, s.ports.Boarding.GenerateFromText(string(data)))
}

// upload ranks the contents of a multipart "file" field.
func (s *Server) upload(c echo.Context) error {
	header, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "missing file field")
	}

	if err := s.ports.Intake.Check(header.Filename, header.Size); err != nil {
		return intakeError(c, err)
	}

	f, err := header.Open()
	if err != nil {
		return badRequest(c, "could not open upload")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return badRequest(c, "could not read upload")
	}
	logger.Debug("Upload %s: %d bytes", header.Filename, len(data))

	return respondResult(c, s.ports.Boarding.GenerateFromText(string(data)))
}

// export ranks a JSON list of bookings and returns the encoded sequence as
// a download.
func (s *Server) export(c echo.Context) error {
	format := domain.ExportFormatCSV
	if q := c.QueryParam("format"); q != "" {
		f, err := domain.ParseExportFormat(q)
		if err != nil {
			return badRequest(c, err.Error()+": "+q)
		}
		format = f
	}

	var req generateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid JSON body")
	}

	result := s.ports.Boarding.Generate(req.Bookings)
	if !result.Success {
		return respondResult(c, result)
	}

	export, err := s.ports.Boarding.Export(result.Sequence, format, s.now())
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedFormat) {
			return badRequest(c, err.Error())
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+export.FileName+`"`)
	return c.Blob(http.StatusOK, export.MIMEType, export.Content)
}

// respondResult writes a processing result: 200 on success, 422 on failure.
func respondResult(c echo.Context, result domain.ProcessingResult) error {
	if !result.Success {
		return c.JSON(http.StatusUnprocessableEntity, result)
	}
	return c.JSON(http.StatusOK, result)
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, errorResponse{Error: msg})
}

// intakeError maps intake rejections to status codes.
func intakeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnsupportedFile):
		return c.JSON(http.StatusUnsupportedMediaType, errorResponse{Error: domain.ErrUnsupportedFile.Error()})
	case errors.Is(err, domain.ErrFileTooLarge):
		return c.JSON(http.StatusRequestEntityTooLarge, errorResponse{Error: domain.ErrFileTooLarge.Error()})
	default:
		return badRequest(c, err.Error())
	}
}
