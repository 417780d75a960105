package httpapi

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/boardseq/internal/adapters/driven/codec"
	"github.com/custodia-labs/boardseq/internal/adapters/driven/codec/tabular"
	"github.com/custodia-labs/boardseq/internal/core/domain"
	"github.com/custodia-labs/boardseq/internal/core/services"
)

func newTestServer(t *testing.T, opts ...Option) *Server {
	t.Helper()
	ports := &Ports{
		Boarding: services.NewBoardingService(tabular.NewDecoder(), codec.NewDefaultRegistry(), nil),
		Intake:   services.NewIntakeService(nil),
	}
	opts = append([]Option{WithClock(func() time.Time {
		return time.Date(2024, 5, 1, 23, 0, 0, 0, time.UTC)
	})}, opts...)
	s, err := NewServer(ports, opts...)
	require.NoError(t, err)
	return s
}

func do(s *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func jsonRequest(t *testing.T, target string, body any) *http.Request {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeResult(t *testing.T, rec *httptest.ResponseRecorder) domain.ProcessingResult {
	t.Helper()
	var result domain.ProcessingResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	return result
}

func uploadRequest(t *testing.T, name, content string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/sequences/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestNewServer_Validation(t *testing.T) {
	_, err := NewServer(&Ports{})
	assert.ErrorIs(t, err, ErrMissingBoardingService)

	_, err = NewServer(&Ports{Boarding: services.NewBoardingService(nil, nil, nil)})
	assert.ErrorIs(t, err, ErrMissingIntakeService)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	rec := do(s, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
	_, err := uuid.Parse(rec.Header().Get("X-Request-ID"))
	assert.NoError(t, err)
}

func TestGenerate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		s := newTestServer(t)
		body := map[string]any{"bookings": []map[string]any{
			{"booking_id": "101", "seats": []string{"A1", "B1"}},
			{"booking_id": "120", "seats": []string{"A20", "C2"}},
			{"booking_id": "", "seats": []string{"A5"}},
		}}

		rec := do(s, jsonRequest(t, "/v1/sequences", body))

		require.Equal(t, http.StatusOK, rec.Code)
		result := decodeResult(t, rec)
		assert.True(t, result.Success)
		require.Len(t, result.Sequence, 2)
		assert.Equal(t, "120", result.Sequence[0].BookingID)
		assert.Equal(t, 20, result.Sequence[0].MaxSeatNumber)
		assert.Equal(t, []string{"Invalid booking: Unknown ID - missing ID or seats"}, result.Warnings)
	})

	t.Run("no valid bookings is 422", func(t *testing.T) {
		s := newTestServer(t)
		body := map[string]any{"bookings": []map[string]any{
			{"booking_id": "7", "seats": []string{"??"}},
		}}

		rec := do(s, jsonRequest(t, "/v1/sequences", body))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		result := decodeResult(t, rec)
		assert.False(t, result.Success)
		assert.Equal(t, []string{"Booking 7: No valid seats found"}, result.Errors)
	})

	t.Run("malformed json is 400", func(t *testing.T) {
		s := newTestServer(t)
		req := httptest.NewRequest(http.MethodPost, "/v1/sequences", strings.NewReader("{"))
		req.Header.Set("Content-Type", "application/json")

		rec := do(s, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGenerateText(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		s := newTestServer(t)
		req := httptest.NewRequest(http.MethodPost, "/v1/sequences/text",
			strings.NewReader("Booking_ID,Seats\n101,A1,B1\n120,A20,C2\n"))

		rec := do(s, req)

		require.Equal(t, http.StatusOK, rec.Code)
		result := decodeResult(t, rec)
		require.Len(t, result.Sequence, 2)
		assert.Equal(t, "120", result.Sequence[0].BookingID)
	})

	t.Run("empty body is 422", func(t *testing.T) {
		s := newTestServer(t)

		rec := do(s, httptest.NewRequest(http.MethodPost, "/v1/sequences/text", strings.NewReader("")))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, []string{domain.NoBookingsInFileMessage}, decodeResult(t, rec).Errors)
	})

	t.Run("oversized body is 413", func(t *testing.T) {
		s := newTestServer(t, WithMaxBodyBytes(8))

		rec := do(s, httptest.NewRequest(http.MethodPost, "/v1/sequences/text",
			strings.NewReader("101,A1\n102,B2\n")))

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})
}

func TestUpload(t *testing.T) {
	t.Run("csv file", func(t *testing.T) {
		s := newTestServer(t)

		rec := do(s, uploadRequest(t, "bookings.CSV", "121,C20,C22\n100,B15\n"))

		require.Equal(t, http.StatusOK, rec.Code)
		result := decodeResult(t, rec)
		require.Len(t, result.Sequence, 2)
		assert.Equal(t, "121", result.Sequence[0].BookingID)
	})

	t.Run("byte order mark is dropped", func(t *testing.T) {
		s := newTestServer(t)

		rec := do(s, uploadRequest(t, "bookings.csv", "\xef\xbb\xbf120,B5\n100,A5\n"))

		require.Equal(t, http.StatusOK, rec.Code)
		result := decodeResult(t, rec)
		require.Len(t, result.Sequence, 2)
		assert.Equal(t, "100", result.Sequence[0].BookingID)
		assert.Equal(t, "120", result.Sequence[1].BookingID)
	})

	t.Run("header only is 422", func(t *testing.T) {
		s := newTestServer(t)

		rec := do(s, uploadRequest(t, "bookings.txt", "Booking_ID,Seats\n"))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, []string{domain.NoBookingsInFileMessage}, decodeResult(t, rec).Errors)
	})

	t.Run("unsupported extension is 415", func(t *testing.T) {
		s := newTestServer(t)

		rec := do(s, uploadRequest(t, "bookings.xlsx", "121,C20"))

		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
		assert.Contains(t, rec.Body.String(), "please upload a CSV or TXT file")
	})

	t.Run("missing file is 400", func(t *testing.T) {
		s := newTestServer(t)

		rec := do(s, httptest.NewRequest(http.MethodPost, "/v1/sequences/upload", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestExport(t *testing.T) {
	body := map[string]any{"bookings": []map[string]any{
		{"booking_id": "121", "seats": []string{"C20", "C22"}},
		{"booking_id": "100", "seats": []string{"B15"}},
	}}

	t.Run("csv attachment", func(t *testing.T) {
		s := newTestServer(t)

		rec := do(s, jsonRequest(t, "/v1/sequences/export", body))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="boarding-sequence-2024-05-01.csv"`,
			rec.Header().Get("Content-Disposition"))
		assert.Equal(t,
			`"Seq","Booking_ID","Max_Seat_Number","Seats"`+"\n"+
				`"1","121","22","C20;C22"`+"\n"+
				`"2","100","15","B15"`,
			rec.Body.String())
	})

	t.Run("pdf attachment", func(t *testing.T) {
		s := newTestServer(t)

		rec := do(s, jsonRequest(t, "/v1/sequences/export?format=pdf", body))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
		assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF-"))
	})

	t.Run("unknown format is 400", func(t *testing.T) {
		s := newTestServer(t)

		rec := do(s, jsonRequest(t, "/v1/sequences/export?format=xml", body))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("failed result is 422", func(t *testing.T) {
		s := newTestServer(t)

		rec := do(s, jsonRequest(t, "/v1/sequences/export", map[string]any{"bookings": []any{}}))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestRateLimit(t *testing.T) {
	s := newTestServer(t, WithRateLimit(rate.Every(time.Hour), 1))

	first := do(s, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	second := do(s, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.NotEmpty(t, second.Header().Get("Retry-After"))
	assert.Contains(t, second.Body.String(), "too_many_requests")
}
