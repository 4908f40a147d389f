package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	listingDomain "wattledger/internal/domain/listing"
	loanDomain "wattledger/internal/domain/loan"
	sourceDomain "wattledger/internal/domain/source"
	"wattledger/internal/domain/token"
	"wattledger/pkg/checked"

	"github.com/labstack/echo/v4"
)

const (
	testOwner    = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	testBuyer    = "dddddddddddddddddddddddddddddddd"
	testVerifier = "ffffffffffffffffffffffffffffffff"
	testEntityID = "0123456789abcdef0123456789abcdef"
)

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return b
}

// newContext builds an echo context with the validator wired, a JSON body
// and the caller header set (pass "" to omit it).
func newContext(t *testing.T, method, target string, body []byte, account string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if account != "" {
		req.Header.Set(HeaderAccountID, account)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func TestAccountID(t *testing.T) {
	tests := []struct {
		name   string
		header string
		wantOK bool
	}{
		{"valid hex32", testOwner, true},
		{"missing", "", false},
		{"uppercase", "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA", false},
		{"too short", "abc123", false},
		{"trailing space trimmed", testOwner + "  ", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newContext(t, http.MethodGet, "/", nil, tt.header)
			id, ok := accountID(c)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v (id=%q)", ok, tt.wantOK, id)
			}
			if ok && id != testOwner {
				t.Fatalf("id = %q", id)
			}
		})
	}
}

func TestErrStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{sourceDomain.ErrNotFound, http.StatusNotFound},
		{loanDomain.ErrNotFound, http.StatusNotFound},
		{listingDomain.ErrNotFound, http.StatusNotFound},
		{sourceDomain.ErrUnauthorized, http.StatusForbidden},
		{loanDomain.ErrUnauthorized, http.StatusForbidden},
		{sourceDomain.ErrAlreadyRegistered, http.StatusConflict},
		{listingDomain.ErrAlreadyListed, http.StatusConflict},
		{loanDomain.ErrNotActive, http.StatusConflict},
		{listingDomain.ErrNotActive, http.StatusConflict},
		{listingDomain.ErrInsufficientAmount, http.StatusConflict},
		{token.ErrInsufficientBalance, http.StatusConflict},
		{sourceDomain.ErrNotVerified, http.StatusUnprocessableEntity},
		{checked.ErrOverflow, http.StatusUnprocessableEntity},
		{checked.ErrUnderflow, http.StatusUnprocessableEntity},
		{loanDomain.ErrInvalidAmount, http.StatusBadRequest},
		{listingDomain.ErrInvalidSeller, http.StatusBadRequest},
		{errors.New("driver broke"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := errStatus(tt.err); got != tt.want {
			t.Errorf("errStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestJSONError_HidesInternalDetail(t *testing.T) {
	c, rec := newContext(t, http.MethodGet, "/", nil, "")
	if err := jsonError(c, errors.New("dial tcp 10.0.0.5: timeout")); err != nil {
		t.Fatalf("jsonError returned %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("code = %d", rec.Code)
	}
	var body ErrorResponse
	decodeBody(t, rec, &body)
	if body.Error != "internal error" {
		t.Fatalf("error = %q, internal detail leaked", body.Error)
	}
}
