package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   ErrorCode
	}{
		{
			name:       "not found",
			err:        New(ErrNotFound, "unknown variant"),
			wantStatus: http.StatusNotFound,
			wantCode:   ErrNotFound,
		},
		{
			name:       "wrapped validation",
			err:        fmt.Errorf("decode: %w", Wrap(ErrValidation, "bad body", errors.New("eof"))),
			wantStatus: http.StatusBadRequest,
			wantCode:   ErrValidation,
		},
		{
			name:       "registration",
			err:        Wrap(ErrResourceRegistration, "asset registry unavailable", &ResourceRegistrationError{Path: "privatemsg/styles/privatemsg-view.css"}),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   ErrResourceRegistration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			var resp ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if resp.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", resp.Code, tt.wantCode)
			}
		})
	}
}

func TestHandleErrorInternal(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, errors.New("boom"))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestResourceRegistrationErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("render: %w", &ResourceRegistrationError{Path: "a.css", Err: cause})

	if !IsResourceRegistration(err) {
		t.Fatal("expected IsResourceRegistration to match")
	}
	if !errors.Is(err, cause) {
		t.Error("expected cause to be reachable through Unwrap")
	}
	if IsResourceRegistration(cause) {
		t.Error("plain error must not match")
	}
}
