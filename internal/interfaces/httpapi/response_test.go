package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/pitlanehq/pitwall/internal/domain/prediction"
	"github.com/pitlanehq/pitwall/internal/usecase"
)

func TestWriteSuccess_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	if _, ok := body["data"]; !ok {
		t.Fatalf("expected data key in success response")
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error key in success response")
	}
}

func TestWriteError_StatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantCode   int
		wantStatus string
	}{
		{
			name:       "invalid input",
			err:        fmt.Errorf("%w: bad payload", usecase.ErrInvalidInput),
			wantCode:   http.StatusBadRequest,
			wantStatus: "INVALID_ARGUMENT",
		},
		{
			name:       "not found",
			err:        fmt.Errorf("%w: race monza-2026", usecase.ErrNotFound),
			wantCode:   http.StatusNotFound,
			wantStatus: "NOT_FOUND",
		},
		{
			name:       "unauthorized",
			err:        fmt.Errorf("%w: no caller identity", usecase.ErrUnauthorized),
			wantCode:   http.StatusUnauthorized,
			wantStatus: "UNAUTHENTICATED",
		},
		{
			name:       "betting closed",
			err:        fmt.Errorf("%w: qualifying started", usecase.ErrBettingClosed),
			wantCode:   http.StatusConflict,
			wantStatus: "FAILED_PRECONDITION",
		},
		{
			name:       "unresolved driver",
			err:        fmt.Errorf("%w: entry 3", usecase.ErrUnresolvedDriver),
			wantCode:   http.StatusUnprocessableEntity,
			wantStatus: "FAILED_PRECONDITION",
		},
		{
			name:       "prediction sentinel",
			err:        fmt.Errorf("bet rejected: %w", prediction.ErrDuplicateDriver),
			wantCode:   http.StatusBadRequest,
			wantStatus: "INVALID_ARGUMENT",
		},
		{
			name:       "unknown error",
			err:        fmt.Errorf("connection reset"),
			wantCode:   http.StatusInternalServerError,
			wantStatus: "INTERNAL",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(context.Background(), rec, tc.err)

			if rec.Code != tc.wantCode {
				t.Fatalf("expected status %d, got %d", tc.wantCode, rec.Code)
			}

			var body map[string]any
			if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal response body: %v", err)
			}
			errorObj, ok := body["error"].(map[string]any)
			if !ok {
				t.Fatalf("expected error object in response")
			}
			if got, _ := errorObj["status"].(string); got != tc.wantStatus {
				t.Fatalf("expected error status %s, got %v", tc.wantStatus, errorObj["status"])
			}
		})
	}
}
