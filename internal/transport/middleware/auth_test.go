package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/heartmarshall/notetree/pkg/ctxutil"
)

//go:generate moq -out token_validator_mock_test.go -pkg middleware . tokenValidator

func newValidator() *tokenValidatorMock {
	return &tokenValidatorMock{
		ValidateTokenFunc: func(ctx context.Context, token string) (string, error) {
			if token == "valid-token" {
				return "phone", nil
			}
			return "", errors.New("invalid token")
		},
	}
}

func TestAuth_ValidToken(t *testing.T) {
	validator := newValidator()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, ok := ctxutil.SubjectFromCtx(r.Context())
		if !ok {
			t.Error("expected subject in context")
			return
		}
		if subject != "phone" {
			t.Errorf("expected subject %q, got %q", "phone", subject)
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()

	Auth(validator)(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestAuth_Rejects(t *testing.T) {
	tests := []struct {
		name          string
		header        string
		wantValidated bool
	}{
		{"invalid token", "Bearer invalid-token", true},
		{"no header", "", false},
		{"basic auth", "Basic dXNlcjpwYXNz", false},
		{"empty bearer", "Bearer ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validator := newValidator()
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Error("handler should not be called")
			})

			req := httptest.NewRequest(http.MethodGet, "/api/tree", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			Auth(validator)(handler).ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
			}
			if rec.Header().Get("WWW-Authenticate") == "" {
				t.Error("expected WWW-Authenticate header")
			}
			if got := len(validator.ValidateTokenCalls()) > 0; got != tt.wantValidated {
				t.Errorf("validator called: got %v, want %v", got, tt.wantValidated)
			}
		})
	}
}

func TestAuth_WebSocketQueryToken(t *testing.T) {
	validator := newValidator()
	called := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodGet, "/ws?access_token=valid-token", nil)
	req.Header.Set("Upgrade", "websocket")
	rec := httptest.NewRecorder()

	Auth(validator)(handler).ServeHTTP(rec, req)

	if !called {
		t.Errorf("handler not called, status %d", rec.Code)
	}
	if calls := validator.ValidateTokenCalls(); len(calls) != 1 || calls[0].Token != "valid-token" {
		t.Errorf("unexpected validator calls: %+v", calls)
	}
}

func TestAuth_QueryTokenIgnoredForPlainRequests(t *testing.T) {
	validator := newValidator()
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/tree?access_token=valid-token", nil)
	rec := httptest.NewRecorder()

	Auth(validator)(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestExtractBearerToken_Cases(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   string
	}{
		{"empty header", "", ""},
		{"bearer with token", "Bearer valid-token", "valid-token"},
		{"bearer lowercase", "bearer valid-token", "valid-token"},
		{"bearer mixed case", "BEARER valid-token", "valid-token"},
		{"basic auth", "Basic dXNlcjpwYXNz", ""},
		{"bearer no space", "Bearertoken", ""},
		{"bearer empty token", "Bearer ", ""},
		{"just bearer", "Bearer", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			got := extractBearerToken(req)
			if got != tc.want {
				t.Errorf("extractBearerToken(%q) = %q, want %q", tc.header, got, tc.want)
			}
		})
	}
}
