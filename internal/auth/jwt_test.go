package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/heartmarshall/notetree/internal/domain"
	"github.com/jonboulle/clockwork"
)

const (
	testSecret = "test-secret-at-least-32-chars-long-for-security"
	testIssuer = "notetree-test"
)

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func newTestManager(ttl time.Duration) (*JWTManager, *clockwork.FakeClock) {
	clock := clockwork.NewFakeClockAt(testNow)
	return NewJWTManager(testSecret, testIssuer, ttl, clock), clock
}

func TestJWTManager_GenerateAndValidate_Success(t *testing.T) {
	t.Parallel()

	manager, _ := newTestManager(15 * time.Minute)

	token, err := manager.GenerateAccessToken("phone")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}
	if token.Value == "" {
		t.Fatal("expected non-empty token")
	}
	if !token.ExpiresAt.Equal(testNow.Add(15 * time.Minute)) {
		t.Errorf("expires at: got %v, want %v", token.ExpiresAt, testNow.Add(15*time.Minute))
	}

	subject, err := manager.ValidateToken(context.Background(), token.Value)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if subject != "phone" {
		t.Errorf("subject: got %q, want %q", subject, "phone")
	}
}

func TestJWTManager_UniqueTokenIDs(t *testing.T) {
	t.Parallel()

	manager, _ := newTestManager(time.Hour)

	a, err := manager.GenerateAccessToken("phone")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	b, err := manager.GenerateAccessToken("phone")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if a.Value == b.Value {
		t.Error("tokens minted at the same instant should still differ")
	}
}

func TestJWTManager_GenerateAccessToken_EmptySubject(t *testing.T) {
	t.Parallel()

	manager, _ := newTestManager(time.Hour)

	_, err := manager.GenerateAccessToken("")
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestJWTManager_ValidateToken_Expired(t *testing.T) {
	t.Parallel()

	manager, clock := newTestManager(15 * time.Minute)

	token, err := manager.GenerateAccessToken("phone")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	clock.Advance(16 * time.Minute)

	_, err = manager.ValidateToken(context.Background(), token.Value)
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for expired token, got %v", err)
	}
	if !strings.Contains(err.Error(), "expired") {
		t.Errorf("error should mention expiry: %v", err)
	}
}

func TestJWTManager_ValidateToken_Invalid(t *testing.T) {
	t.Parallel()

	manager, _ := newTestManager(time.Hour)
	good, err := manager.GenerateAccessToken("phone")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	otherSecret := NewJWTManager("another-secret-that-is-also-32-chars-long", testIssuer, time.Hour, clockwork.NewFakeClockAt(testNow))
	wrongSecret, err := otherSecret.GenerateAccessToken("phone")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	otherIssuer := NewJWTManager(testSecret, "someone-else", time.Hour, clockwork.NewFakeClockAt(testNow))
	wrongIssuer, err := otherIssuer.GenerateAccessToken("phone")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "phone",
		Issuer:    testIssuer,
		ExpiresAt: jwt.NewNumericDate(testNow.Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    testIssuer,
		ExpiresAt: jwt.NewNumericDate(testNow.Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "phone",
		Issuer:  testIssuer,
	}).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not.a.jwt"},
		{"tampered", good.Value + "x"},
		{"wrong secret", wrongSecret.Value},
		{"wrong issuer", wrongIssuer.Value},
		{"alg none", noneToken},
		{"no subject", noSubject},
		{"no expiry", noExpiry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := manager.ValidateToken(context.Background(), tt.token)
			if !errors.Is(err, domain.ErrUnauthorized) {
				t.Errorf("expected ErrUnauthorized, got %v", err)
			}
		})
	}
}
