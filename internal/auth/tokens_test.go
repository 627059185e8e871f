package auth

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"swiftdoc/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newIssuerAndVerifier(t *testing.T, ttl time.Duration) (*TokenIssuer, TokenVerifier) {
	t.Helper()
	issuer, err := NewTokenIssuer("test-secret", ttl)
	if err != nil {
		t.Fatalf("new issuer: %v", err)
	}
	verifier, err := NewHMACVerifier("test-secret", testLogger())
	if err != nil {
		t.Fatalf("new verifier: %v", err)
	}
	return issuer, verifier
}

func TestIssueAndVerify(t *testing.T) {
	issuer, verifier := newIssuerAndVerifier(t, time.Hour)

	token, err := issuer.Issue("user-1", "alice@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := verifier.VerifyToken(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Subject != "user-1" {
		t.Errorf("subject = %q, want user-1", claims.Subject)
	}
	if claims.Email != "alice@example.com" {
		t.Errorf("email = %q", claims.Email)
	}
	if claims.Issuer != "swiftdoc" {
		t.Errorf("issuer = %q", claims.Issuer)
	}
}

func TestVerifyRejections(t *testing.T) {
	_, verifier := newIssuerAndVerifier(t, time.Hour)

	t.Run("garbage token", func(t *testing.T) {
		if _, err := verifier.VerifyToken("not.a.token"); !errors.Is(err, domain.ErrUnauthorized) {
			t.Errorf("error = %v, want ErrUnauthorized", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		otherIssuer, err := NewTokenIssuer("other-secret", time.Hour)
		if err != nil {
			t.Fatalf("new issuer: %v", err)
		}
		token, err := otherIssuer.Issue("user-1", "a@b.test")
		if err != nil {
			t.Fatalf("issue: %v", err)
		}
		if _, err := verifier.VerifyToken(token); !errors.Is(err, domain.ErrUnauthorized) {
			t.Errorf("error = %v, want ErrUnauthorized", err)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		issuer, verifier := newIssuerAndVerifier(t, -time.Minute)
		token, err := issuer.Issue("user-1", "a@b.test")
		if err != nil {
			t.Fatalf("issue: %v", err)
		}
		if _, err := verifier.VerifyToken(token); !errors.Is(err, domain.ErrUnauthorized) {
			t.Errorf("error = %v, want ErrUnauthorized", err)
		}
	})

	t.Run("unsigned token rejected", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
		})
		token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		if _, err := verifier.VerifyToken(token); !errors.Is(err, domain.ErrUnauthorized) {
			t.Errorf("error = %v, want ErrUnauthorized", err)
		}
	})

	t.Run("missing subject rejected", func(t *testing.T) {
		claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		if _, err := verifier.VerifyToken(token); !errors.Is(err, domain.ErrUnauthorized) {
			t.Errorf("error = %v, want ErrUnauthorized", err)
		}
	})
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "password123" {
		t.Fatal("password stored in the clear")
	}
	if !CheckPassword(hash, "password123") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("wrong password accepted")
	}
}
