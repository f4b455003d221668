package auth_test

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/saulo-duarte/chronos-quiz/internal/auth"
)

const testSecret = "a-long-and-reasonably-secure-test-secret"
const testUserID = "user-123"
const testRole = "guest"

func TestInit(t *testing.T) {
	t.Run("MissingSecret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		defer func() {
			if r := recover(); r == nil {
				t.Errorf("Init() should panic when JWT_SECRET is empty")
			}
		}()

		auth.Init()
	})

	t.Run("ValidSecret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", testSecret)
		auth.Init()
	})
}

func TestGenerateAndValidateJWT(t *testing.T) {
	os.Setenv("JWT_SECRET", testSecret)
	auth.Init()

	t.Run("ValidToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testRole, 5*time.Minute)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		claims, err := auth.ValidateJWT(tokenStr)
		if err != nil {
			t.Fatalf("ValidateJWT failed unexpectedly: %v", err)
		}

		if claims.UserID != testUserID {
			t.Errorf("wrong UserID. want %s, got %s", testUserID, claims.UserID)
		}
		if claims.Role != testRole {
			t.Errorf("wrong Role. want %s, got %s", testRole, claims.Role)
		}
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testRole, -time.Minute)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		_, err = auth.ValidateJWT(tokenStr)
		if !errors.Is(err, jwt.ErrTokenExpired) {
			t.Errorf("want %v, got %v", jwt.ErrTokenExpired, err)
		}
	})

	t.Run("InvalidSignature", func(t *testing.T) {
		forged := jwt.NewWithClaims(jwt.SigningMethodHS256, &auth.Claims{
			UserID: testUserID,
			Role:   testRole,
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "chronos-quiz",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
			},
		})
		tokenStr, err := forged.SignedString([]byte("a-different-secret"))
		if err != nil {
			t.Fatalf("sign forged token: %v", err)
		}

		_, err = auth.ValidateJWT(tokenStr)
		if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			t.Errorf("want %v, got %v", jwt.ErrTokenSignatureInvalid, err)
		}
	})

	t.Run("Garbage", func(t *testing.T) {
		if _, err := auth.ValidateJWT("not-a-token"); err == nil {
			t.Error("expected an error for a malformed token")
		}
	})
}
