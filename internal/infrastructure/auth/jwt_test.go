package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tomekh/stockledger/internal/domain"
	"github.com/tomekh/stockledger/internal/infrastructure/auth"
)

func TestJWTManagerGenerateAndVerify(t *testing.T) {
	t.Parallel()

	manager := auth.NewJWTManager("super-secret", time.Minute, time.Hour)

	user := &domain.User{
		ID:    "user-123",
		Email: "user@example.com",
		Role:  domain.RoleAdmin,
	}

	pair, err := manager.GeneratePair(user)
	if err != nil {
		t.Fatalf("failed to generate token pair: %v", err)
	}

	claims, err := manager.VerifyAccess(pair.AccessToken)
	if err != nil {
		t.Fatalf("expected access token to verify, got %v", err)
	}

	if claims.UserID != user.ID || claims.Email != user.Email || claims.Role != user.Role {
		t.Fatalf("expected claims to match user, got %+v", claims)
	}

	refreshClaims, err := manager.VerifyRefresh(pair.RefreshToken)
	if err != nil {
		t.Fatalf("expected refresh token to verify, got %v", err)
	}

	if refreshClaims.UserID != user.ID {
		t.Fatalf("expected refresh claims to match user, got %+v", refreshClaims)
	}
}

func TestJWTManagerRejectsWrongTokenUse(t *testing.T) {
	t.Parallel()

	manager := auth.NewJWTManager("super-secret", time.Minute, time.Hour)

	user := &domain.User{
		ID:    "user-123",
		Email: "user@example.com",
		Role:  domain.RoleClerk,
	}

	pair, err := manager.GeneratePair(user)
	if err != nil {
		t.Fatalf("failed to generate token pair: %v", err)
	}

	if _, err := manager.VerifyAccess(pair.RefreshToken); err != domain.ErrInvalidToken {
		t.Fatalf("expected refresh token to fail access verification, got %v", err)
	}

	if _, err := manager.VerifyRefresh(pair.AccessToken); err != domain.ErrInvalidToken {
		t.Fatalf("expected access token to fail refresh verification, got %v", err)
	}
}

func TestJWTManagerVerifyErrors(t *testing.T) {
	t.Parallel()

	manager := auth.NewJWTManager("secret", time.Minute, time.Hour)

	user := &domain.User{
		ID:    "expired",
		Email: "expired@example.com",
		Role:  domain.RoleViewer,
	}

	expiredClaims := auth.Claims{
		UserID:   user.ID,
		Email:    user.Email,
		Role:     user.Role,
		TokenUse: auth.TokenUseAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Minute)),
			NotBefore: jwt.NewNumericDate(time.Now().Add(-2 * time.Minute)),
		},
	}

	expiredToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expiredClaims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("failed to sign expired token: %v", err)
	}

	if _, err := manager.VerifyAccess(expiredToken); err != domain.ErrExpiredToken {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}

	otherManager := auth.NewJWTManager("other-secret", time.Minute, time.Hour)
	if _, err := otherManager.VerifyAccess(expiredToken); err == nil || err == domain.ErrExpiredToken {
		t.Fatalf("expected invalid token error, got %v", err)
	}

	if _, err := manager.VerifyAccess("not-a-token"); err == nil {
		t.Fatalf("expected failure for malformed token")
	}
}
