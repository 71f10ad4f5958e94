package auth

import (
	"testing"
	"time"

	"github.com/spec-kit/reporting-service/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	email := "prl@luct.co.ls"
	user := &domain.User{
		ID:    7,
		Name:  "Thabo",
		Email: &email,
		Role:  domain.RolePrincipalLecturer,
	}

	token, expiresAt, err := tm.GenerateToken(user)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}
	if remaining := time.Until(expiresAt); remaining < 59*time.Minute || remaining > time.Hour {
		t.Fatalf("unexpected expiry window: %v", remaining)
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if claims.UserID != 7 || claims.Name != "Thabo" || claims.Role != domain.RolePrincipalLecturer {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.Email == nil || *claims.Email != email {
		t.Fatalf("email claim lost")
	}
	if claims.StudentID != nil {
		t.Fatalf("staff token must not carry a student id")
	}
	if claims.ID == "" {
		t.Fatalf("token id missing")
	}
}

func TestTokenStudentClaims(t *testing.T) {
	tm := NewTokenManager("test-secret", 0)
	if tm.TTL() != 24*time.Hour {
		t.Fatalf("default validity must be 24 hours, got %v", tm.TTL())
	}

	studentID := "901019102"
	user := &domain.User{ID: 3, Name: "Lineo", StudentID: &studentID, Role: domain.RoleStudent}
	token, _, err := tm.GenerateToken(user)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}
	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if claims.StudentID == nil || *claims.StudentID != studentID {
		t.Fatalf("student id claim lost")
	}
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	token, _, err := tm.GenerateToken(&domain.User{ID: 1, Name: "x", Role: domain.RoleLecturer})
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	other := NewTokenManager("different-secret", time.Hour)
	if _, err := other.ParseToken(token); err == nil {
		t.Fatalf("expected signature verification to fail")
	}
}

func TestTokenRejectsExpired(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	expired := &TokenManager{secret: tm.secret, ttl: -time.Minute}
	token, _, err := expired.GenerateToken(&domain.User{ID: 1, Name: "x", Role: domain.RoleLecturer})
	if err != nil {
		t.Fatalf("token error: %v", err)
	}
	if _, err := tm.ParseToken(token); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}
}
