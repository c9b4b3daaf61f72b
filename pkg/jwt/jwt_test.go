package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/RyanW84/ShiftsLogger-sub001/config"
)

func newTestManager() *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret: "test-secret-key-for-unit-testing-2026",
		TokenTTL:  time.Hour,
	})
}

func TestGenerateAndParseToken(t *testing.T) {
	m := newTestManager()

	token, exp, err := m.GenerateToken("ops-console", RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken 失败: %v", err)
	}
	if time.Until(exp) <= 0 {
		t.Error("过期时间应在未来")
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken 失败: %v", err)
	}
	if claims.Subject != "ops-console" {
		t.Errorf("期望 Subject=ops-console，实际=%s", claims.Subject)
	}
	if claims.Role != RoleAdmin {
		t.Errorf("期望 Role=admin，实际=%s", claims.Role)
	}
	if claims.Issuer != "shifts-logger" {
		t.Errorf("期望 Issuer=shifts-logger，实际=%s", claims.Issuer)
	}
	if claims.ID == "" {
		t.Error("JTI 不应为空")
	}
}

func TestGenerateToken_UnknownRole(t *testing.T) {
	m := newTestManager()

	if _, _, err := m.GenerateToken("x", "root"); !errors.Is(err, ErrUnknownRole) {
		t.Errorf("期望 ErrUnknownRole，实际: %v", err)
	}
}

func TestParseToken_Expired(t *testing.T) {
	m := newTestManager()
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, _, err := m.GenerateToken("x", RoleViewer)
	if err != nil {
		t.Fatalf("GenerateToken 失败: %v", err)
	}

	m.now = time.Now
	if _, err := m.ParseToken(token); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("期望 ErrTokenExpired，实际: %v", err)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	m := newTestManager()
	token, _, _ := m.GenerateToken("x", RoleViewer)

	other := NewManager(&config.AuthConfig{JWTSecret: "another-secret-key-0123456789", TokenTTL: time.Hour})
	if _, err := other.ParseToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("期望 ErrTokenInvalid，实际: %v", err)
	}
}

func TestParseToken_Garbage(t *testing.T) {
	if _, err := newTestManager().ParseToken("not.a.token"); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("期望 ErrTokenInvalid，实际: %v", err)
	}
}
