package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/adminpanel/rbac-directory/internal/core/domain"
)

const testSecret = "test-secret"

func newAuthHandler(t *testing.T, password string) *AuthHandler {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return NewAuthHandler("admin@x.com", string(hash), testSecret, time.Hour)
}

func loginContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_LoginIssuesAdminToken(t *testing.T) {
	h := newAuthHandler(t, "s3cret")
	c, rec := loginContext(t, `{"email":"ADMIN@X.COM","password":"s3cret"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected a token")
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(resp.Token, claims, func(*jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims["role"] != AdminRole {
		t.Fatalf("expected role %q, got %v", AdminRole, claims["role"])
	}
	if claims["email"] != "admin@x.com" {
		t.Fatalf("expected configured email in claims, got %v", claims["email"])
	}
}

func TestAuthHandler_LoginWrongPassword(t *testing.T) {
	h := newAuthHandler(t, "s3cret")
	c, _ := loginContext(t, `{"email":"admin@x.com","password":"wrong"}`)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_LoginUnknownEmail(t *testing.T) {
	h := newAuthHandler(t, "s3cret")
	c, _ := loginContext(t, `{"email":"intruder@x.com","password":"s3cret"}`)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_LoginRejectsMalformedPayload(t *testing.T) {
	h := newAuthHandler(t, "s3cret")
	c, _ := loginContext(t, `{"email":"not-an-email","password":""}`)

	err := h.Login(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}
