package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/adminpanel/rbac-directory/internal/core/domain"
)

// AdminRole is the API role granted to the configured administrator.
const AdminRole = "admin"

// AuthHandler authenticates the configured administrator and issues session
// tokens. The directory's Users carry no credentials; only this single
// configured identity can log in.
type AuthHandler struct {
	adminEmail string
	adminHash  string
	jwtSecret  string
	tokenTTL   time.Duration
}

func NewAuthHandler(adminEmail, adminHash, jwtSecret string, tokenTTL time.Duration) *AuthHandler {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthHandler{
		adminEmail: adminEmail,
		adminHash:  adminHash,
		jwtSecret:  jwtSecret,
		tokenTTL:   tokenTTL,
	}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login authenticates the administrator and returns a JWT token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if !strings.EqualFold(req.Email, h.adminEmail) {
		return domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(h.adminHash), []byte(req.Password)) != nil {
		return domain.ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"email": h.adminEmail,
		"role":  AdminRole,
		"exp":   time.Now().Add(h.tokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.jwtSecret))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{Token: token})
}
