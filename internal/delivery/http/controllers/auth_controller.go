package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"visitordesk/internal/delivery/http/helpers"
	"visitordesk/internal/domain"
)

type AuthController struct {
	Logger   *slog.Logger
	Pins     domain.PinVerifier
	Tokens   domain.TokenIssuer
	TokenTTL time.Duration
}

func NewAuthController(logger *slog.Logger, pins domain.PinVerifier, tokens domain.TokenIssuer, tokenTTL time.Duration) *AuthController {
	return &AuthController{
		Logger:   logger,
		Pins:     pins,
		Tokens:   tokens,
		TokenTTL: tokenTTL,
	}
}

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	Pin string `json:"pin"`
}

// Validate implements helpers.Validator.
func (r *LoginRequest) Validate() []string {
	if r.Pin == "" {
		return []string{"pin is required"}
	}
	return nil
}

// LoginResponse is the success payload for POST /auth/login.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Login godoc
// @Summary Log in to the admin surface
// @Description Verifies the front-desk PIN and returns a bearer token for the admin routes.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body controllers.LoginRequest true "PIN"
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Pins.Verify(req.Pin); err != nil {
		if errors.Is(err, domain.ErrBadCredentials) {
			helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "wrong pin")
			return
		}
		writeDomainError(w, r, c.Logger, err)
		return
	}
	token, err := c.Tokens.Issue("admin", c.TokenTTL)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(c.TokenTTL),
	})
}
