package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/artemkv/storefront/internal/events"
	"github.com/artemkv/storefront/internal/logging"
	"github.com/artemkv/storefront/internal/service"
	"github.com/artemkv/storefront/internal/transport"
)

type AuthHTTP struct {
	Svc      *service.AuthService
	Producer *events.Producer
}

func (h *AuthHTTP) Signup(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.signup")

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("signup rejected", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "Invalid request body"})
	}

	user, token, err := h.Svc.Register(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("signup rejected", "status", 400, "error", err)
			return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "Email, password, and name are required"})
		case errors.Is(err, service.ErrConflict):
			l.Warn("signup rejected", "status", 409, "email", req.Email)
			return c.JSON(http.StatusConflict, transport.ErrorResponse{Error: "User already exists with this email"})
		default:
			l.Error("signup failed", "status", 500, "error", err)
			return internalError(c)
		}
	}

	h.publish(c, map[string]any{
		"type":   "user_registered",
		"userID": user.ID,
		"email":  user.Email,
	})

	l.Info("user registered", "user_id", user.ID)
	return c.JSON(http.StatusCreated, transport.AuthResponse{
		Message: "User created successfully",
		Token:   token,
		User:    transport.UserResponse{ID: user.ID, Email: user.Email, Name: user.Name},
	})
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("login rejected", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "Invalid request body"})
	}

	user, token, err := h.Svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("login rejected", "status", 400, "error", err)
			return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "Email and password are required"})
		case errors.Is(err, service.ErrBadLogin):
			l.Warn("login rejected", "status", 401, "email", req.Email)
			return c.JSON(http.StatusUnauthorized, transport.ErrorResponse{Error: "Invalid email or password"})
		default:
			l.Error("login failed", "status", 500, "error", err)
			return internalError(c)
		}
	}

	h.publish(c, map[string]any{
		"type":   "user_logged_in",
		"userID": user.ID,
		"email":  user.Email,
	})

	l.Info("user logged in", "user_id", user.ID)
	return c.JSON(http.StatusOK, transport.AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    transport.UserResponse{ID: user.ID, Email: user.Email, Name: user.Name},
	})
}
