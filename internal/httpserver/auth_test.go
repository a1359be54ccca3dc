package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/artemkv/storefront/internal/transport"
)

func TestSignup(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(http.MethodPost, "/api/auth/signup", map[string]any{
		"email":    "new@example.com",
		"password": "secret123",
		"name":     "New User",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp transport.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "User created successfully", resp.Message)
	require.NotEmpty(t, resp.Token)
	require.Equal(t, "new@example.com", resp.User.Email)
	require.Equal(t, "New User", resp.User.Name)
	require.NotZero(t, resp.User.ID)

	// the issued token is accepted by the cart endpoints
	cartRec := env.doJSON(http.MethodGet, "/api/cart", nil, resp.Token)
	require.Equal(t, http.StatusOK, cartRec.Code)
}

func TestSignupDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	body := map[string]any{"email": "dup@example.com", "password": "secret123", "name": "Dup"}
	rec := env.doJSON(http.MethodPost, "/api/auth/signup", body, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.doJSON(http.MethodPost, "/api/auth/signup", body, "")
	require.Equal(t, http.StatusConflict, rec.Code)

	var resp transport.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "User already exists with this email", resp.Error)
}

func TestSignupMissingFields(t *testing.T) {
	env := newTestEnv(t)

	for _, body := range []map[string]any{
		{"password": "secret123", "name": "X"},
		{"email": "x@example.com", "name": "X"},
		{"email": "x@example.com", "password": "secret123"},
	} {
		rec := env.doJSON(http.MethodPost, "/api/auth/signup", body, "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
	}
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(http.MethodPost, "/api/auth/signup", map[string]any{
		"email":    "login@example.com",
		"password": "secret123",
		"name":     "Login User",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.doJSON(http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "login@example.com",
		"password": "secret123",
	}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp transport.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	require.Equal(t, "login@example.com", resp.User.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)

	env.doJSON(http.MethodPost, "/api/auth/signup", map[string]any{
		"email":    "login@example.com",
		"password": "secret123",
		"name":     "Login User",
	}, "")

	for _, body := range []map[string]any{
		{"email": "login@example.com", "password": "wrong"},
		{"email": "unknown@example.com", "password": "secret123"},
	} {
		rec := env.doJSON(http.MethodPost, "/api/auth/login", body, "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)

		var resp transport.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "Invalid email or password", resp.Error)
	}
}
