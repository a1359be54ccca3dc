package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/artemkv/storefront/internal/events"
	"github.com/artemkv/storefront/internal/models"
	"github.com/artemkv/storefront/internal/repo"
	"github.com/artemkv/storefront/internal/service"
	"github.com/artemkv/storefront/internal/storage"
)

type testEnv struct {
	T      *testing.T
	E      *echo.Echo
	DB     *gorm.DB
	Secret []byte
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// one connection so every query sees the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, storage.Migrate(db))

	r := &repo.GormRepo{DB: db}
	secret := []byte("test-secret")
	producer := events.NewProducer(nil)

	e := echo.New()
	Register(e, &Deps{
		CartHandler:    &CartHTTP{Svc: &service.CartService{Repo: r}, Producer: producer},
		AuthHandler:    &AuthHTTP{Svc: &service.AuthService{Repo: r, JWTSecret: secret}, Producer: producer},
		ProductHandler: &ProductHTTP{Svc: &service.CatalogService{Repo: r}, Producer: producer},
		SearchHandler:  &SearchHTTP{Index: "products"},
		JWTSecret:      secret,
	})

	t.Cleanup(func() { sqlDB.Close() })

	return &testEnv{T: t, E: e, DB: db, Secret: secret}
}

func (env *testEnv) signToken(userID uint) string {
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(env.Secret)
	require.NoError(env.T, err)
	return token
}

func (env *testEnv) doJSON(method, path string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

func (env *testEnv) seedUser(email string) models.User {
	user := models.User{Email: email, PasswordHash: "x", Name: "Test User"}
	require.NoError(env.T, env.DB.Create(&user).Error)
	return user
}

func (env *testEnv) seedProduct(name string, price float64, stock uint) models.Product {
	product := models.Product{
		Name:     name,
		Price:    price,
		Category: "Electronics",
		Stock:    stock,
	}
	require.NoError(env.T, env.DB.Create(&product).Error)
	return product
}
