package rest

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"assignly-api/internal/application/services"
	domainUser "assignly-api/internal/domain/user"
)

func storedUser(t *testing.T, auth interface{ HashPassword(string) (string, error) }, password string) *domainUser.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return &domainUser.User{
		UUID:         uuid.New(),
		FirstName:    "Ana",
		LastName:     "Souza",
		Email:        "ana@example.com",
		PasswordHash: &hash,
		Active:       true,
	}
}

func TestLogin_Success(t *testing.T) {
	r, j := newTestRouter()
	authService := services.NewAuthService(j)
	u := storedUser(t, authService, "supersecret1")

	us := &FakeUserService{
		FindByEmailFunc: func(_ context.Context, email string) (*domainUser.User, error) {
			require.Equal(t, u.Email, email)
			return u, nil
		},
	}
	NewAuthController(r, zap.NewNop(), us, authService)

	rr := doReq(t, r, http.MethodPost, RouteLogin,
		map[string]string{"email": u.Email, "password": "supersecret1"}, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeBody(t, rr)
	assert.Equal(t, "Login successful!", body["message"])
	assert.Equal(t, u.UUID.String(), body["userId"])
	require.NotEmpty(t, body["token"])

	claims, err := j.ValidateToken(body["token"].(string))
	require.NoError(t, err)
	assert.Equal(t, u.UUID.String(), claims.UserID)
	assert.Equal(t, u.Email, claims.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	r, j := newTestRouter()
	authService := services.NewAuthService(j)
	u := storedUser(t, authService, "supersecret1")

	us := &FakeUserService{
		FindByEmailFunc: func(_ context.Context, _ string) (*domainUser.User, error) {
			return u, nil
		},
	}
	NewAuthController(r, zap.NewNop(), us, authService)

	rr := doReq(t, r, http.MethodPost, RouteLogin,
		map[string]string{"email": u.Email, "password": "nottherightone"}, nil)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Invalid email or password", decodeBody(t, rr)["message"])
}

func TestLogin_UnknownEmail(t *testing.T) {
	r, j := newTestRouter()

	us := &FakeUserService{
		FindByEmailFunc: func(_ context.Context, _ string) (*domainUser.User, error) {
			return nil, nil
		},
	}
	NewAuthController(r, zap.NewNop(), us, services.NewAuthService(j))

	rr := doReq(t, r, http.MethodPost, RouteLogin,
		map[string]string{"email": "nobody@example.com", "password": "supersecret1"}, nil)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Invalid email or password", decodeBody(t, rr)["message"])
}

func TestLogin_DeletedInactiveAccount(t *testing.T) {
	r, j := newTestRouter()
	authService := services.NewAuthService(j)
	u := storedUser(t, authService, "supersecret1")
	u.Deleted = true
	u.Active = false

	us := &FakeUserService{
		FindByEmailFunc: func(_ context.Context, _ string) (*domainUser.User, error) {
			return u, nil
		},
	}
	NewAuthController(r, zap.NewNop(), us, authService)

	rr := doReq(t, r, http.MethodPost, RouteLogin,
		map[string]string{"email": u.Email, "password": "supersecret1"}, nil)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

// deleted but still flagged active keeps its sign-in, matching the
// lenient historical behavior.
func TestLogin_DeletedButActiveAccount(t *testing.T) {
	r, j := newTestRouter()
	authService := services.NewAuthService(j)
	u := storedUser(t, authService, "supersecret1")
	u.Deleted = true
	u.Active = true

	us := &FakeUserService{
		FindByEmailFunc: func(_ context.Context, _ string) (*domainUser.User, error) {
			return u, nil
		},
	}
	NewAuthController(r, zap.NewNop(), us, authService)

	rr := doReq(t, r, http.MethodPost, RouteLogin,
		map[string]string{"email": u.Email, "password": "supersecret1"}, nil)
	require.Equal(t, http.StatusOK, rr.Code)
}

func TestLogin_InvalidBody(t *testing.T) {
	r, j := newTestRouter()
	NewAuthController(r, zap.NewNop(), &FakeUserService{}, services.NewAuthService(j))

	rr := doReq(t, r, http.MethodPost, RouteLogin, `{"email":`, nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doReq(t, r, http.MethodPost, RouteLogin,
		map[string]string{"email": "not-an-email", "password": ""}, nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}
