package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	domainTask "assignly-api/internal/domain/task"
	domainUser "assignly-api/internal/domain/user"
	jwtSvc "assignly-api/internal/infrastructure/jwt"
)

const testSecret = "test-secret"

// FakeLifecycle stands in for any of the lifecycle service ports; unset
// funcs fail the call so a test only wires what it exercises.
type FakeLifecycle[T any, P any] struct {
	ListAllFunc       func(ctx context.Context) ([]*T, error)
	FindByNameFunc    func(ctx context.Context, name string) ([]*T, error)
	FindByIDFunc      func(ctx context.Context, id uuid.UUID) (*T, error)
	CreateFunc        func(ctx context.Context, rec *T) (*T, error)
	UpdateFunc        func(ctx context.Context, id uuid.UUID, patch P) (*T, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
	ToggleActiveFunc  func(ctx context.Context, id uuid.UUID) (*T, error)
	ToggleDeletedFunc func(ctx context.Context, id uuid.UUID) (*T, error)
}

var errNotUsed = errors.New("not used")

func (f *FakeLifecycle[T, P]) ListAll(ctx context.Context) ([]*T, error) {
	if f.ListAllFunc == nil {
		return nil, errNotUsed
	}
	return f.ListAllFunc(ctx)
}

func (f *FakeLifecycle[T, P]) FindByName(ctx context.Context, name string) ([]*T, error) {
	if f.FindByNameFunc == nil {
		return nil, errNotUsed
	}
	return f.FindByNameFunc(ctx, name)
}

func (f *FakeLifecycle[T, P]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	if f.FindByIDFunc == nil {
		return nil, errNotUsed
	}
	return f.FindByIDFunc(ctx, id)
}

func (f *FakeLifecycle[T, P]) Create(ctx context.Context, rec *T) (*T, error) {
	if f.CreateFunc == nil {
		return nil, errNotUsed
	}
	return f.CreateFunc(ctx, rec)
}

func (f *FakeLifecycle[T, P]) Update(ctx context.Context, id uuid.UUID, patch P) (*T, error) {
	if f.UpdateFunc == nil {
		return nil, errNotUsed
	}
	return f.UpdateFunc(ctx, id, patch)
}

func (f *FakeLifecycle[T, P]) Delete(ctx context.Context, id uuid.UUID) error {
	if f.DeleteFunc == nil {
		return errNotUsed
	}
	return f.DeleteFunc(ctx, id)
}

func (f *FakeLifecycle[T, P]) ToggleActive(ctx context.Context, id uuid.UUID) (*T, error) {
	if f.ToggleActiveFunc == nil {
		return nil, errNotUsed
	}
	return f.ToggleActiveFunc(ctx, id)
}

func (f *FakeLifecycle[T, P]) ToggleDeleted(ctx context.Context, id uuid.UUID) (*T, error) {
	if f.ToggleDeletedFunc == nil {
		return nil, errNotUsed
	}
	return f.ToggleDeletedFunc(ctx, id)
}

type FakeUserService struct {
	FakeLifecycle[domainUser.User, domainUser.Patch]
	FindByEmailFunc func(ctx context.Context, email string) (*domainUser.User, error)
}

func (f *FakeUserService) FindByEmail(ctx context.Context, email string) (*domainUser.User, error) {
	if f.FindByEmailFunc == nil {
		return nil, errNotUsed
	}
	return f.FindByEmailFunc(ctx, email)
}

type FakeTaskService struct {
	FakeLifecycle[domainTask.Task, domainTask.Patch]
	FindByProfessionalFunc func(ctx context.Context, professionalID uuid.UUID) (domainTask.Tasks, error)
}

func (f *FakeTaskService) FindByProfessional(ctx context.Context, professionalID uuid.UUID) (domainTask.Tasks, error) {
	if f.FindByProfessionalFunc == nil {
		return nil, errNotUsed
	}
	return f.FindByProfessionalFunc(ctx, professionalID)
}

func newTestRouter() (*gin.Engine, *jwtSvc.Service) {
	gin.SetMode(gin.TestMode)
	return gin.New(), jwtSvc.New(testSecret)
}

func bearerToken(t *testing.T, j *jwtSvc.Service, id uuid.UUID, email string) string {
	t.Helper()
	token, err := j.GenerateJWT(id.String(), email, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func doReq(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Reader
	switch v := body.(type) {
	case nil:
		buf = bytes.NewReader(nil)
	case string:
		buf = bytes.NewReader([]byte(v))
	default:
		b, err := json.Marshal(v)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, path, buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &m))
	return m
}
