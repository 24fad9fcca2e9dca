package rest

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"assignly-api/internal/domain/entity"
	domainTask "assignly-api/internal/domain/task"
	jwtSvc "assignly-api/internal/infrastructure/jwt"
)

func setupTaskRouter(ts *FakeTaskService) (*gin.Engine, *jwtSvc.Service) {
	r, j := newTestRouter()
	NewTaskController(r, ts, zap.NewNop(), j)
	return r, j
}

func sampleTask() *domainTask.Task {
	professional := uuid.New()
	price := 25.0
	return &domainTask.Task{
		UUID:           uuid.New(),
		TaskTypeID:     uuid.New(),
		ProfessionalID: &professional,
		ScheduleDate:   "2025-04-12",
		ScheduleHour:   "14:30",
		TaskPrice:      &price,
		CreatedBy:      uuid.New(),
		Active:         true,
	}
}

func TestToggleTaskActive_UnknownID(t *testing.T) {
	ts := &FakeTaskService{
		FakeLifecycle: FakeLifecycle[domainTask.Task, domainTask.Patch]{
			ToggleActiveFunc: func(_ context.Context, _ uuid.UUID) (*domainTask.Task, error) {
				return nil, entity.ErrNotFound
			},
		},
	}
	r, _ := setupTaskRouter(ts)

	rr := doReq(t, r, http.MethodPatch,
		RouteTasks+"/"+uuid.NewString()+"/toggle-active", nil, nil)
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Task not found!", decodeBody(t, rr)["message"])
}

func TestGetTasksByProfessional(t *testing.T) {
	task := sampleTask()
	ts := &FakeTaskService{
		FindByProfessionalFunc: func(_ context.Context, professionalID uuid.UUID) (domainTask.Tasks, error) {
			if professionalID == *task.ProfessionalID {
				return domainTask.Tasks{task}, nil
			}
			return nil, nil
		},
	}
	r, _ := setupTaskRouter(ts)

	rr := doReq(t, r, http.MethodGet, RouteTasks+"/"+task.ProfessionalID.String(), nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doReq(t, r, http.MethodGet, RouteTasks+"/"+uuid.NewString(), nil, nil)
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Task not found with this professional!", decodeBody(t, rr)["message"])
}

func TestGetTasksByProfessional_BadID(t *testing.T) {
	r, _ := setupTaskRouter(&FakeTaskService{})

	rr := doReq(t, r, http.MethodGet, RouteTasks+"/not-a-uuid", nil, nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateTask_RequiresToken(t *testing.T) {
	r, _ := setupTaskRouter(&FakeTaskService{})

	rr := doReq(t, r, http.MethodPost, RouteTasks, map[string]any{
		"task_type_id":  uuid.NewString(),
		"schedule_date": "2025-04-12",
		"schedule_hour": "14:30",
		"created_by":    uuid.NewString(),
	}, nil)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestCreateTask_Success(t *testing.T) {
	ts := &FakeTaskService{
		FakeLifecycle: FakeLifecycle[domainTask.Task, domainTask.Patch]{
			CreateFunc: func(_ context.Context, rec *domainTask.Task) (*domainTask.Task, error) {
				rec.UUID = uuid.New()
				rec.Active = true
				return rec, nil
			},
		},
	}
	r, j := setupTaskRouter(ts)

	rr := doReq(t, r, http.MethodPost, RouteTasks, map[string]any{
		"task_type_id":  uuid.NewString(),
		"schedule_date": "2025-04-12",
		"schedule_hour": "14:30",
		"task_price":    25.0,
		"created_by":    uuid.NewString(),
	}, map[string]string{"Authorization": bearerToken(t, j, uuid.New(), "ana@example.com")})
	require.Equal(t, http.StatusCreated, rr.Code)

	body := decodeBody(t, rr)
	assert.Equal(t, "Task created successfully!", body["message"])
	wire := body["task"].(map[string]any)
	assert.Equal(t, "2025-04-12", wire["schedule_date"])
}

func TestCreateTask_ScheduleValidation(t *testing.T) {
	r, j := setupTaskRouter(&FakeTaskService{})
	auth := map[string]string{"Authorization": bearerToken(t, j, uuid.New(), "ana@example.com")}

	cases := []struct {
		name string
		body map[string]any
	}{
		{"bad date", map[string]any{
			"task_type_id": uuid.NewString(), "created_by": uuid.NewString(),
			"schedule_date": "12/04/2025", "schedule_hour": "14:30",
		}},
		{"bad hour", map[string]any{
			"task_type_id": uuid.NewString(), "created_by": uuid.NewString(),
			"schedule_date": "2025-04-12", "schedule_hour": "25:61",
		}},
		{"negative price", map[string]any{
			"task_type_id": uuid.NewString(), "created_by": uuid.NewString(),
			"schedule_date": "2025-04-12", "schedule_hour": "14:30", "task_price": -1.0,
		}},
		{"missing refs", map[string]any{
			"schedule_date": "2025-04-12", "schedule_hour": "14:30",
		}},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			rr := doReq(t, r, http.MethodPost, RouteTasks, tt.body, auth)
			require.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestCreateTask_UnknownReference(t *testing.T) {
	ts := &FakeTaskService{
		FakeLifecycle: FakeLifecycle[domainTask.Task, domainTask.Patch]{
			CreateFunc: func(_ context.Context, _ *domainTask.Task) (*domainTask.Task, error) {
				return nil, entity.ErrInvalidReference
			},
		},
	}
	r, j := setupTaskRouter(ts)

	rr := doReq(t, r, http.MethodPost, RouteTasks, map[string]any{
		"task_type_id":  uuid.NewString(),
		"schedule_date": "2025-04-12",
		"schedule_hour": "14:30",
		"created_by":    uuid.NewString(),
	}, map[string]string{"Authorization": bearerToken(t, j, uuid.New(), "ana@example.com")})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	body := decodeBody(t, rr)
	assert.Equal(t, "invalid request body", body["error"])
	assert.Contains(t, body["details"], "reference existing records")
}

func TestUpdateTask_NotFound(t *testing.T) {
	ts := &FakeTaskService{
		FakeLifecycle: FakeLifecycle[domainTask.Task, domainTask.Patch]{
			UpdateFunc: func(_ context.Context, _ uuid.UUID, _ domainTask.Patch) (*domainTask.Task, error) {
				return nil, entity.ErrNotFound
			},
		},
	}
	r, j := setupTaskRouter(ts)

	rr := doReq(t, r, http.MethodPut, RouteTasks+"/"+uuid.NewString(),
		map[string]any{"schedule_hour": "15:00"},
		map[string]string{"Authorization": bearerToken(t, j, uuid.New(), "ana@example.com")})
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Task not found!", decodeBody(t, rr)["message"])
}

func TestToggleTaskDeleted_Messages(t *testing.T) {
	task := sampleTask()
	ts := &FakeTaskService{
		FakeLifecycle: FakeLifecycle[domainTask.Task, domainTask.Patch]{
			ToggleDeletedFunc: func(_ context.Context, _ uuid.UUID) (*domainTask.Task, error) {
				task.Deleted = !task.Deleted
				return task, nil
			},
		},
	}
	r, _ := setupTaskRouter(ts)

	rr := doReq(t, r, http.MethodPatch, RouteTasks+"/"+task.UUID.String()+"/toggle-deleted", nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Task marked as deleted successfully!", decodeBody(t, rr)["message"])

	rr = doReq(t, r, http.MethodPatch, RouteTasks+"/"+task.UUID.String()+"/toggle-deleted", nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Task restored successfully!", decodeBody(t, rr)["message"])
}
