package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"assignly-api/internal/application/ports"
	"assignly-api/internal/domain/entity"
	"assignly-api/internal/infrastructure/jwt"
	"assignly-api/internal/interface/api/rest/dto/task"
	"assignly-api/internal/interface/api/rest/middleware"
	"assignly-api/internal/interface/api/rest/validator"
)

const (
	msgTaskNotFound             = "Task not found!"
	msgTaskNotFoundProfessional = "Task not found with this professional!"
	msgTaskBadReference         = "task_type_id, professional_id and created_by must reference existing records"
)

type TaskController struct {
	taskService ports.TaskService
	logger      *zap.Logger
}

func NewTaskController(
	r *gin.Engine,
	taskService ports.TaskService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *TaskController {
	tc := &TaskController{
		taskService: taskService,
		logger:      logger,
	}

	guard := middleware.AuthMiddleware(jwtService)

	r.GET(RouteTasks, tc.GetTasksHandler)
	r.GET(RouteTask, tc.GetTasksByProfessionalHandler)
	r.POST(RouteTasks, guard, tc.CreateTaskHandler)
	r.PUT(RouteTask, guard, tc.UpdateTaskHandler)
	r.DELETE(RouteTask, guard, tc.DeleteTaskHandler)
	r.PATCH(RouteTaskActive, tc.ToggleActiveHandler)
	r.PATCH(RouteTaskDeleted, tc.ToggleDeletedHandler)

	return tc
}

func (tc *TaskController) GetTasksHandler(c *gin.Context) {
	tasks, err := tc.taskService.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get tasks"},
		)
		tc.logger.Error("ListAll() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, task.ToResponseTasks(tasks))
}

// GetTasksByProfessionalHandler lists every task assigned to the
// professional, soft-deleted ones included.
func (tc *TaskController) GetTasksByProfessionalHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "id must be a valid UUID"},
		)
		return
	}

	tasks, err := tc.taskService.FindByProfessional(c.Request.Context(), id)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get tasks"},
		)
		tc.logger.Error("FindByProfessional() error", zap.Error(err))
		return
	}
	if len(tasks) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": msgTaskNotFoundProfessional})
		return
	}

	c.JSON(http.StatusOK, task.ToResponseTasks(tasks))
}

func (tc *TaskController) CreateTaskHandler(c *gin.Context) {
	var req task.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateTask(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	tDomain, err := task.ToDomainTask(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	t, err := tc.taskService.Create(c.Request.Context(), &tDomain)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidReference) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid request body",
				"details": msgTaskBadReference,
			})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to create a task"},
		)
		tc.logger.Error("Create() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Task created successfully!",
		"task":    task.ToResponseTask(*t),
	})
}

func (tc *TaskController) UpdateTaskHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "id must be a valid UUID"},
		)
		return
	}

	var req task.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateTaskUpdate(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	patch, err := task.ToPatch(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	t, err := tc.taskService.Update(c.Request.Context(), id, patch)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": msgTaskNotFound})
			return
		}
		if errors.Is(err, entity.ErrInvalidReference) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid request body",
				"details": msgTaskBadReference,
			})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to update a task"},
		)
		tc.logger.Error("Update() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task updated successfully!",
		"task":    task.ToResponseTask(*t),
	})
}

func (tc *TaskController) DeleteTaskHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "id must be a valid UUID"},
		)
		return
	}

	if err := tc.taskService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": msgTaskNotFound})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to delete a task"},
		)
		tc.logger.Error("Delete() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully!"})
}

func (tc *TaskController) ToggleActiveHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "id must be a valid UUID"},
		)
		return
	}

	t, err := tc.taskService.ToggleActive(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": msgTaskNotFound})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to update active status"},
		)
		tc.logger.Error("ToggleActive() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": toggleActiveMsg("Task", t.Active),
		"task":    task.ToResponseTask(*t),
	})
}

func (tc *TaskController) ToggleDeletedHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "id must be a valid UUID"},
		)
		return
	}

	t, err := tc.taskService.ToggleDeleted(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": msgTaskNotFound})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to update deleted status"},
		)
		tc.logger.Error("ToggleDeleted() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": toggleDeletedMsg("Task", t.Deleted),
		"task":    task.ToResponseTask(*t),
	})
}
