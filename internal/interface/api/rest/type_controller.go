package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"assignly-api/internal/application/ports"
	"assignly-api/internal/domain/entity"
	"assignly-api/internal/infrastructure/jwt"
	"assignly-api/internal/interface/api/rest/dto/reftype"
	"assignly-api/internal/interface/api/rest/middleware"
	"assignly-api/internal/interface/api/rest/validator"
)

// TypeRoutes binds one reference-type catalog to its URL tree.
type TypeRoutes struct {
	Collection string
	ByName     string
	ByID       string
	Active     string
	Deleted    string
}

var (
	UserTypeRoutes = TypeRoutes{
		Collection: RouteUserTypes,
		ByName:     RouteUserTypesByName,
		ByID:       RouteUserType,
		Active:     RouteUserTypeActive,
		Deleted:    RouteUserTypeDeleted,
	}
	TaskTypeRoutes = TypeRoutes{
		Collection: RouteTaskTypes,
		ByName:     RouteTaskTypesByName,
		ByID:       RouteTaskType,
		Active:     RouteTaskTypeActive,
		Deleted:    RouteTaskTypeDeleted,
	}
)

// TypeController serves one reference-type catalog; the same controller
// is mounted twice, once for user-types and once for task-types.
type TypeController struct {
	typeService ports.TypeService
	logger      *zap.Logger

	kind    string // "User-type" / "Task-type", used in response messages
	jsonKey string // "userType" / "taskType", entity key in response bodies
}

func NewTypeController(
	r *gin.Engine,
	typeService ports.TypeService,
	logger *zap.Logger,
	jwtService *jwt.Service,
	routes TypeRoutes,
	kind, jsonKey string,
) *TypeController {
	tc := &TypeController{
		typeService: typeService,
		logger:      logger,
		kind:        kind,
		jsonKey:     jsonKey,
	}

	guard := middleware.AuthMiddleware(jwtService)

	r.GET(routes.Collection, tc.GetTypesHandler)
	r.GET(routes.ByName, tc.GetTypesByNameHandler)
	r.POST(routes.Collection, guard, tc.CreateTypeHandler)
	r.PUT(routes.ByID, guard, tc.UpdateTypeHandler)
	r.DELETE(routes.ByID, guard, tc.DeleteTypeHandler)
	r.PATCH(routes.Active, tc.ToggleActiveHandler)
	r.PATCH(routes.Deleted, tc.ToggleDeletedHandler)

	return tc
}

func (tc *TypeController) notFoundMsg() string { return tc.kind + " not found!" }

func (tc *TypeController) dupCreateMsg() string {
	return "The " + tc.jsonKeyDashed() + " has already been registered previously!"
}

func (tc *TypeController) dupUpdateMsg() string {
	return "The " + tc.jsonKeyDashed() + "'s name is already registered!"
}

// jsonKeyDashed renders the kind the way the messages spell it
// ("user-type" / "task-type").
func (tc *TypeController) jsonKeyDashed() string {
	if tc.jsonKey == "userType" {
		return "user-type"
	}
	return "task-type"
}

func (tc *TypeController) GetTypesHandler(c *gin.Context) {
	types, err := tc.typeService.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get " + tc.jsonKeyDashed() + "s"},
		)
		tc.logger.Error("ListAll() error", zap.String("kind", tc.jsonKey), zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, reftype.ToResponseTypes(types))
}

func (tc *TypeController) GetTypesByNameHandler(c *gin.Context) {
	types, err := tc.typeService.FindByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": tc.kind + "s not found!"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get " + tc.jsonKeyDashed() + "s"},
		)
		tc.logger.Error("FindByName() error", zap.String("kind", tc.jsonKey), zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, reftype.ToResponseTypes(types))
}

func (tc *TypeController) CreateTypeHandler(c *gin.Context) {
	var req reftype.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateType(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	tDomain := reftype.ToDomainType(req)

	t, err := tc.typeService.Create(c.Request.Context(), &tDomain)
	if err != nil {
		if errors.Is(err, entity.ErrDuplicateName) {
			c.JSON(http.StatusBadRequest, gin.H{"message": tc.dupCreateMsg()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to create a " + tc.jsonKeyDashed()},
		)
		tc.logger.Error("Create() error", zap.String("kind", tc.jsonKey), zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  tc.kind + " created successfully!",
		tc.jsonKey: reftype.ToResponseType(*t),
	})
}

func (tc *TypeController) UpdateTypeHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "id must be a valid UUID"},
		)
		return
	}

	var req reftype.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateTypeUpdate(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	t, err := tc.typeService.Update(c.Request.Context(), id, reftype.ToPatch(req))
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": tc.notFoundMsg()})
		case errors.Is(err, entity.ErrDuplicateName):
			c.JSON(http.StatusBadRequest, gin.H{"message": tc.dupUpdateMsg()})
		default:
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to update a " + tc.jsonKeyDashed()},
			)
			tc.logger.Error("Update() error", zap.String("kind", tc.jsonKey), zap.Error(err))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  tc.kind + " updated successfully!",
		tc.jsonKey: reftype.ToResponseType(*t),
	})
}

func (tc *TypeController) DeleteTypeHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "id must be a valid UUID"},
		)
		return
	}

	if err := tc.typeService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": tc.notFoundMsg()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to delete a " + tc.jsonKeyDashed()},
		)
		tc.logger.Error("Delete() error", zap.String("kind", tc.jsonKey), zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": tc.kind + " deleted successfully!"})
}

func (tc *TypeController) ToggleActiveHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "id must be a valid UUID"},
		)
		return
	}

	t, err := tc.typeService.ToggleActive(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": tc.notFoundMsg()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to update active status"},
		)
		tc.logger.Error("ToggleActive() error", zap.String("kind", tc.jsonKey), zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  toggleActiveMsg(tc.kind, t.Active),
		tc.jsonKey: reftype.ToResponseType(*t),
	})
}

func (tc *TypeController) ToggleDeletedHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "id must be a valid UUID"},
		)
		return
	}

	t, err := tc.typeService.ToggleDeleted(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": tc.notFoundMsg()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to update deleted status"},
		)
		tc.logger.Error("ToggleDeleted() error", zap.String("kind", tc.jsonKey), zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  toggleDeletedMsg(tc.kind, t.Deleted),
		tc.jsonKey: reftype.ToResponseType(*t),
	})
}
