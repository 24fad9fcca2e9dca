package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"assignly-api/internal/application/ports"
	"assignly-api/internal/domain/entity"
	"assignly-api/internal/infrastructure/jwt"
	"assignly-api/internal/interface/api/rest/dto/user"
	"assignly-api/internal/interface/api/rest/middleware"
	"assignly-api/internal/interface/api/rest/validator"
)

const (
	msgUserNotFound    = "User not found!"
	msgUsersNotFound   = "Users not found!"
	msgEmailRegistered = "Email already registered!"
)

type UserController struct {
	userService ports.UserService
	authService ports.Auth
	logger      *zap.Logger
}

func NewUserController(
	r *gin.Engine,
	userService ports.UserService,
	authService ports.Auth,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *UserController {
	uc := &UserController{
		userService: userService,
		authService: authService,
		logger:      logger,
	}

	guard := middleware.AuthMiddleware(jwtService)

	r.GET(RouteUsers, uc.GetUsersHandler)
	r.GET(RouteMe, guard, uc.GetMeHandler)
	r.GET(RouteUsersByName, uc.GetUsersByNameHandler)
	// registration stays open, everything below the login gate
	r.POST(RouteUsers, uc.CreateUserHandler)
	r.PUT(RouteUser, guard, uc.UpdateUserHandler)
	r.DELETE(RouteUser, guard, uc.DeleteUserHandler)
	r.PATCH(RouteUserActive, uc.ToggleActiveHandler)
	r.PATCH(RouteUserDeleted, uc.ToggleDeletedHandler)

	return uc
}

func (uc *UserController) GetUsersHandler(c *gin.Context) {
	users, err := uc.userService.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get users"},
		)
		uc.logger.Error("ListAll() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUsers(users))
}

func (uc *UserController) GetMeHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.GetString(middleware.CtxUserID))
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			gin.H{"error": "invalid token"},
		)
		return
	}

	u, err := uc.userService.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": msgUserNotFound})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a user"},
		)
		uc.logger.Error("FindByID() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) GetUsersByNameHandler(c *gin.Context) {
	users, err := uc.userService.FindByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": msgUsersNotFound})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get users"},
		)
		uc.logger.Error("FindByName() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUsers(users))
}

func (uc *UserController) CreateUserHandler(c *gin.Context) {
	var req user.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateUser(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	uDomain, err := user.ToDomainUser(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	hash, err := uc.authService.HashPassword(req.Password)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to create a user"},
		)
		uc.logger.Error("HashPassword() error", zap.Error(err))
		return
	}
	uDomain.PasswordHash = &hash

	u, err := uc.userService.Create(c.Request.Context(), &uDomain)
	if err != nil {
		if errors.Is(err, entity.ErrDuplicateEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"message": msgEmailRegistered})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to create a user"},
		)
		uc.logger.Error("Create() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully!",
		"user":    user.ToResponseUser(*u),
	})
}

func (uc *UserController) UpdateUserHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "id must be a valid UUID"},
		)
		return
	}

	var req user.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateUserUpdate(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	patch, err := user.ToPatch(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	if req.Password != nil {
		hash, err := uc.authService.HashPassword(*req.Password)
		if err != nil {
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to update a user"},
			)
			uc.logger.Error("HashPassword() error", zap.Error(err))
			return
		}
		patch.PasswordHash = &hash
	}

	u, err := uc.userService.Update(c.Request.Context(), id, patch)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": msgUserNotFound})
		case errors.Is(err, entity.ErrDuplicateEmail):
			c.JSON(http.StatusBadRequest, gin.H{"message": msgEmailRegistered})
		default:
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to update a user"},
			)
			uc.logger.Error("Update() error", zap.Error(err))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User updated successfully!",
		"user":    user.ToResponseUser(*u),
	})
}

func (uc *UserController) DeleteUserHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "id must be a valid UUID"},
		)
		return
	}

	if err := uc.userService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": msgUserNotFound})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to delete a user"},
		)
		uc.logger.Error("Delete() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully!"})
}

func (uc *UserController) ToggleActiveHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "id must be a valid UUID"},
		)
		return
	}

	u, err := uc.userService.ToggleActive(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": msgUserNotFound})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to update active status"},
		)
		uc.logger.Error("ToggleActive() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": toggleActiveMsg("User", u.Active),
		"user":    user.ToResponseUser(*u),
	})
}

func (uc *UserController) ToggleDeletedHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "id must be a valid UUID"},
		)
		return
	}

	u, err := uc.userService.ToggleDeleted(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": msgUserNotFound})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to update deleted status"},
		)
		uc.logger.Error("ToggleDeleted() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": toggleDeletedMsg("User", u.Deleted),
		"user":    user.ToResponseUser(*u),
	})
}
