package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/edunexus/edunexus-backend/internal/app/models/dto"
	"github.com/edunexus/edunexus-backend/internal/app/repositories"
	"github.com/edunexus/edunexus-backend/internal/middleware"
)

// UserController handles user profile operations
type UserController struct {
	userRepo repositories.IUserRepository
	logger   zerolog.Logger
}

// NewUserController creates a new UserController
func NewUserController(userRepo repositories.IUserRepository, logger zerolog.Logger) *UserController {
	return &UserController{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetProfile returns the authenticated user's projection
// @Summary Get current user profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse "Profile retrieved"
// @Failure 401 {object} dto.MessageResponse "Missing or invalid token"
// @Failure 404 {object} dto.MessageResponse "User not found"
// @Router /users/profile [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	userID := ctx.GetString(middleware.ContextUserID)

	user, err := c.userRepo.GetByID(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUserResponse(user))
}
