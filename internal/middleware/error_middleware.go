package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edunexus/edunexus-backend/internal/app/models/dto"
	"github.com/edunexus/edunexus-backend/internal/pkg/apperrors"
)

// HandleAPIError maps service errors onto HTTP status codes and the
// {message} body every failure response carries. Anything outside the
// taxonomy becomes a 500 with a generic message; internals never leak.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(http.StatusBadRequest, dto.NewMessageResponse("Email already exists"))
	case errors.Is(err, apperrors.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid role. Must be one of: student, instructor, admin"))
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.NewMessageResponse(err.Error()))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid credentials"))
	case errors.Is(err, apperrors.ErrAlreadyEnrolled):
		c.JSON(http.StatusBadRequest, dto.NewMessageResponse("Already enrolled in this course"))
	case errors.Is(err, apperrors.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, dto.NewMessageResponse("Course not found"))
	case errors.Is(err, apperrors.ErrDiscussionNotFound):
		c.JSON(http.StatusNotFound, dto.NewMessageResponse("Discussion not found"))
	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.NewMessageResponse("User not found"))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewMessageResponse("Resource not found"))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewMessageResponse("Not authorized"))
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.NewMessageResponse("Token expired"))
	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, dto.NewMessageResponse("Invalid token"))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewMessageResponse("Server error"))
	}
}
