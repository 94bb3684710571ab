package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/edunexus/edunexus-backend/internal/app/models/dto"
	"github.com/edunexus/edunexus-backend/internal/app/services"
	"github.com/edunexus/edunexus-backend/internal/middleware"
)

// CourseController handles course resource operations
type CourseController struct {
	courseService services.ICourseService
	logger        zerolog.Logger
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.ICourseService, logger zerolog.Logger) *CourseController {
	return &CourseController{
		courseService: courseService,
		logger:        logger,
	}
}

// GetAllCourses lists courses, optionally filtered by one lookup predicate
// @Summary List courses
// @Description Lists all courses, or only those matching one of the adminId/studentId/taId filters
// @Tags courses
// @Produce json
// @Param adminId query string false "Filter by course owner"
// @Param studentId query string false "Filter by enrolled student"
// @Param taId query string false "Filter by teaching assistant"
// @Success 200 {array} models.Course "Courses retrieved"
// @Router /courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	filter := services.CourseFilter{
		AdminID:     ctx.Query("adminId"),
		StudentID:   ctx.Query("studentId"),
		AssistantID: ctx.Query("taId"),
	}

	courses, err := c.courseService.ListCourses(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, courses)
}

// GetCourseByID retrieves a single course with its embedded content
// @Summary Get course details
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} models.Course "Course retrieved"
// @Failure 404 {object} dto.MessageResponse "Course not found"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	course, err := c.courseService.GetCourse(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, course)
}

// CreateCourse creates a course owned by the caller
// @Summary Create a new course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} models.Course "Course created"
// @Failure 400 {object} dto.MessageResponse "Invalid course data"
// @Failure 403 {object} dto.MessageResponse "Caller is not an instructor or admin"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid request body"))
		return
	}

	userID := ctx.GetString(middleware.ContextUserID)

	course, err := c.courseService.CreateCourse(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, course)
}

// UpdateCourse replaces a course's mutable fields
// @Summary Update a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Param request body dto.UpdateCourseRequest true "Course information"
// @Success 200 {object} models.Course "Course updated"
// @Failure 403 {object} dto.MessageResponse "Caller is neither admin nor TA of the course"
// @Failure 404 {object} dto.MessageResponse "Course not found"
// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid request body"))
		return
	}

	userID := ctx.GetString(middleware.ContextUserID)

	course, err := c.courseService.UpdateCourse(ctx.Request.Context(), ctx.Param("id"), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, course)
}

// DeleteCourse removes a course
// @Summary Delete a course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Success 200 {object} dto.MessageResponse "Course deleted"
// @Failure 403 {object} dto.MessageResponse "Caller does not own the course"
// @Failure 404 {object} dto.MessageResponse "Course not found"
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	userID := ctx.GetString(middleware.ContextUserID)

	if err := c.courseService.DeleteCourse(ctx.Request.Context(), ctx.Param("id"), userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Course deleted successfully"))
}

// Enroll adds the caller to the course's enrolled students
// @Summary Enroll in a course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Success 200 {object} dto.MessageResponse "Enrolled"
// @Failure 400 {object} dto.MessageResponse "Already enrolled"
// @Failure 404 {object} dto.MessageResponse "Course not found"
// @Router /courses/{id}/enroll [post]
func (c *CourseController) Enroll(ctx *gin.Context) {
	userID := ctx.GetString(middleware.ContextUserID)

	if err := c.courseService.Enroll(ctx.Request.Context(), ctx.Param("id"), userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Successfully enrolled in course"))
}

// AddAssistant adds a teaching assistant to the course
// @Summary Add a teaching assistant
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Param request body dto.AddAssistantRequest true "Assistant user id"
// @Success 200 {object} dto.MessageResponse "Assistant added"
// @Failure 403 {object} dto.MessageResponse "Caller does not own the course"
// @Router /courses/{id}/assistants [post]
func (c *CourseController) AddAssistant(ctx *gin.Context) {
	var req dto.AddAssistantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid request body"))
		return
	}

	userID := ctx.GetString(middleware.ContextUserID)

	if err := c.courseService.AddTeachingAssistant(ctx.Request.Context(), ctx.Param("id"), userID, req.UserID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Teaching assistant added"))
}

// AddAnnouncement appends an announcement to the course
// @Summary Post an announcement
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Param request body dto.CreateAnnouncementRequest true "Announcement"
// @Success 201 {object} models.Announcement "Announcement created"
// @Failure 404 {object} dto.MessageResponse "Course not found"
// @Router /courses/{id}/announcements [post]
func (c *CourseController) AddAnnouncement(ctx *gin.Context) {
	var req dto.CreateAnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid request body"))
		return
	}

	userID := ctx.GetString(middleware.ContextUserID)

	announcement, err := c.courseService.AddAnnouncement(ctx.Request.Context(), ctx.Param("id"), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, announcement)
}

// AddDiscussion opens a discussion thread on the course
// @Summary Open a discussion
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Param request body dto.CreateDiscussionRequest true "Discussion"
// @Success 201 {object} models.Discussion "Discussion created"
// @Failure 404 {object} dto.MessageResponse "Course not found"
// @Router /courses/{id}/discussions [post]
func (c *CourseController) AddDiscussion(ctx *gin.Context) {
	var req dto.CreateDiscussionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid request body"))
		return
	}

	userID := ctx.GetString(middleware.ContextUserID)

	discussion, err := c.courseService.AddDiscussion(ctx.Request.Context(), ctx.Param("id"), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, discussion)
}

// AddReply appends a reply to a discussion thread
// @Summary Reply to a discussion
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Param discussionId path string true "Discussion ID"
// @Param request body dto.CreateReplyRequest true "Reply"
// @Success 201 {object} models.DiscussionReply "Reply created"
// @Failure 404 {object} dto.MessageResponse "Course or discussion not found"
// @Router /courses/{id}/discussions/{discussionId}/replies [post]
func (c *CourseController) AddReply(ctx *gin.Context) {
	var req dto.CreateReplyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid request body"))
		return
	}

	userID := ctx.GetString(middleware.ContextUserID)

	reply, err := c.courseService.AddReply(ctx.Request.Context(), ctx.Param("id"), ctx.Param("discussionId"), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, reply)
}
