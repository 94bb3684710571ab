package dto

import "time"

// ContentRequest is a single content item within a module payload
type ContentRequest struct {
	Title    string `json:"title" binding:"required"`
	Type     string `json:"type" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Required *bool  `json:"required"` // defaults to true when omitted
}

// ModuleRequest is a course module payload
type ModuleRequest struct {
	Title       string           `json:"title" binding:"required"`
	Description string           `json:"description"`
	Contents    []ContentRequest `json:"contents" binding:"dive"`
	DueDate     *time.Time       `json:"dueDate"`
}

// CreateCourseRequest creates a course owned by the caller
type CreateCourseRequest struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	Modules     []ModuleRequest `json:"modules" binding:"dive"`
}

// UpdateCourseRequest replaces the course's mutable fields
type UpdateCourseRequest struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	Modules     []ModuleRequest `json:"modules" binding:"dive"`
}

// CreateAnnouncementRequest appends an announcement to a course
type CreateAnnouncementRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// CreateDiscussionRequest opens a discussion thread on a course
type CreateDiscussionRequest struct {
	Title       string `json:"title" binding:"required"`
	Content     string `json:"content" binding:"required"`
	IsAnonymous bool   `json:"isAnonymous"`
}

// CreateReplyRequest appends a reply to a discussion thread
type CreateReplyRequest struct {
	Content     string `json:"content" binding:"required"`
	IsAnonymous bool   `json:"isAnonymous"`
}

// AddAssistantRequest adds a teaching assistant to a course
type AddAssistantRequest struct {
	UserID string `json:"userId" binding:"required"`
}
