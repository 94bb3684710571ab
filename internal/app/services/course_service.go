package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/edunexus/edunexus-backend/internal/app/models"
	"github.com/edunexus/edunexus-backend/internal/app/models/dto"
	"github.com/edunexus/edunexus-backend/internal/app/repositories"
	"github.com/edunexus/edunexus-backend/internal/pkg/apperrors"
)

// CourseFilter narrows a course listing to one lookup predicate.
// At most one field is honored, in declaration order.
type CourseFilter struct {
	AdminID     string
	StudentID   string
	AssistantID string
}

// ICourseService handles course resource operations
type ICourseService interface {
	ListCourses(ctx context.Context, filter CourseFilter) ([]*models.Course, error)
	GetCourse(ctx context.Context, id string) (*models.Course, error)
	CreateCourse(ctx context.Context, adminID string, req *dto.CreateCourseRequest) (*models.Course, error)
	UpdateCourse(ctx context.Context, id, userID string, req *dto.UpdateCourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, id, userID string) error
	Enroll(ctx context.Context, courseID, userID string) error
	AddTeachingAssistant(ctx context.Context, courseID, callerID, taID string) error
	AddAnnouncement(ctx context.Context, courseID, authorID string, req *dto.CreateAnnouncementRequest) (*models.Announcement, error)
	AddDiscussion(ctx context.Context, courseID, authorID string, req *dto.CreateDiscussionRequest) (*models.Discussion, error)
	AddReply(ctx context.Context, courseID, discussionID, authorID string, req *dto.CreateReplyRequest) (*models.DiscussionReply, error)
}

// CourseService sits directly on the course store. Updates to nested
// lists read the document, mutate it in memory and write the whole
// thing back; concurrent editors are last-writer-wins.
type CourseService struct {
	courseRepo repositories.ICourseRepository
	logger     zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(courseRepo repositories.ICourseRepository, logger zerolog.Logger) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
		logger:     logger,
	}
}

// ListCourses returns courses matching the filter, or all courses
func (s *CourseService) ListCourses(ctx context.Context, filter CourseFilter) ([]*models.Course, error) {
	switch {
	case filter.AdminID != "":
		return s.courseRepo.FindByAdminID(ctx, filter.AdminID)
	case filter.StudentID != "":
		return s.courseRepo.FindByEnrolledStudent(ctx, filter.StudentID)
	case filter.AssistantID != "":
		return s.courseRepo.FindByTeachingAssistant(ctx, filter.AssistantID)
	default:
		return s.courseRepo.GetAll(ctx)
	}
}

// GetCourse retrieves a single course
func (s *CourseService) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// buildModules converts module payloads into embedded documents,
// assigning ids and defaulting the required flag to true.
func buildModules(reqs []dto.ModuleRequest) ([]models.CourseModule, error) {
	modules := make([]models.CourseModule, 0, len(reqs))
	for _, m := range reqs {
		contents := make([]models.ModuleContent, 0, len(m.Contents))
		for _, c := range m.Contents {
			if !models.IsValidContentType(c.Type) {
				return nil, apperrors.NewValidationError(fmt.Sprintf("Invalid content type: %s", c.Type))
			}
			required := true
			if c.Required != nil {
				required = *c.Required
			}
			contents = append(contents, models.ModuleContent{
				ID:       uuid.New().String(),
				Title:    c.Title,
				Type:     models.ContentType(c.Type),
				Content:  c.Content,
				Required: required,
			})
		}
		modules = append(modules, models.CourseModule{
			ID:          uuid.New().String(),
			Title:       m.Title,
			Description: m.Description,
			Contents:    contents,
			DueDate:     m.DueDate,
		})
	}
	return modules, nil
}

// CreateCourse creates a course owned by the caller
func (s *CourseService) CreateCourse(ctx context.Context, adminID string, req *dto.CreateCourseRequest) (*models.Course, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.NewValidationError("Title is required")
	}

	modules, err := buildModules(req.Modules)
	if err != nil {
		return nil, err
	}

	course := &models.Course{
		Title:              req.Title,
		Description:        req.Description,
		AdminID:            adminID,
		EnrolledStudents:   []string{},
		TeachingAssistants: []string{},
		Modules:            modules,
		Announcements:      []models.Announcement{},
		Discussions:        []models.Discussion{},
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	s.logger.Info().Str("courseId", course.ID.Hex()).Str("adminId", adminID).Msg("Course created")
	return course, nil
}

// UpdateCourse replaces title, description and modules. Only the course
// admin or a teaching assistant may update.
func (s *CourseService) UpdateCourse(ctx context.Context, id, userID string, req *dto.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !course.IsAdmin(userID) && !course.IsTeachingAssistant(userID) {
		return nil, apperrors.NewForbiddenError("Not authorized")
	}

	modules, err := buildModules(req.Modules)
	if err != nil {
		return nil, err
	}

	course.Title = req.Title
	course.Description = req.Description
	course.Modules = modules

	if err := s.courseRepo.Replace(ctx, course); err != nil {
		return nil, fmt.Errorf("error updating course: %w", err)
	}

	return course, nil
}

// DeleteCourse removes a course. Only the course admin may delete.
func (s *CourseService) DeleteCourse(ctx context.Context, id, userID string) error {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !course.IsAdmin(userID) {
		return apperrors.NewForbiddenError("Not authorized")
	}

	if err := s.courseRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	s.logger.Info().Str("courseId", id).Str("userId", userID).Msg("Course deleted")
	return nil
}

// Enroll adds the caller to the course's enrolled-student set
func (s *CourseService) Enroll(ctx context.Context, courseID, userID string) error {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return err
	}

	if course.IsEnrolled(userID) {
		return apperrors.ErrAlreadyEnrolled
	}

	course.EnrolledStudents = append(course.EnrolledStudents, userID)

	if err := s.courseRepo.Replace(ctx, course); err != nil {
		return fmt.Errorf("error enrolling in course: %w", err)
	}

	s.logger.Info().Str("courseId", courseID).Str("userId", userID).Msg("Student enrolled")
	return nil
}

// AddTeachingAssistant adds a user to the course's TA set. Only the
// course admin may manage assistants; the add is idempotent.
func (s *CourseService) AddTeachingAssistant(ctx context.Context, courseID, callerID, taID string) error {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return err
	}

	if !course.IsAdmin(callerID) {
		return apperrors.NewForbiddenError("Not authorized")
	}

	if course.IsTeachingAssistant(taID) {
		return nil
	}

	course.TeachingAssistants = append(course.TeachingAssistants, taID)

	if err := s.courseRepo.Replace(ctx, course); err != nil {
		return fmt.Errorf("error adding teaching assistant: %w", err)
	}

	return nil
}

// AddAnnouncement appends an announcement to the course
func (s *CourseService) AddAnnouncement(ctx context.Context, courseID, authorID string, req *dto.CreateAnnouncementRequest) (*models.Announcement, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	announcement := models.Announcement{
		ID:        uuid.New().String(),
		Title:     req.Title,
		Content:   req.Content,
		AuthorID:  authorID,
		CreatedAt: time.Now().UTC(),
	}
	course.Announcements = append(course.Announcements, announcement)

	if err := s.courseRepo.Replace(ctx, course); err != nil {
		return nil, fmt.Errorf("error adding announcement: %w", err)
	}

	return &announcement, nil
}

// AddDiscussion opens a discussion thread on the course
func (s *CourseService) AddDiscussion(ctx context.Context, courseID, authorID string, req *dto.CreateDiscussionRequest) (*models.Discussion, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	discussion := models.Discussion{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Content:     req.Content,
		AuthorID:    authorID,
		IsAnonymous: req.IsAnonymous,
		Replies:     []models.DiscussionReply{},
		CreatedAt:   time.Now().UTC(),
	}
	course.Discussions = append(course.Discussions, discussion)

	if err := s.courseRepo.Replace(ctx, course); err != nil {
		return nil, fmt.Errorf("error adding discussion: %w", err)
	}

	return &discussion, nil
}

// AddReply appends a reply to a discussion thread
func (s *CourseService) AddReply(ctx context.Context, courseID, discussionID, authorID string, req *dto.CreateReplyRequest) (*models.DiscussionReply, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	reply := models.DiscussionReply{
		ID:          uuid.New().String(),
		Content:     req.Content,
		AuthorID:    authorID,
		IsAnonymous: req.IsAnonymous,
		CreatedAt:   time.Now().UTC(),
	}

	found := false
	for i := range course.Discussions {
		if course.Discussions[i].ID == discussionID {
			course.Discussions[i].Replies = append(course.Discussions[i].Replies, reply)
			found = true
			break
		}
	}
	if !found {
		return nil, apperrors.ErrDiscussionNotFound
	}

	if err := s.courseRepo.Replace(ctx, course); err != nil {
		return nil, fmt.Errorf("error adding reply: %w", err)
	}

	return &reply, nil
}
