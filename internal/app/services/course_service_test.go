package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/edunexus/edunexus-backend/internal/app/models"
	"github.com/edunexus/edunexus-backend/internal/app/models/dto"
	"github.com/edunexus/edunexus-backend/internal/pkg/apperrors"
)

// fakeCourseRepo is an in-memory ICourseRepository keyed by hex id
type fakeCourseRepo struct {
	courses map[string]*models.Course
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: make(map[string]*models.Course)}
}

func (f *fakeCourseRepo) Create(_ context.Context, course *models.Course) error {
	course.ID = primitive.NewObjectID()
	course.CreatedAt = time.Now().UTC()
	course.UpdatedAt = course.CreatedAt
	f.courses[course.ID.Hex()] = course
	return nil
}

func (f *fakeCourseRepo) GetByID(_ context.Context, id string) (*models.Course, error) {
	if c, ok := f.courses[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, apperrors.ErrCourseNotFound
}

func (f *fakeCourseRepo) GetAll(_ context.Context) ([]*models.Course, error) {
	out := make([]*models.Course, 0, len(f.courses))
	for _, c := range f.courses {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCourseRepo) Replace(_ context.Context, course *models.Course) error {
	if _, ok := f.courses[course.ID.Hex()]; !ok {
		return apperrors.ErrCourseNotFound
	}
	course.UpdatedAt = time.Now().UTC()
	f.courses[course.ID.Hex()] = course
	return nil
}

func (f *fakeCourseRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(f.courses, id)
	return nil
}

func (f *fakeCourseRepo) FindByAdminID(_ context.Context, adminID string) ([]*models.Course, error) {
	out := make([]*models.Course, 0)
	for _, c := range f.courses {
		if c.AdminID == adminID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCourseRepo) FindByEnrolledStudent(_ context.Context, studentID string) ([]*models.Course, error) {
	out := make([]*models.Course, 0)
	for _, c := range f.courses {
		if c.IsEnrolled(studentID) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCourseRepo) FindByTeachingAssistant(_ context.Context, taID string) ([]*models.Course, error) {
	out := make([]*models.Course, 0)
	for _, c := range f.courses {
		if c.IsTeachingAssistant(taID) {
			out = append(out, c)
		}
	}
	return out, nil
}

func newTestCourseService() (*CourseService, *fakeCourseRepo) {
	repo := newFakeCourseRepo()
	return NewCourseService(repo, zerolog.Nop()), repo
}

func TestCreateCourse(t *testing.T) {
	svc, _ := newTestCourseService()

	required := false
	course, err := svc.CreateCourse(context.Background(), "admin-1", &dto.CreateCourseRequest{
		Title:       "Distributed Systems",
		Description: "Consensus and friends",
		Modules: []dto.ModuleRequest{
			{
				Title: "Week 1",
				Contents: []dto.ContentRequest{
					{Title: "Intro video", Type: "VIDEO", Content: "https://example.com/v1"},
					{Title: "Optional reading", Type: "REFERENCE_BOOK", Content: "Ch. 1", Required: &required},
				},
			},
		},
	})
	require.NoError(t, err)

	assert.False(t, course.ID.IsZero())
	assert.Equal(t, "admin-1", course.AdminID)
	assert.Empty(t, course.EnrolledStudents)
	assert.Empty(t, course.TeachingAssistants)
	require.Len(t, course.Modules, 1)
	require.Len(t, course.Modules[0].Contents, 2)
	assert.NotEmpty(t, course.Modules[0].ID)
	assert.NotEmpty(t, course.Modules[0].Contents[0].ID)
	// Required defaults to true when omitted
	assert.True(t, course.Modules[0].Contents[0].Required)
	assert.False(t, course.Modules[0].Contents[1].Required)
}

func TestCreateCourse_InvalidContentType(t *testing.T) {
	svc, _ := newTestCourseService()

	_, err := svc.CreateCourse(context.Background(), "admin-1", &dto.CreateCourseRequest{
		Title: "Bad content",
		Modules: []dto.ModuleRequest{
			{Title: "M", Contents: []dto.ContentRequest{{Title: "X", Type: "PODCAST", Content: "u"}}},
		},
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCreateCourse_BlankTitle(t *testing.T) {
	svc, _ := newTestCourseService()

	_, err := svc.CreateCourse(context.Background(), "admin-1", &dto.CreateCourseRequest{Title: "  "})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestUpdateCourse_Authorization(t *testing.T) {
	svc, repo := newTestCourseService()

	course, err := svc.CreateCourse(context.Background(), "admin-1", &dto.CreateCourseRequest{Title: "T"})
	require.NoError(t, err)
	id := course.ID.Hex()

	repo.courses[id].TeachingAssistants = []string{"ta-1"}

	req := &dto.UpdateCourseRequest{Title: "T2", Description: "D2"}

	// Admin can update
	updated, err := svc.UpdateCourse(context.Background(), id, "admin-1", req)
	require.NoError(t, err)
	assert.Equal(t, "T2", updated.Title)

	// TA can update
	_, err = svc.UpdateCourse(context.Background(), id, "ta-1", req)
	require.NoError(t, err)

	// Anyone else cannot
	_, err = svc.UpdateCourse(context.Background(), id, "student-1", req)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestDeleteCourse(t *testing.T) {
	svc, _ := newTestCourseService()

	course, err := svc.CreateCourse(context.Background(), "admin-1", &dto.CreateCourseRequest{Title: "T"})
	require.NoError(t, err)
	id := course.ID.Hex()

	err = svc.DeleteCourse(context.Background(), id, "someone-else")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	err = svc.DeleteCourse(context.Background(), id, "admin-1")
	require.NoError(t, err)

	_, err = svc.GetCourse(context.Background(), id)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestEnroll(t *testing.T) {
	svc, repo := newTestCourseService()

	course, err := svc.CreateCourse(context.Background(), "admin-1", &dto.CreateCourseRequest{Title: "T"})
	require.NoError(t, err)
	id := course.ID.Hex()

	require.NoError(t, svc.Enroll(context.Background(), id, "student-1"))

	// Second enrollment is rejected and the set stays a set
	err = svc.Enroll(context.Background(), id, "student-1")
	assert.ErrorIs(t, err, apperrors.ErrAlreadyEnrolled)
	assert.Equal(t, []string{"student-1"}, repo.courses[id].EnrolledStudents)
}

func TestEnroll_CourseNotFound(t *testing.T) {
	svc, _ := newTestCourseService()

	err := svc.Enroll(context.Background(), primitive.NewObjectID().Hex(), "student-1")
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestAddTeachingAssistant(t *testing.T) {
	svc, repo := newTestCourseService()

	course, err := svc.CreateCourse(context.Background(), "admin-1", &dto.CreateCourseRequest{Title: "T"})
	require.NoError(t, err)
	id := course.ID.Hex()

	err = svc.AddTeachingAssistant(context.Background(), id, "not-admin", "ta-1")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	require.NoError(t, svc.AddTeachingAssistant(context.Background(), id, "admin-1", "ta-1"))
	// Idempotent on the set
	require.NoError(t, svc.AddTeachingAssistant(context.Background(), id, "admin-1", "ta-1"))
	assert.Equal(t, []string{"ta-1"}, repo.courses[id].TeachingAssistants)
}

func TestAddAnnouncement(t *testing.T) {
	svc, repo := newTestCourseService()

	course, err := svc.CreateCourse(context.Background(), "admin-1", &dto.CreateCourseRequest{Title: "T"})
	require.NoError(t, err)
	id := course.ID.Hex()

	announcement, err := svc.AddAnnouncement(context.Background(), id, "admin-1", &dto.CreateAnnouncementRequest{
		Title:   "Welcome",
		Content: "First lecture on Monday",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, announcement.ID)
	assert.Equal(t, "admin-1", announcement.AuthorID)
	assert.False(t, announcement.CreatedAt.IsZero())
	require.Len(t, repo.courses[id].Announcements, 1)
}

func TestAddDiscussionAndReply(t *testing.T) {
	svc, repo := newTestCourseService()

	course, err := svc.CreateCourse(context.Background(), "admin-1", &dto.CreateCourseRequest{Title: "T"})
	require.NoError(t, err)
	id := course.ID.Hex()

	discussion, err := svc.AddDiscussion(context.Background(), id, "student-1", &dto.CreateDiscussionRequest{
		Title:       "Homework question",
		Content:     "How does the quorum math work?",
		IsAnonymous: true,
	})
	require.NoError(t, err)
	assert.True(t, discussion.IsAnonymous)

	reply, err := svc.AddReply(context.Background(), id, discussion.ID, "student-2", &dto.CreateReplyRequest{
		Content: "Majorities intersect",
	})
	require.NoError(t, err)
	assert.Equal(t, "student-2", reply.AuthorID)

	stored := repo.courses[id]
	require.Len(t, stored.Discussions, 1)
	require.Len(t, stored.Discussions[0].Replies, 1)
}

func TestAddReply_DiscussionNotFound(t *testing.T) {
	svc, _ := newTestCourseService()

	course, err := svc.CreateCourse(context.Background(), "admin-1", &dto.CreateCourseRequest{Title: "T"})
	require.NoError(t, err)

	_, err = svc.AddReply(context.Background(), course.ID.Hex(), "missing-discussion", "student-1", &dto.CreateReplyRequest{Content: "?"})
	assert.ErrorIs(t, err, apperrors.ErrDiscussionNotFound)
}

func TestListCourses_Filters(t *testing.T) {
	svc, _ := newTestCourseService()
	ctx := context.Background()

	a, err := svc.CreateCourse(ctx, "admin-1", &dto.CreateCourseRequest{Title: "A"})
	require.NoError(t, err)
	b, err := svc.CreateCourse(ctx, "admin-2", &dto.CreateCourseRequest{Title: "B"})
	require.NoError(t, err)

	require.NoError(t, svc.Enroll(ctx, a.ID.Hex(), "student-1"))
	require.NoError(t, svc.AddTeachingAssistant(ctx, b.ID.Hex(), "admin-2", "ta-1"))

	all, err := svc.ListCourses(ctx, CourseFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byAdmin, err := svc.ListCourses(ctx, CourseFilter{AdminID: "admin-1"})
	require.NoError(t, err)
	require.Len(t, byAdmin, 1)
	assert.Equal(t, "A", byAdmin[0].Title)

	byStudent, err := svc.ListCourses(ctx, CourseFilter{StudentID: "student-1"})
	require.NoError(t, err)
	require.Len(t, byStudent, 1)
	assert.Equal(t, "A", byStudent[0].Title)

	byTA, err := svc.ListCourses(ctx, CourseFilter{AssistantID: "ta-1"})
	require.NoError(t, err)
	require.Len(t, byTA, 1)
	assert.Equal(t, "B", byTA[0].Title)
}
