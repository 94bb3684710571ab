package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/edunexus/edunexus-backend/internal/app/models"
	"github.com/edunexus/edunexus-backend/internal/db"
	"github.com/edunexus/edunexus-backend/internal/pkg/apperrors"
)

// ICourseRepository defines the interface for course store operations.
// Updates replace the whole document; nested lists are embedded, so a
// single write is atomic at the document level and nothing more.
type ICourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id string) (*models.Course, error)
	GetAll(ctx context.Context) ([]*models.Course, error)
	Replace(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id string) error

	FindByAdminID(ctx context.Context, adminID string) ([]*models.Course, error)
	FindByEnrolledStudent(ctx context.Context, studentID string) ([]*models.Course, error)
	FindByTeachingAssistant(ctx context.Context, taID string) ([]*models.Course, error)
}

// CourseRepository persists course documents in the 'courses' collection
type CourseRepository struct {
	collection *mongo.Collection
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(database *mongo.Database) *CourseRepository {
	return &CourseRepository{
		collection: database.Collection(db.CoursesCollection),
	}
}

// Create inserts a new course document and assigns its generated id
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	now := time.Now().UTC()
	course.CreatedAt = now
	course.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, course)
	if err != nil {
		return fmt.Errorf("failed to insert course: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		course.ID = oid
	}

	return nil
}

// GetByID retrieves a course by its hex id
func (r *CourseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrCourseNotFound
	}

	var course models.Course
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&course)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to find course by id: %w", err)
	}

	return &course, nil
}

// GetAll retrieves every course document
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	return r.find(ctx, bson.M{})
}

// Replace writes the whole course document back. Last writer wins;
// there is no optimistic-concurrency check.
func (r *CourseRepository) Replace(ctx context.Context, course *models.Course) error {
	course.UpdatedAt = time.Now().UTC()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": course.ID}, course)
	if err != nil {
		return fmt.Errorf("failed to replace course: %w", err)
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete removes a course document
func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrCourseNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// FindByAdminID retrieves all courses owned by the given user
func (r *CourseRepository) FindByAdminID(ctx context.Context, adminID string) ([]*models.Course, error) {
	return r.find(ctx, bson.M{"adminId": adminID})
}

// FindByEnrolledStudent retrieves all courses whose enrolled set contains the student
func (r *CourseRepository) FindByEnrolledStudent(ctx context.Context, studentID string) ([]*models.Course, error) {
	return r.find(ctx, bson.M{"enrolledStudents": studentID})
}

// FindByTeachingAssistant retrieves all courses whose TA set contains the user
func (r *CourseRepository) FindByTeachingAssistant(ctx context.Context, taID string) ([]*models.Course, error) {
	return r.find(ctx, bson.M{"teachingAssistants": taID})
}

func (r *CourseRepository) find(ctx context.Context, filter bson.M) ([]*models.Course, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer cursor.Close(ctx)

	courses := make([]*models.Course, 0)
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, fmt.Errorf("failed to decode courses: %w", err)
	}

	return courses, nil
}
