package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContentType tags a module content item
type ContentType string

const (
	ContentVideo         ContentType = "VIDEO"
	ContentDocument      ContentType = "DOCUMENT"
	ContentAssignment    ContentType = "ASSIGNMENT"
	ContentQuiz          ContentType = "QUIZ"
	ContentReferenceBook ContentType = "REFERENCE_BOOK"
)

// IsValidContentType reports whether the given string is a known content type
func IsValidContentType(t string) bool {
	switch ContentType(t) {
	case ContentVideo, ContentDocument, ContentAssignment, ContentQuiz, ContentReferenceBook:
		return true
	}
	return false
}

// Course defines a document in the 'courses' collection. All nested
// sub-entities are embedded in the course document; user references
// (adminId, authorId, student/TA ids) are opaque hex strings and the
// data layer enforces no referential integrity across collections.
type Course struct {
	ID                 primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title              string             `json:"title" bson:"title"`
	Description        string             `json:"description" bson:"description"`
	AdminID            string             `json:"adminId" bson:"adminId"`
	EnrolledStudents   []string           `json:"enrolledStudents" bson:"enrolledStudents"`
	TeachingAssistants []string           `json:"teachingAssistants" bson:"teachingAssistants"`
	Modules            []CourseModule     `json:"modules" bson:"modules"`
	Announcements      []Announcement     `json:"announcements" bson:"announcements"`
	Discussions        []Discussion       `json:"discussions" bson:"discussions"`
	CreatedAt          time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CourseModule holds an ordered sequence of content items
type CourseModule struct {
	ID          string          `json:"id" bson:"id"`
	Title       string          `json:"title" bson:"title"`
	Description string          `json:"description" bson:"description"`
	Contents    []ModuleContent `json:"contents" bson:"contents"`
	DueDate     *time.Time      `json:"dueDate,omitempty" bson:"dueDate,omitempty"`
}

// ModuleContent is a single typed content item; Content holds a URL or text
type ModuleContent struct {
	ID       string      `json:"id" bson:"id"`
	Title    string      `json:"title" bson:"title"`
	Type     ContentType `json:"type" bson:"type"`
	Content  string      `json:"content" bson:"content"`
	Required bool        `json:"required" bson:"required"`
}

// Announcement is a timestamped authored note
type Announcement struct {
	ID        string    `json:"id" bson:"id"`
	Title     string    `json:"title" bson:"title"`
	Content   string    `json:"content" bson:"content"`
	AuthorID  string    `json:"authorId" bson:"authorId"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// Discussion is an authored, optionally anonymous thread
type Discussion struct {
	ID          string            `json:"id" bson:"id"`
	Title       string            `json:"title" bson:"title"`
	Content     string            `json:"content" bson:"content"`
	AuthorID    string            `json:"authorId" bson:"authorId"`
	IsAnonymous bool              `json:"isAnonymous" bson:"isAnonymous"`
	Replies     []DiscussionReply `json:"replies" bson:"replies"`
	CreatedAt   time.Time         `json:"createdAt" bson:"createdAt"`
}

// DiscussionReply is a single reply within a discussion thread
type DiscussionReply struct {
	ID          string    `json:"id" bson:"id"`
	Content     string    `json:"content" bson:"content"`
	AuthorID    string    `json:"authorId" bson:"authorId"`
	IsAnonymous bool      `json:"isAnonymous" bson:"isAnonymous"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}

// IsAdmin reports whether the given user id owns the course
func (c *Course) IsAdmin(userID string) bool {
	return c.AdminID == userID
}

// IsTeachingAssistant reports whether the given user id is a TA on the course
func (c *Course) IsTeachingAssistant(userID string) bool {
	for _, id := range c.TeachingAssistants {
		if id == userID {
			return true
		}
	}
	return false
}

// IsEnrolled reports whether the given user id is enrolled in the course
func (c *Course) IsEnrolled(userID string) bool {
	for _, id := range c.EnrolledStudents {
		if id == userID {
			return true
		}
	}
	return false
}
