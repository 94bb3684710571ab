package repositories

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository   *UserRepository
	CourseRepository *CourseRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *mongo.Database) *Repositories {
	return &Repositories{
		UserRepository:   NewUserRepository(database),
		CourseRepository: NewCourseRepository(database),
	}
}
