// Package services holds the business logic between controllers and
// repositories.
//
// Services defined in this package:
// - AuthService: registration and login orchestration, token issuance
// - CourseService: course resources (modules, announcements, discussions)
package services
