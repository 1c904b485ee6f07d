package models

import "time"

// Trainee is a student enrolled in a course.
type Trainee struct {
	ID               int       `json:"id"`
	FirstName        string    `json:"first_name" validate:"required"`
	LastName         string    `json:"last_name" validate:"required"`
	Email            string    `json:"email" validate:"required,email"`
	RegistrationDate time.Time `json:"registration_date" validate:"required"`
	Department       string    `json:"department" validate:"required"`
	Gender           string    `json:"gender" validate:"required"`
	MobileNumber     string    `json:"mobile_number"`
	Course           string    `json:"course" validate:"required"`
	Address          string    `json:"address"`
}
