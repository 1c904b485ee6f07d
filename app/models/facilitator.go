package models

import "time"

// Facilitator is an instructor assigned to a department.
type Facilitator struct {
	ID           int       `json:"id"`
	FirstName    string    `json:"first_name" validate:"required"`
	LastName     string    `json:"last_name" validate:"required"`
	Email        string    `json:"email" validate:"omitempty,email"`
	JoiningDate  time.Time `json:"joining_date"`
	MobileNumber string    `json:"mobile_number"`
	Gender       string    `json:"gender" validate:"required"`
	Course       string    `json:"course"`
	Department   string    `json:"department" validate:"required"`
}
