package models

import "time"

type Staff struct {
	ID           int       `json:"id"`
	FirstName    string    `json:"first_name" validate:"required"`
	LastName     string    `json:"last_name" validate:"required"`
	Email        string    `json:"email" validate:"omitempty,email"`
	JoiningDate  time.Time `json:"joining_date"`
	MobileNumber string    `json:"mobile_number"`
	Gender       string    `json:"gender"`
	Designation  string    `json:"designation"`
	Department   string    `json:"department"`
	Address      string    `json:"address"`
}
