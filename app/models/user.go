package models

// User is a login principal. Passwords are stored as bcrypt hashes.
type User struct {
	ID             int    `json:"id"`
	FirstName      string `json:"first_name" validate:"required"`
	LastName       string `json:"last_name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"-"`
	AvatarLocation string `json:"avatar_location"`
}
