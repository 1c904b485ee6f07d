package database

import (
	"database/sql"

	"github.com/Halalsolutions/ced-udus-erp/app/models"
)

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, first_name, last_name, email, password, COALESCE(avatar_location, '')
			  FROM users WHERE email = $1`

	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.FirstName, &user.LastName, &user.Email,
		&user.Password, &user.AvatarLocation,
	)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return user, nil
}

func GetUserByID(db *sql.DB, id int) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, first_name, last_name, email, password, COALESCE(avatar_location, '')
			  FROM users WHERE id = $1`

	err := db.QueryRow(query, id).Scan(
		&user.ID, &user.FirstName, &user.LastName, &user.Email,
		&user.Password, &user.AvatarLocation,
	)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return user, nil
}

func CreateUser(db *sql.DB, user *models.User) error {
	query := `INSERT INTO users (first_name, last_name, email, password, avatar_location)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`

	return db.QueryRow(query,
		user.FirstName, user.LastName, user.Email, user.Password, user.AvatarLocation,
	).Scan(&user.ID)
}

func UpdateUserPassword(db *sql.DB, id int, hashedPassword string) error {
	query := `UPDATE users SET password = $1 WHERE id = $2`
	_, err := db.Exec(query, hashedPassword, id)
	return err
}
