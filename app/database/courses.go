package database

import (
	"database/sql"
	"errors"

	"github.com/Halalsolutions/ced-udus-erp/app/models"
)

// ErrCourseNameTaken is returned when an insert or update collides with
// the unique course_name constraint.
var ErrCourseNameTaken = errors.New("a course with this name already exists")

func CreateCourse(db *sql.DB, c *models.Course) error {
	query := `INSERT INTO courses (course_name, course_code, course_details, course_duration, course_price, facilitator_name, students_enrolled, image_name)
			  VALUES ($1, $2, $3, $4, $5, $6, 0, $7)
			  RETURNING id`

	err := db.QueryRow(query,
		c.CourseName, c.CourseCode, c.CourseDetails, c.CourseDuration,
		c.CoursePrice, c.FacilitatorName, c.ImageName,
	).Scan(&c.ID)
	if isUniqueViolation(err, "") {
		return ErrCourseNameTaken
	}
	return err
}

func GetAllCourses(db *sql.DB) ([]*models.Course, error) {
	query := `SELECT id, course_name, course_code, course_details, course_duration, course_price,
			  facilitator_name, COALESCE(students_enrolled, 0), COALESCE(image_name, '')
			  FROM courses ORDER BY id`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		c := &models.Course{}
		if err := rows.Scan(
			&c.ID, &c.CourseName, &c.CourseCode, &c.CourseDetails, &c.CourseDuration,
			&c.CoursePrice, &c.FacilitatorName, &c.StudentsEnrolled, &c.ImageName,
		); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

func GetCourseByID(db *sql.DB, id int) (*models.Course, error) {
	c := &models.Course{}
	query := `SELECT id, course_name, course_code, course_details, course_duration, course_price,
			  facilitator_name, COALESCE(students_enrolled, 0), COALESCE(image_name, '')
			  FROM courses WHERE id = $1`

	err := db.QueryRow(query, id).Scan(
		&c.ID, &c.CourseName, &c.CourseCode, &c.CourseDetails, &c.CourseDuration,
		&c.CoursePrice, &c.FacilitatorName, &c.StudentsEnrolled, &c.ImageName,
	)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return c, nil
}

// UpdateCourse overwrites the editable fields. The enrolled counter and
// image are managed elsewhere.
func UpdateCourse(db *sql.DB, c *models.Course) error {
	query := `UPDATE courses
			  SET course_name = $1, course_code = $2, course_details = $3,
			      course_duration = $4, course_price = $5, facilitator_name = $6
			  WHERE id = $7`

	result, err := db.Exec(query,
		c.CourseName, c.CourseCode, c.CourseDetails, c.CourseDuration,
		c.CoursePrice, c.FacilitatorName, c.ID,
	)
	if err != nil {
		if isUniqueViolation(err, "") {
			return ErrCourseNameTaken
		}
		return err
	}
	return requireRow(result)
}

func DeleteCourse(db *sql.DB, id int) error {
	_, err := db.Exec(`DELETE FROM courses WHERE id = $1`, id)
	return err
}
