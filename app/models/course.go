package models

// Course groups trainees under a facilitator. CourseName is unique.
// StudentsEnrolled is incremented each time a trainee enrolls; it is never
// recomputed from the trainees table.
type Course struct {
	ID               int    `json:"id"`
	CourseName       string `json:"course_name" validate:"required"`
	CourseCode       string `json:"course_code" validate:"required"`
	CourseDetails    string `json:"course_details" validate:"required"`
	CourseDuration   string `json:"course_duration" validate:"required"`
	CoursePrice      int    `json:"course_price" validate:"required"`
	FacilitatorName  string `json:"facilitator_name" validate:"required"`
	StudentsEnrolled int    `json:"students_enrolled"`
	ImageName        string `json:"image_name"`
}
