package courses

import (
	"github.com/Halalsolutions/ced-udus-erp/app/config"
	"github.com/Halalsolutions/ced-udus-erp/app/database"
	"github.com/Halalsolutions/ced-udus-erp/app/models"
	"github.com/Halalsolutions/ced-udus-erp/app/validation"
	"github.com/gofiber/fiber/v2"
)

// courseRequest covers add and edit. Adds arrive as multipart form data
// because of the image; edits never change the image.
type courseRequest struct {
	CourseName      string `json:"course_name" form:"course_name" validate:"required"`
	CourseCode      string `json:"course_code" form:"course_code" validate:"required"`
	CourseDetails   string `json:"course_details" form:"course_details" validate:"required"`
	CourseDuration  string `json:"course_duration" form:"course_duration" validate:"required"`
	CoursePrice     int    `json:"course_price" form:"course_price" validate:"required"`
	FacilitatorName string `json:"facilitator" form:"facilitator" validate:"required"`
}

func (r courseRequest) toModel() (*models.Course, []validation.FieldError) {
	if fields := validation.Struct(r); fields != nil {
		return nil, fields
	}
	return &models.Course{
		CourseName:      r.CourseName,
		CourseCode:      r.CourseCode,
		CourseDetails:   r.CourseDetails,
		CourseDuration:  r.CourseDuration,
		CoursePrice:     r.CoursePrice,
		FacilitatorName: r.FacilitatorName,
	}, nil
}

func GetCoursesAPI(c *fiber.Ctx) error {
	courses, err := database.GetAllCourses(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load courses"})
	}
	return c.JSON(courses)
}

func GetCourseAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid course ID"})
	}

	course, err := database.GetCourseByID(config.GetDB(), id)
	if err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Course not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load course"})
	}
	return c.JSON(course)
}

// CreateCourseAPI accepts multipart form data with a mandatory course
// image.
func CreateCourseAPI(c *fiber.Ctx) error {
	var req courseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	course, fields := req.toModel()
	if fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Course image is required"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to read uploaded image"})
	}
	defer file.Close()

	imageName, err := saveUploadedImage(config.AppConfig.UploadFolder, fileHeader.Filename, file)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save uploaded image"})
	}
	course.ImageName = imageName

	if err := database.CreateCourse(config.GetDB(), course); err != nil {
		if err == database.ErrCourseNameTaken {
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create course"})
	}
	return c.Status(201).JSON(course)
}

func UpdateCourseAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid course ID"})
	}

	var req courseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	course, fields := req.toModel()
	if fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}
	course.ID = id

	if err := database.UpdateCourse(config.GetDB(), course); err != nil {
		switch err {
		case database.ErrNotFound:
			return c.Status(404).JSON(fiber.Map{"error": "Course not found"})
		case database.ErrCourseNameTaken:
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update course"})
	}
	return c.JSON(course)
}

func DeleteCourseAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid course ID"})
	}

	if err := database.DeleteCourse(config.GetDB(), id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete course"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
