package courses

import (
	"log"

	"github.com/Halalsolutions/ced-udus-erp/app/config"
	"github.com/Halalsolutions/ced-udus-erp/app/database"
	"github.com/Halalsolutions/ced-udus-erp/app/models"
	"github.com/Halalsolutions/ced-udus-erp/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupCoursesRoutes(app *fiber.App) {
	web := app.Group("/courses")
	web.Use(auth.AuthMiddleware)
	web.Get("/", renderCoursesPage)
	web.Get("/:id", renderCourseDetailPage)

	api := app.Group("/api/courses")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetCoursesAPI)
	api.Get("/:id", GetCourseAPI)
	api.Post("/", CreateCourseAPI)
	api.Put("/:id", UpdateCourseAPI)
	api.Delete("/:id", DeleteCourseAPI)
}

func renderCoursesPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	db := config.GetDB()

	courses, err := database.GetAllCourses(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load courses")
	}
	facilitators, err := database.GetAllFacilitators(db)
	if err != nil {
		log.Printf("Failed to load facilitators for course form: %v", err)
	}

	return c.Render("courses/index", fiber.Map{
		"Title":        "All Courses - CED Training Center",
		"CurrentPage":  "courses",
		"user":         user,
		"Courses":      courses,
		"Facilitators": facilitators,
	})
}

func renderCourseDetailPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid course ID")
	}

	course, err := database.GetCourseByID(config.GetDB(), id)
	if err != nil {
		if err == database.ErrNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Course not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load course")
	}

	return c.Render("courses/detail", fiber.Map{
		"Title":       "About Course - CED Training Center",
		"CurrentPage": "courses",
		"user":        user,
		"Course":      course,
	})
}
