package trainees

import (
	"log"

	"github.com/Halalsolutions/ced-udus-erp/app/config"
	"github.com/Halalsolutions/ced-udus-erp/app/database"
	"github.com/Halalsolutions/ced-udus-erp/app/models"
	"github.com/Halalsolutions/ced-udus-erp/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupTraineesRoutes(app *fiber.App) {
	web := app.Group("/trainees")
	web.Use(auth.AuthMiddleware)
	web.Get("/", renderTraineesPage)
	web.Get("/:id", renderTraineeDetailPage)

	api := app.Group("/api/trainees")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetTraineesAPI)
	api.Get("/:id", GetTraineeAPI)
	api.Post("/", CreateTraineeAPI)
	api.Put("/:id", UpdateTraineeAPI)
	api.Delete("/:id", DeleteTraineeAPI)
}

func renderTraineesPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	db := config.GetDB()

	trainees, err := database.GetAllTrainees(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load trainees")
	}
	courses, err := database.GetAllCourses(db)
	if err != nil {
		log.Printf("Failed to load courses for trainee form: %v", err)
	}
	departments, err := database.GetAllDepartments(db)
	if err != nil {
		log.Printf("Failed to load departments for trainee form: %v", err)
	}

	return c.Render("trainees/index", fiber.Map{
		"Title":       "All Trainees - CED Training Center",
		"CurrentPage": "trainees",
		"user":        user,
		"Trainees":    trainees,
		"Courses":     courses,
		"Departments": departments,
	})
}

func renderTraineeDetailPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid trainee ID")
	}

	trainee, err := database.GetTraineeByID(config.GetDB(), id)
	if err != nil {
		if err == database.ErrNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Trainee not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load trainee")
	}

	return c.Render("trainees/detail", fiber.Map{
		"Title":       "About Trainee - CED Training Center",
		"CurrentPage": "trainees",
		"user":        user,
		"Trainee":     trainee,
	})
}
