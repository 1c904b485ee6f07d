package facilitators

import (
	"log"

	"github.com/Halalsolutions/ced-udus-erp/app/config"
	"github.com/Halalsolutions/ced-udus-erp/app/database"
	"github.com/Halalsolutions/ced-udus-erp/app/models"
	"github.com/Halalsolutions/ced-udus-erp/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupFacilitatorsRoutes(app *fiber.App) {
	web := app.Group("/facilitators")
	web.Use(auth.AuthMiddleware)
	web.Get("/", renderFacilitatorsPage)

	api := app.Group("/api/facilitators")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetFacilitatorsAPI)
	api.Get("/:id", GetFacilitatorAPI)
	api.Post("/", CreateFacilitatorAPI)
	api.Put("/:id", UpdateFacilitatorAPI)
	api.Delete("/:id", DeleteFacilitatorAPI)
}

func renderFacilitatorsPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	db := config.GetDB()

	facilitators, err := database.GetAllFacilitators(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load facilitators")
	}
	departments, err := database.GetAllDepartments(db)
	if err != nil {
		log.Printf("Failed to load departments for facilitator form: %v", err)
	}

	return c.Render("facilitators/index", fiber.Map{
		"Title":        "All Facilitators - CED Training Center",
		"CurrentPage":  "facilitators",
		"user":         user,
		"Facilitators": facilitators,
		"Departments":  departments,
	})
}
