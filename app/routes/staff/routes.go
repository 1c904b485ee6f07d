package staff

import (
	"log"

	"github.com/Halalsolutions/ced-udus-erp/app/config"
	"github.com/Halalsolutions/ced-udus-erp/app/database"
	"github.com/Halalsolutions/ced-udus-erp/app/models"
	"github.com/Halalsolutions/ced-udus-erp/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupStaffRoutes(app *fiber.App) {
	web := app.Group("/staff")
	web.Use(auth.AuthMiddleware)
	web.Get("/", renderStaffPage)

	api := app.Group("/api/staff")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetStaffListAPI)
	api.Get("/:id", GetStaffAPI)
	api.Post("/", CreateStaffAPI)
	api.Put("/:id", UpdateStaffAPI)
	api.Delete("/:id", DeleteStaffAPI)
}

func renderStaffPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	db := config.GetDB()

	staffList, err := database.GetAllStaff(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load staff")
	}
	departments, err := database.GetAllDepartments(db)
	if err != nil {
		log.Printf("Failed to load departments for staff form: %v", err)
	}

	return c.Render("staff/index", fiber.Map{
		"Title":       "All Staff - CED Training Center",
		"CurrentPage": "staff",
		"user":        user,
		"Staff":       staffList,
		"Departments": departments,
	})
}
